// internals/middlewares/auth/principal.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	staffModel "schoolku_backend/internals/features/users/staff/model"
	studentModel "schoolku_backend/internals/features/users/student/model"
)

const LocPrincipal = "principal"

// Principal: identitas ter-autentikasi yang menempel di request.
// Sum type dengan dua varian (staff / student) — akses payload spesifik
// hanya lewat type switch, bukan tebak-tebakan field.
type Principal interface {
	PrincipalID() uuid.UUID
	Role() string // admin | teacher | student
	Active() bool
	DisplayName() string
}

// StaffPrincipal: varian teacher/admin
type StaffPrincipal struct {
	Staff *staffModel.StaffModel
}

func (p StaffPrincipal) PrincipalID() uuid.UUID { return p.Staff.ID }
func (p StaffPrincipal) Role() string           { return p.Staff.Role }
func (p StaffPrincipal) Active() bool           { return p.Staff.IsActive }
func (p StaffPrincipal) DisplayName() string    { return p.Staff.FullName() }

// StudentPrincipal: varian student, opsional di-enrich owning teacher
type StudentPrincipal struct {
	Student *studentModel.StudentModel
	Teacher *staffModel.StaffModel // boleh nil (best-effort enrichment)
}

func (p StudentPrincipal) PrincipalID() uuid.UUID { return p.Student.ID }
func (p StudentPrincipal) Role() string           { return constants.RoleStudent }
func (p StudentPrincipal) Active() bool           { return p.Student.IsActive }
func (p StudentPrincipal) DisplayName() string    { return p.Student.FullName() }

// GetPrincipal ambil principal dari Locals (diset auth middleware)
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(LocPrincipal).(Principal)
	return p, ok
}

// IsAdmin shortcut untuk bypass admin di ownership check
func IsAdmin(c *fiber.Ctx) bool {
	p, ok := GetPrincipal(c)
	return ok && p.Role() == constants.RoleAdmin
}
