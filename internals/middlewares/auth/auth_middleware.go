// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	authService "schoolku_backend/internals/features/users/auth/service"
	helpers "schoolku_backend/internals/helpers"
)

// AuthMiddleware (strict): request tanpa principal valid langsung ditolak.
// State machine: extract → verify → load principal (branch user_type)
// → cek active → simpan ke Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Extract (header dulu, lalu cookie)
		tokenString := helpers.GetRawAccessToken(c)
		if tokenString == "" {
			return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
				helpers.CodeNoToken, "Unauthorized - Token tidak ditemukan")
		}

		// 2) Verify — alasan invalid dibedakan untuk log,
		//    semuanya tetap 401 ke klien
		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, authService.ErrTokenExpired):
				return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
					helpers.CodeTokenExpired, "Unauthorized - Token expired")
			case errors.Is(err, authService.ErrTokenSignature):
				log.Printf("[AUTH] signature mismatch: %s %s", c.Method(), c.OriginalURL())
				return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
					helpers.CodeTokenMalformed, "Unauthorized - Token invalid")
			case errors.Is(err, authService.ErrNoSecret):
				log.Println("[ERROR] JWT_SECRET kosong")
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
			default:
				return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
					helpers.CodeTokenMalformed, "Unauthorized - Token invalid")
			}
		}

		// 3) Load principal + cek active (live dari DB, bukan dari token —
		//    deactivated account ketahuan di request berikutnya)
		principal, code, err := loadPrincipal(db, claims.UserID.String(), claims.UserType)
		if err != nil {
			if code == "" {
				log.Printf("[AUTH] load principal error: %v", err)
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized, code, err.Error())
		}

		// 4) Simpan info ke context untuk handler & authorization policy
		c.Locals(helpers.LocUserID, principal.PrincipalID().String())
		c.Locals(helpers.LocUserType, principal.Role())
		c.Locals(helpers.LocRawToken, tokenString)
		c.Locals(LocPrincipal, principal)

		return c.Next()
	}
}

func parseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// loadPrincipal branch-dispatch dari claim user_type.
// Return: (principal, rejectCode, error). rejectCode kosong = error internal.
func loadPrincipal(db *gorm.DB, userID, userType string) (Principal, string, error) {
	uid, err := parseUUID(userID)
	if err != nil {
		return nil, helpers.CodeTokenMalformed, errors.New("Unauthorized - Invalid user ID")
	}

	switch userType {
	case constants.RoleStudent:
		student, err := authRepo.FindStudentByID(db, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, helpers.CodeUserNotFound, errors.New("Unauthorized - User not found")
			}
			return nil, "", err
		}
		if !student.IsActive {
			return nil, helpers.CodeAccountDeactivated, errors.New("Akun Anda telah dinonaktifkan")
		}
		// Enrich owning teacher (best-effort — jangan gagalkan auth)
		var p StudentPrincipal
		p.Student = student
		if teacher, err := authRepo.FindStaffByID(db, student.TeacherID); err == nil {
			p.Teacher = teacher
		}
		return p, "", nil

	case constants.RoleTeacher, constants.RoleAdmin:
		staff, err := authRepo.FindStaffByID(db, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, helpers.CodeUserNotFound, errors.New("Unauthorized - User not found")
			}
			return nil, "", err
		}
		if !staff.IsActive {
			return nil, helpers.CodeAccountDeactivated, errors.New("Akun Anda telah dinonaktifkan")
		}
		return StaffPrincipal{Staff: staff}, "", nil
	}

	// Kind tidak dikenal = hard reject, bukan default
	return nil, helpers.CodeInvalidUserType, errors.New("Unauthorized - Unknown user type")
}
