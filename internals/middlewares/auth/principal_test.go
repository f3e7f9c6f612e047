package auth

import (
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	staffModel "schoolku_backend/internals/features/users/staff/model"
	studentModel "schoolku_backend/internals/features/users/student/model"
)

func TestStaffPrincipal(t *testing.T) {
	id := uuid.New()
	p := StaffPrincipal{Staff: &staffModel.StaffModel{
		ID:        id,
		FirstName: "Budi",
		LastName:  "Santoso",
		Role:      constants.RoleAdmin,
		IsActive:  true,
	}}

	if p.PrincipalID() != id {
		t.Errorf("PrincipalID = %s, want %s", p.PrincipalID(), id)
	}
	if p.Role() != constants.RoleAdmin {
		t.Errorf("Role = %q, want admin", p.Role())
	}
	if !p.Active() {
		t.Error("Active harus true")
	}
	if p.DisplayName() != "Budi Santoso" {
		t.Errorf("DisplayName = %q", p.DisplayName())
	}
}

// Role student tidak disimpan di record — varian principal-nya
// yang menentukan.
func TestStudentPrincipalRoleAlwaysStudent(t *testing.T) {
	p := StudentPrincipal{Student: &studentModel.StudentModel{
		ID:        uuid.New(),
		FirstName: "Andi",
		LastName:  "Pratama",
		IsActive:  true,
	}}

	if p.Role() != constants.RoleStudent {
		t.Errorf("Role = %q, want student", p.Role())
	}
	if p.Teacher != nil {
		t.Error("Teacher enrichment default harus nil")
	}
}
