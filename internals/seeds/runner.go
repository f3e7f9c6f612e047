package seeds

import (
	"gorm.io/gorm"

	staff "schoolku_backend/internals/seeds/users/staff"
	student "schoolku_backend/internals/seeds/users/student"
)

// RunAllSeeds mengisi data awal development.
// Urutan penting: staff dulu, student butuh teacher yang sudah ada.
func RunAllSeeds(db *gorm.DB) {
	staff.SeedStaffFromJSON(db, "internals/seeds/users/staff/data_staff.json")
	student.SeedStudentsFromJSON(db, "internals/seeds/users/student/data_students.json")
}
