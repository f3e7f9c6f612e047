package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	staffModel "schoolku_backend/internals/features/users/staff/model"
	studentModel "schoolku_backend/internals/features/users/student/model"
)

// ==========================
// STAFF (teacher/admin)
// ==========================

// FindStaffByEmailWithPassword: khusus jalur login — satu-satunya read
// yang ikut membawa kolom password.
func FindStaffByEmailWithPassword(db *gorm.DB, email string) (*staffModel.StaffModel, error) {
	var staff staffModel.StaffModel
	if err := db.
		Where("lower(email) = lower(?)", strings.TrimSpace(email)).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// FindStaffByID: default read tanpa password
func FindStaffByID(db *gorm.DB, id uuid.UUID) (*staffModel.StaffModel, error) {
	var staff staffModel.StaffModel
	if err := db.
		Select(staffModel.PublicColumns).
		Where("id = ?", id).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func FindStaffPasswordHash(db *gorm.DB, id uuid.UUID) (string, error) {
	var hash string
	if err := db.Model(&staffModel.StaffModel{}).
		Select("password").
		Where("id = ?", id).
		Scan(&hash).Error; err != nil {
		return "", err
	}
	if hash == "" {
		return "", gorm.ErrRecordNotFound
	}
	return hash, nil
}

func CreateStaff(db *gorm.DB, staff *staffModel.StaffModel) error {
	return db.Create(staff).Error
}

func UpdateStaffLastLogin(db *gorm.DB, id uuid.UUID, at time.Time) error {
	return db.Model(&staffModel.StaffModel{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func UpdateStaffPassword(db *gorm.DB, id uuid.UUID, hash string) error {
	return db.Model(&staffModel.StaffModel{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

// IsActiveTeacher: cek referensial owning-teacher (harus staff kind teacher
// dan masih aktif) — dipanggil saat create student, bukan FK constraint.
func IsActiveTeacher(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&staffModel.StaffModel{}).
		Where("id = ? AND role = 'teacher' AND is_active = true", id).
		Count(&count).Error
	return count > 0, err
}

// ==========================
// STUDENT
// ==========================

func FindStudentByNumberWithPassword(db *gorm.DB, number string) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := db.
		Where("student_number = ?", strings.TrimSpace(number)).
		First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func FindStudentByID(db *gorm.DB, id uuid.UUID) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := db.
		Select(studentModel.PublicColumns).
		Where("id = ?", id).
		First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func CreateStudent(db *gorm.DB, student *studentModel.StudentModel) error {
	return db.Create(student).Error
}

func UpdateStudentLastLogin(db *gorm.DB, id uuid.UUID, at time.Time) error {
	return db.Model(&studentModel.StudentModel{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

// IsDuplicateKeyError: mapping unique-constraint violation dari store
// ke kondisi domain "already exists".
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
