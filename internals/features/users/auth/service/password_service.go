package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	studentModel "schoolku_backend/internals/features/users/student/model"
	helper "schoolku_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
// Berlaku untuk staff maupun student — branch dari user_type di Locals.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	if err := authHelper.ValidateNewPassword(input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userIDStr := helper.GetUserID(c)
	userType := helper.GetUserType(c)
	if userIDStr == "" || userType == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	// Ambil hash lama sesuai jenis principal
	var currentHash string
	switch userType {
	case constants.RoleTeacher, constants.RoleAdmin:
		currentHash, err = authRepo.FindStaffPasswordHash(db, userID)
	case constants.RoleStudent:
		currentHash, err = findStudentPasswordHash(db, userID)
	default:
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown user type")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(currentHash, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	// Hash password baru
	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	// Update sesuai jenis principal
	switch userType {
	case constants.RoleStudent:
		err = db.Model(&studentModel.StudentModel{}).
			Where("id = ?", userID).
			Update("password", newHash).Error
	default:
		err = authRepo.UpdateStaffPassword(db, userID, newHash)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

func findStudentPasswordHash(db *gorm.DB, id uuid.UUID) (string, error) {
	var hash string
	if err := db.Model(&studentModel.StudentModel{}).
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
