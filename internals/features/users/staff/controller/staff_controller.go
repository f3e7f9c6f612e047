package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	"schoolku_backend/internals/features/users/staff/dto"
	"schoolku_backend/internals/features/users/staff/model"
	helpers "schoolku_backend/internals/helpers"
)

var validate = validator.New()

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// GET /api/staff (admin only — dipasang OnlyRoles di route)
func (sc *StaffController) List(c *fiber.Ctx) error {
	var staffs []model.StaffModel
	if err := sc.DB.
		Select(model.PublicColumns).
		Order("created_at DESC").
		Find(&staffs).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data staff")
	}
	return helpers.JsonList(c, "ok", staffs)
}

// GET /api/staff/:id (owner-or-admin via middleware)
func (sc *StaffController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}
	staff, err := authRepo.FindStaffByID(sc.DB, id)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	return helpers.JsonOK(c, "ok", staff)
}

// PUT /api/staff/:id (owner-or-admin via middleware)
func (sc *StaffController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := sc.DB.Model(&model.StaffModel{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update staff")
	}

	staff, err := authRepo.FindStaffByID(sc.DB, id)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	return helpers.JsonUpdated(c, "Profil berhasil diperbarui", staff)
}

// PATCH /api/staff/:id/deactivate (admin only)
// Super-admin email dikecualikan — tidak boleh dinonaktifkan.
func (sc *StaffController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	staff, err := authRepo.FindStaffByID(sc.DB, id)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Staff tidak ditemukan")
	}
	if configs.SuperAdminEmail != "" &&
		strings.EqualFold(staff.Email, configs.SuperAdminEmail) {
		return helpers.JsonError(c, fiber.StatusForbidden, "Super admin tidak bisa dinonaktifkan")
	}

	if err := sc.DB.Model(&model.StaffModel{}).
		Where("id = ?", id).
		Update("is_active", false).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan staff")
	}
	return helpers.JsonUpdated(c, "Staff dinonaktifkan", nil)
}
