package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/auth/service"
	helpers "schoolku_backend/internals/helpers"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Me: principal sudah di-load auth middleware — tinggal type switch
// di tagged union untuk bentuk response per varian.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	principal, ok := authMiddleware.GetPrincipal(c)
	if !ok {
		return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
			helpers.CodeNoToken, "Unauthorized - Principal tidak ada di context")
	}

	switch p := principal.(type) {
	case authMiddleware.StaffPrincipal:
		return helpers.JsonOK(c, "ok", fiber.Map{"user": service.StaffResponseUser(p.Staff)})
	case authMiddleware.StudentPrincipal:
		return helpers.JsonOK(c, "ok", fiber.Map{"user": service.StudentResponseUser(p.Student, p.Teacher)})
	}
	return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
		helpers.CodeInvalidUserType, "Unauthorized - Unknown principal kind")
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.RegisterStaff(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.LoginStaff(ac.DB, c)
}

func (ac *AuthController) LoginStudent(c *fiber.Ctx) error {
	return service.LoginStudent(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}
