// file: internals/route/details/staff_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	staffController "schoolku_backend/internals/features/users/staff/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func StaffRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := staffController.NewStaffController(db)

	api := app.Group("/api/staff",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.StaffRoles...),
	)

	// Admin only
	api.Get("/",
		authMiddleware.OnlyRoles(constants.AdminOnly...),
		ctrl.List)
	api.Patch("/:id/deactivate",
		authMiddleware.OnlyRoles(constants.AdminOnly...),
		ctrl.Deactivate)

	// Self atau admin
	api.Get("/:id",
		authMiddleware.OwnerOrAdmin(authMiddleware.ParamOwnerID("id")),
		ctrl.GetByID)
	api.Put("/:id",
		authMiddleware.OwnerOrAdmin(authMiddleware.ParamOwnerID("id")),
		ctrl.Update)
}
