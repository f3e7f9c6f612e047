// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	studentController "schoolku_backend/internals/features/users/student/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	api := app.Group("/api/students", authMiddleware.AuthMiddleware(db))

	// Create/list: teacher & admin (scoping per role di controller)
	api.Post("/",
		authMiddleware.OnlyRoles(constants.StaffRoles...),
		ctrl.Create)
	api.Get("/",
		authMiddleware.OnlyRoles(constants.StaffRoles...),
		ctrl.List)

	// Detail boleh diakses student pemilik record; ownership teacher
	// dicek di controller (teacher_id, bukan id principal)
	api.Get("/:id",
		authMiddleware.OnlyRoles(constants.AllRoles...),
		ctrl.GetByID)
	api.Put("/:id",
		authMiddleware.OnlyRoles(constants.StaffRoles...),
		ctrl.Update)

	// Embedded logs
	api.Post("/:id/grades",
		authMiddleware.OnlyRoles(constants.StaffRoles...),
		ctrl.AddGrade)
	api.Post("/:id/assignment-status",
		authMiddleware.OnlyRoles(constants.StaffRoles...),
		ctrl.AddAssignmentStatus)
}
