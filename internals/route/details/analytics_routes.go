// file: internals/route/details/analytics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	presenceController "schoolku_backend/internals/features/analytics/presence/controller"
	visitController "schoolku_backend/internals/features/analytics/visits/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AnalyticsRoutes(app *fiber.App, db *gorm.DB) {
	presCtrl := presenceController.NewPresenceController(db)
	visitCtrl := visitController.NewVisitController(db)

	// Dashboard analytics: staff only (teacher/admin)
	api := app.Group("/api/analytics",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.StaffRoles...),
	)

	api.Get("/online", presCtrl.GetOnlineSummary)
	api.Get("/online/sessions", presCtrl.ListOnlineSessions)

	api.Get("/visits", visitCtrl.GetVisitRollup)
	api.Get("/visits/pages", visitCtrl.GetTopPages)
	api.Get("/visits/referrers", visitCtrl.GetTopReferrers)
	api.Get("/visits/breakdown", visitCtrl.GetBreakdown)

	// Public counter ringan: optional auth supaya role ikut terekam
	// di presence, tapi guest tetap boleh lihat jumlah online
	public := app.Group("/api/public/analytics", authMiddleware.OptionalAuthMiddleware(db))
	public.Get("/online", presCtrl.GetOnlineSummary)
	public.Get("/today", visitCtrl.GetToday)
}
