package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loggerMiddleware "schoolku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan:
// recovery → logger → cors → rate limit → visitor tracker.
// Visitor tracker paling dalam supaya jalan setelah auth route-level
// sempat mengisi Locals (role label ikut terekam).
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	log.Println("🔌 Memasang global middlewares...")

	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(VisitorTrackerMiddleware(db))
}
