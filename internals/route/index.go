// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "schoolku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up StaffRoutes...")
	routeDetails.StaffRoutes(app, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	routeDetails.StudentRoutes(app, db)

	log.Println("[INFO] Setting up AnalyticsRoutes...")
	routeDetails.AnalyticsRoutes(app, db)
}
