package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/analytics/presence/model"
	"schoolku_backend/internals/features/analytics/presence/service"
	helpers "schoolku_backend/internals/helpers"
)

type PresenceController struct {
	DB *gorm.DB
}

func NewPresenceController(db *gorm.DB) *PresenceController {
	return &PresenceController{DB: db}
}

// Error baca analytics tidak pernah sampai ke user — fallback ke
// angka nol / list kosong, errornya cukup masuk log.

// GET /api/analytics/online — ringkasan jumlah online + breakdown role
func (pc *PresenceController) GetOnlineSummary(c *fiber.Ctx) error {
	total, err := service.CountOnline(pc.DB)
	if err != nil {
		log.Printf("[ANALYTICS] gagal menghitung online: %v", err)
		total = 0
	}
	byRole, err := service.CountOnlineByRole(pc.DB)
	if err != nil {
		log.Printf("[ANALYTICS] gagal menghitung breakdown role: %v", err)
		byRole = []service.RoleCount{}
	}
	return helpers.JsonOK(c, "ok", fiber.Map{
		"total_online": total,
		"by_role":      byRole,
	})
}

// GET /api/analytics/online/sessions — detail session online (dashboard staff)
func (pc *PresenceController) ListOnlineSessions(c *fiber.Ctx) error {
	sessions, err := service.ListOnline(pc.DB)
	if err != nil {
		log.Printf("[ANALYTICS] gagal mengambil session online: %v", err)
		sessions = []model.OnlineSessionModel{}
	}
	return helpers.JsonList(c, "ok", sessions)
}
