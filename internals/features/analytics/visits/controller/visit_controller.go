package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/analytics/visits/service"
	helpers "schoolku_backend/internals/helpers"
)

type VisitController struct {
	DB *gorm.DB
}

func NewVisitController(db *gorm.DB) *VisitController {
	return &VisitController{DB: db}
}

// Query gagal = fallback statistik nol / list kosong, bukan 500 —
// analytics tidak boleh terlihat error di sisi user. 400 tetap
// dipakai untuk parameter yang memang salah.

// GET /api/public/analytics/today — counter ringan untuk halaman depan
func (vc *VisitController) GetToday(c *fiber.Ctx) error {
	stats, err := service.TodayStats(vc.DB)
	if err != nil {
		log.Printf("[ANALYTICS] gagal mengambil statistik hari ini: %v", err)
		stats = &service.BucketCount{Bucket: time.Now().UTC().Format("2006-01-02")}
	}
	return helpers.JsonOK(c, "ok", stats)
}

// GET /api/analytics/visits?period=daily&days=30
func (vc *VisitController) GetVisitRollup(c *fiber.Ctx) error {
	period := c.Query("period", "daily")
	if !service.ValidPeriod(period) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "period harus daily, weekly, atau monthly")
	}
	since := sinceFromQuery(c, 30)

	buckets, err := service.VisitsByPeriod(vc.DB, period, since)
	if err != nil {
		log.Printf("[ANALYTICS] gagal mengambil rollup kunjungan: %v", err)
		buckets = []service.BucketCount{}
	}
	return helpers.JsonOK(c, "ok", fiber.Map{
		"period":  period,
		"since":   since,
		"buckets": buckets,
	})
}

// GET /api/analytics/visits/pages?days=30&limit=10
func (vc *VisitController) GetTopPages(c *fiber.Ctx) error {
	since := sinceFromQuery(c, 30)
	limit := limitFromQuery(c, 10)

	pages, err := service.TopPages(vc.DB, since, limit)
	if err != nil {
		log.Printf("[ANALYTICS] gagal mengambil halaman terpopuler: %v", err)
		pages = []service.PageCount{}
	}
	return helpers.JsonList(c, "ok", pages)
}

// GET /api/analytics/visits/referrers?days=30&limit=10
func (vc *VisitController) GetTopReferrers(c *fiber.Ctx) error {
	since := sinceFromQuery(c, 30)
	limit := limitFromQuery(c, 10)

	refs, err := service.TopReferrers(vc.DB, since, limit)
	if err != nil {
		log.Printf("[ANALYTICS] gagal mengambil referrer: %v", err)
		refs = []service.ReferrerCount{}
	}
	return helpers.JsonList(c, "ok", refs)
}

// GET /api/analytics/visits/breakdown?by=device&days=30
func (vc *VisitController) GetBreakdown(c *fiber.Ctx) error {
	by := c.Query("by", "device")
	since := sinceFromQuery(c, 30)

	rows, err := service.BreakdownBy(vc.DB, by, since)
	if err != nil {
		if err == gorm.ErrInvalidField {
			return helpers.JsonError(c, fiber.StatusBadRequest, "by harus device, browser, atau country")
		}
		log.Printf("[ANALYTICS] gagal mengambil breakdown visitor: %v", err)
		rows = []service.LabelCount{}
	}
	return helpers.JsonOK(c, "ok", fiber.Map{
		"by":   by,
		"rows": rows,
	})
}

func sinceFromQuery(c *fiber.Ctx, defDays int) time.Time {
	days := defDays
	if v := c.Query("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Now().UTC().AddDate(0, 0, -days)
}

func limitFromQuery(c *fiber.Ctx, def int) int {
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			return parsed
		}
	}
	return def
}
