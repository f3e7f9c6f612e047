package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/analytics/visits/model"
)

// VisitInput: satu page hit dari visitor middleware
type VisitInput struct {
	IP        string
	SessionID string
	SubjectID *uuid.UUID
	Page      string
	PageTitle string
	Referrer  string
	Browser   string
	OS        string
	Device    string
	Country   string
}

// RecordVisit: upsert atomic per (ip, session_id) — satu statement,
// tidak read-modify-write, jadi hit paralel tidak saling menimpa.
func RecordVisit(db *gorm.DB, in VisitInput) error {
	entry, err := json.Marshal([]model.PageVisitEntry{{
		Page:      in.Page,
		Title:     in.PageTitle,
		EnteredAt: time.Now().UTC(),
	}})
	if err != nil {
		return err
	}

	return db.Exec(`
		INSERT INTO visit_logs
			(id, ip, session_id, subject_id, page_visits, visit_count, referrer, browser, os, device, country, first_visit, last_visit, created_at, updated_at)
		VALUES
			(gen_random_uuid(), ?, ?, ?, ?::jsonb, 1, ?, ?, ?, ?, ?, NOW(), NOW(), NOW(), NOW())
		ON CONFLICT (ip, session_id) DO UPDATE SET
			page_visits = visit_logs.page_visits || EXCLUDED.page_visits,
			visit_count = visit_logs.visit_count + 1,
			subject_id  = COALESCE(EXCLUDED.subject_id, visit_logs.subject_id),
			last_visit  = NOW(),
			updated_at  = NOW()
	`, in.IP, in.SessionID, in.SubjectID, string(entry), in.Referrer, in.Browser, in.OS, in.Device, in.Country).Error
}

/* ==========================
   ROLLUPS
========================== */

// BucketCount: satu baris hasil rollup per periode.
// Bucketing pakai entered_at tiap page visit, bukan created_at record —
// record lama yang dapat hit baru tetap masuk ke bucket yang benar.
type BucketCount struct {
	Bucket    string `json:"bucket"`
	PageViews int64  `json:"page_views"`
	UniqueIPs int64  `json:"unique_ips"`
}

type PageCount struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

var bucketFormats = map[string]string{
	"daily":   "YYYY-MM-DD",
	"weekly":  "IYYY-\"W\"IW",
	"monthly": "YYYY-MM",
}

var bucketTruncs = map[string]string{
	"daily":   "day",
	"weekly":  "week",
	"monthly": "month",
}

// ValidPeriod: daily | weekly | monthly
func ValidPeriod(period string) bool {
	_, ok := bucketFormats[period]
	return ok
}

// VisitsByPeriod: page views + unique IP per bucket sejak `since`
func VisitsByPeriod(db *gorm.DB, period string, since time.Time) ([]BucketCount, error) {
	out := make([]BucketCount, 0)
	err := db.Raw(`
		SELECT
			to_char(date_trunc(?, (pv->>'entered_at')::timestamptz), ?) AS bucket,
			COUNT(*)           AS page_views,
			COUNT(DISTINCT ip) AS unique_ips
		FROM visit_logs, jsonb_array_elements(page_visits) AS pv
		WHERE is_bot = false
		  AND (pv->>'entered_at')::timestamptz >= ?
		GROUP BY bucket
		ORDER BY bucket
	`, bucketTruncs[period], bucketFormats[period], since).Scan(&out).Error
	return out, err
}

// TopPages: halaman terpopuler sejak `since`
func TopPages(db *gorm.DB, since time.Time, limit int) ([]PageCount, error) {
	out := make([]PageCount, 0)
	err := db.Raw(`
		SELECT pv->>'page' AS page, COUNT(*) AS count
		FROM visit_logs, jsonb_array_elements(page_visits) AS pv
		WHERE is_bot = false
		  AND (pv->>'entered_at')::timestamptz >= ?
		GROUP BY page
		ORDER BY count DESC
		LIMIT ?
	`, since, limit).Scan(&out).Error
	return out, err
}

// TopReferrers: sumber traffic (referrer kosong = direct, dilewati)
func TopReferrers(db *gorm.DB, since time.Time, limit int) ([]ReferrerCount, error) {
	out := make([]ReferrerCount, 0)
	err := db.Model(&model.VisitModel{}).
		Select("referrer, COUNT(*) AS count").
		Where("is_bot = false AND referrer <> '' AND last_visit >= ?", since).
		Group("referrer").
		Order("count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// BreakdownBy: distribusi visitor per kolom (device/browser/country)
func BreakdownBy(db *gorm.DB, column string, since time.Time) ([]LabelCount, error) {
	switch column {
	case "device", "browser", "country":
	default:
		return nil, gorm.ErrInvalidField
	}
	out := make([]LabelCount, 0)
	err := db.Model(&model.VisitModel{}).
		Select(column+" AS label, COUNT(*) AS count").
		Where("is_bot = false AND last_visit >= ?", since).
		Group(column).
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

// TodayStats: page views + unique visitor hari ini (sejak 00:00 UTC)
func TodayStats(db *gorm.DB) (*BucketCount, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var out BucketCount
	err := db.Raw(`
		SELECT
			to_char(?::timestamptz, 'YYYY-MM-DD') AS bucket,
			COUNT(*)           AS page_views,
			COUNT(DISTINCT ip) AS unique_ips
		FROM visit_logs, jsonb_array_elements(page_visits) AS pv
		WHERE is_bot = false
		  AND (pv->>'entered_at')::timestamptz >= ?
	`, midnight, midnight).Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PurgeOldVisits: hapus record yang sudah lewat masa retensi.
// Dipanggil scheduler harian.
func PurgeOldVisits(db *gorm.DB, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	res := db.Where("last_visit < ?", cutoff).Delete(&model.VisitModel{})
	return res.RowsAffected, res.Error
}
