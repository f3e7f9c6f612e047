package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/analytics/presence/model"
)

// PresenceInput: satu heartbeat aktivitas dari visitor middleware
type PresenceInput struct {
	SessionID string
	SubjectID *uuid.UUID
	RoleLabel string
	IP        string
	Browser   string
	OS        string
	Device    string
	Country   string
	Page      string
}

// RoleCount: hasil breakdown online per role
type RoleCount struct {
	RoleLabel string `json:"role_label"`
	Count     int64  `json:"count"`
}

// UpsertPresence: satu baris per session. Insert pertama mengeset
// login_time; hit berikutnya hanya memajukan last_activity + page
// (dan role kalau guest keburu login di tengah session).
func UpsertPresence(db *gorm.DB, in PresenceInput) error {
	now := time.Now().UTC()
	row := model.OnlineSessionModel{
		SessionID:       in.SessionID,
		SubjectID:       in.SubjectID,
		RoleLabel:       in.RoleLabel,
		IsAuthenticated: in.SubjectID != nil,
		IP:              in.IP,
		Browser:         in.Browser,
		OS:              in.OS,
		Device:          in.Device,
		Country:         in.Country,
		Page:            in.Page,
		LoginTime:       now,
		LastActivity:    now,
	}
	// Semua field mutable mengikuti hit terbaru (last-write-wins);
	// hanya login_time yang insert-only.
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subject_id", "role_label", "is_authenticated",
			"ip", "browser", "os", "device", "country",
			"page", "last_activity", "updated_at",
		}),
	}).Create(&row).Error
}

// CountOnline: jumlah session dengan aktivitas di dalam window
func CountOnline(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&model.OnlineSessionModel{}).
		Where("last_activity > ?", onlineCutoff()).
		Count(&count).Error
	return count, err
}

// CountOnlineByRole: breakdown per role_label (termasuk guest)
func CountOnlineByRole(db *gorm.DB) ([]RoleCount, error) {
	out := make([]RoleCount, 0)
	err := db.Model(&model.OnlineSessionModel{}).
		Select("role_label, COUNT(*) AS count").
		Where("last_activity > ?", onlineCutoff()).
		Group("role_label").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

// ListOnline: detail session yang masih online (admin dashboard)
func ListOnline(db *gorm.DB) ([]model.OnlineSessionModel, error) {
	var sessions []model.OnlineSessionModel
	err := db.
		Where("last_activity > ?", onlineCutoff()).
		Order("last_activity DESC").
		Find(&sessions).Error
	return sessions, err
}

func onlineCutoff() time.Time {
	return time.Now().UTC().Add(-configs.OnlineWindow)
}
