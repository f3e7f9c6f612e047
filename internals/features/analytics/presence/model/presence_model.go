package model

import (
	"time"

	"github.com/google/uuid"
)

// OnlineSessionModel merepresentasikan tabel online_sessions.
// Satu baris per session pengunjung; "online" bukan status tersimpan
// melainkan hasil filter last_activity pada saat query.
type OnlineSessionModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Session id dari cookie visitor — kunci upsert
	SessionID string `gorm:"size:64;uniqueIndex;not null" json:"session_id"`

	// Terisi kalau pengunjung login; guest = NULL
	SubjectID       *uuid.UUID `gorm:"type:uuid;index" json:"subject_id,omitempty"`
	RoleLabel       string     `gorm:"size:20;not null;default:'guest'" json:"role_label"`
	IsAuthenticated bool       `gorm:"not null;default:false" json:"is_authenticated"`

	IP      string `gorm:"size:45" json:"ip"`
	Browser string `gorm:"size:50" json:"browser"`
	OS      string `gorm:"size:50" json:"os"`
	Device  string `gorm:"size:20" json:"device"`
	Country string `gorm:"size:5" json:"country"`

	Page string `gorm:"size:255" json:"page"`

	// LoginTime insert-only: kapan session pertama terlihat
	LoginTime    time.Time `gorm:"not null" json:"login_time"`
	LastActivity time.Time `gorm:"not null;index" json:"last_activity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OnlineSessionModel) TableName() string {
	return "online_sessions"
}
