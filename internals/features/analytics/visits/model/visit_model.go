package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PageVisitEntry: satu kunjungan halaman di log embedded milik visit record.
// entered_at jadi basis bucketing rollup, bukan created_at barisnya.
type PageVisitEntry struct {
	Page      string    `json:"page"`
	Title     string    `json:"title,omitempty"`
	EnteredAt time.Time `json:"entered_at"`
}

// VisitModel merepresentasikan tabel visit_logs.
// Identitas visitor = pasangan (ip, session_id); kunjungan berulang
// menambah page_visits + visit_count lewat upsert atomic.
type VisitModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	IP        string `gorm:"size:45;not null;uniqueIndex:idx_visit_ip_session" json:"ip"`
	SessionID string `gorm:"size:64;not null;uniqueIndex:idx_visit_ip_session" json:"session_id"`

	PageVisits datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"page_visits"`
	VisitCount int            `gorm:"not null;default:1" json:"visit_count"`

	// Terisi kalau visitor sempat login selama session ini
	SubjectID *uuid.UUID `gorm:"type:uuid;index" json:"subject_id,omitempty"`

	Referrer string `gorm:"size:255" json:"referrer"`
	Browser  string `gorm:"size:50" json:"browser"`
	OS       string `gorm:"size:50" json:"os"`
	Device   string `gorm:"size:20" json:"device"`
	Country  string `gorm:"size:5" json:"country"`

	IsBot bool `gorm:"not null;default:false" json:"is_bot"`

	FirstVisit time.Time `gorm:"not null" json:"first_visit"`
	LastVisit  time.Time `gorm:"not null;index" json:"last_visit"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VisitModel) TableName() string {
	return "visit_logs"
}

// PageVisitList decode log kunjungan halaman dari JSONB
func (v *VisitModel) PageVisitList() ([]PageVisitEntry, error) {
	out := make([]PageVisitEntry, 0)
	if len(v.PageVisits) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(v.PageVisits, &out); err != nil {
		return nil, err
	}
	return out, nil
}
