package model

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestPageVisitListEmpty(t *testing.T) {
	v := VisitModel{}
	list, err := v.PageVisitList()
	if err != nil {
		t.Fatalf("PageVisitList error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("len = %d, want 0", len(list))
	}
}

func TestPageVisitListDecode(t *testing.T) {
	raw := `[{"page":"/","entered_at":"2026-08-01T10:00:00Z"},{"page":"/profil","entered_at":"2026-08-01T10:05:00Z"}]`
	v := VisitModel{PageVisits: datatypes.JSON(raw)}

	list, err := v.PageVisitList()
	if err != nil {
		t.Fatalf("PageVisitList error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Page != "/" || list[1].Page != "/profil" {
		t.Errorf("pages = %q, %q", list[0].Page, list[1].Page)
	}
	want := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if !list[0].EnteredAt.Equal(want) {
		t.Errorf("EnteredAt = %v, want %v", list[0].EnteredAt, want)
	}
}

func TestPageVisitListInvalidJSON(t *testing.T) {
	v := VisitModel{PageVisits: datatypes.JSON(`{bukan array`)}
	if _, err := v.PageVisitList(); err == nil {
		t.Error("JSON rusak harus error")
	}
}
