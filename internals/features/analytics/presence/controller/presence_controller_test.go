package controller

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Koneksi yang selalu gagal — endpoint analytics harus jatuh ke
// statistik nol, bukan 500, saat database bermasalah.
type downDriver struct{}

func (downDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("database tidak tersedia")
}

type downConnector struct{}

func (downConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("database tidak tersedia")
}

func (downConnector) Driver() driver.Driver { return downDriver{} }

func newDownDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sql.OpenDB(downConnector{})}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db
}

func TestOnlineSummaryDegradesToZero(t *testing.T) {
	app := fiber.New()
	ctrl := NewPresenceController(newDownDB(t))
	app.Get("/online", ctrl.GetOnlineSummary)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/online", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 meski query gagal", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			TotalOnline int64             `json:"total_online"`
			ByRole      []json.RawMessage `json:"by_role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("success harus true")
	}
	if body.Data.TotalOnline != 0 {
		t.Errorf("total_online = %d, want 0", body.Data.TotalOnline)
	}
	if body.Data.ByRole == nil {
		t.Error("by_role harus [] bukan null")
	}
}

func TestListOnlineSessionsDegradesToEmpty(t *testing.T) {
	app := fiber.New()
	ctrl := NewPresenceController(newDownDB(t))
	app.Get("/online/sessions", ctrl.ListOnlineSessions)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/online/sessions", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 meski query gagal", resp.StatusCode)
	}

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("success harus true")
	}
	if len(body.Data) != 0 {
		t.Errorf("data = %d item, want kosong", len(body.Data))
	}
}
