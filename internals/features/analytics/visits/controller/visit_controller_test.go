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

// Koneksi yang selalu gagal — query rollup yang error harus dibalas
// statistik nol / list kosong, bukan 500.
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

func TestGetTodayDegradesToZero(t *testing.T) {
	app := fiber.New()
	ctrl := NewVisitController(newDownDB(t))
	app.Get("/today", ctrl.GetToday)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/today", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 meski query gagal", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Bucket    string `json:"bucket"`
			PageViews int64  `json:"page_views"`
			UniqueIPs int64  `json:"unique_ips"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("success harus true")
	}
	if body.Data.PageViews != 0 || body.Data.UniqueIPs != 0 {
		t.Errorf("stats = %+v, want nol semua", body.Data)
	}
	if body.Data.Bucket == "" {
		t.Error("bucket tetap harus terisi tanggal hari ini")
	}
}

func TestVisitRollupDegradesToEmpty(t *testing.T) {
	app := fiber.New()
	ctrl := NewVisitController(newDownDB(t))
	app.Get("/visits", ctrl.GetVisitRollup)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/visits?period=weekly", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 meski query gagal", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Period  string            `json:"period"`
			Buckets []json.RawMessage `json:"buckets"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success {
		t.Error("success harus true")
	}
	if body.Data.Period != "weekly" {
		t.Errorf("period = %q, want weekly", body.Data.Period)
	}
	if body.Data.Buckets == nil {
		t.Error("buckets harus [] bukan null")
	}
}

// Parameter salah tetap 400 — degradasi hanya untuk error query
func TestVisitRollupInvalidPeriodIs400(t *testing.T) {
	app := fiber.New()
	ctrl := NewVisitController(newDownDB(t))
	app.Get("/visits", ctrl.GetVisitRollup)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/visits?period=hourly", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBreakdownInvalidColumnIs400(t *testing.T) {
	app := fiber.New()
	ctrl := NewVisitController(newDownDB(t))
	app.Get("/breakdown", ctrl.GetBreakdown)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/breakdown?by=password", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
