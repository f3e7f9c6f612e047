package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/configs"
	helpers "schoolku_backend/internals/helpers"
)

// Logout tidak boleh menyentuh server state — cukup menimpa cookie
// dengan sentinel yang segera kadaluarsa.
func TestLogoutOverwritesCookie(t *testing.T) {
	configs.AppEnv = "development"

	app := fiber.New()
	app.Post("/logout", Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	setCookie := resp.Header.Get("Set-Cookie")
	if !strings.Contains(setCookie, helpers.AccessTokenCookie+"="+logoutSentinel) {
		t.Errorf("Set-Cookie = %q, tidak berisi sentinel logout", setCookie)
	}
	if !strings.Contains(setCookie, "HttpOnly") {
		t.Errorf("Set-Cookie = %q, HttpOnly hilang", setCookie)
	}
}

// Body register harus diparse lewat RegisterRequest — model staff
// bertag `json:"-"` di kolom password, jadi parse langsung ke model
// membuat password tidak pernah terisi dan registrasi selalu gagal.
func TestRegisterRequestCarriesPassword(t *testing.T) {
	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		return c.SendString(req.Email + "|" + req.Password)
	})

	payload := `{"first_name":"Budi","last_name":"Santoso","email":"budi@x.com","password":"secret123","role":"teacher"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "budi@x.com|secret123" {
		t.Errorf("parsed = %q, password tidak ikut terbaca dari body", body)
	}
}

// Akun nonaktif gagal di tahap autentikasi → 401, bukan 403.
// 403 khusus untuk principal terautentikasi yang kurang hak.
func TestDeactivatedLoginIs401(t *testing.T) {
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		return rejectDeactivated(c, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	var body helpers.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != helpers.CodeAccountDeactivated {
		t.Errorf("code = %q, want %q", body.Code, helpers.CodeAccountDeactivated)
	}
}

func TestCookieSameSitePerEnv(t *testing.T) {
	configs.AppEnv = "production"
	if got := cookieSameSite(); got != "Strict" {
		t.Errorf("production SameSite = %q, want Strict", got)
	}
	configs.AppEnv = "development"
	if got := cookieSameSite(); got != "Lax" {
		t.Errorf("development SameSite = %q, want Lax", got)
	}
}
