package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolku_backend/internals/configs"
	helpers "schoolku_backend/internals/helpers"
)

// Jalur no-token / token rusak / token expired ditolak sebelum menyentuh
// DB, jadi AuthMiddleware(nil) cukup untuk menguji kontrak kodenya.
func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(nil), func(c *fiber.Ctx) error {
		return helpers.JsonOK(c, "ok", nil)
	})
	return app
}

func signTestToken(t *testing.T, userType string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":        uuid.New().String(),
		"user_type": userType,
		"iat":       expiresAt.Add(-time.Hour).Unix(),
		"exp":       expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"
	app := newAuthTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Code != helpers.CodeNoToken {
		t.Errorf("code = %q, want %q", body.Code, helpers.CodeNoToken)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"
	app := newAuthTestApp()

	token := signTestToken(t, "teacher", time.Now().Add(-time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Code != helpers.CodeTokenExpired {
		t.Errorf("code = %q, want %q", body.Code, helpers.CodeTokenExpired)
	}
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"
	app := newAuthTestApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer bukan-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Code != helpers.CodeTokenMalformed {
		t.Errorf("code = %q, want %q", body.Code, helpers.CodeTokenMalformed)
	}
}

// Token valid via cookie juga harus sampai ke tahap verify (dan ditolak
// di sana kalau expired) — bukan dianggap NO_TOKEN.
func TestAuthMiddlewareExpiredCookieToken(t *testing.T) {
	configs.JWTSecret = "test-secret-rahasia"
	app := newAuthTestApp()

	token := signTestToken(t, "student", time.Now().Add(-time.Minute))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: token})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Code != helpers.CodeTokenExpired {
		t.Errorf("code = %q, want %q", body.Code, helpers.CodeTokenExpired)
	}
}
