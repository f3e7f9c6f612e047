package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	helpers "schoolku_backend/internals/helpers"
)

func newRoleTestApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/x",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(helpers.LocUserType, role)
			}
			return c.Next()
		},
		OnlyRoles(allowed...),
		func(c *fiber.Ctx) error {
			return helpers.JsonOK(c, "ok", nil)
		},
	)
	return app
}

func decodeError(t *testing.T, resp *http.Response) helpers.ErrorResponse {
	t.Helper()
	var body helpers.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestOnlyRolesAllowed(t *testing.T) {
	app := newRoleTestApp("admin", "admin", "teacher")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

// Role mismatch = identitas jelas tapi hak kurang → harus 403, bukan 401
func TestOnlyRolesMismatchIs403(t *testing.T) {
	app := newRoleTestApp("student", "admin")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	body := decodeError(t, resp)
	if body.Code != helpers.CodeInsufficientPerm {
		t.Errorf("code = %q, want %q", body.Code, helpers.CodeInsufficientPerm)
	}
	if body.Success {
		t.Error("success harus false")
	}
}

func TestOnlyRolesMissingRoleIs401(t *testing.T) {
	app := newRoleTestApp("", "admin")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
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
