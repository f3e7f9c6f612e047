package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	staffModel "schoolku_backend/internals/features/users/staff/model"
	helpers "schoolku_backend/internals/helpers"
)

func newOwnershipApp(p Principal) *fiber.App {
	app := fiber.New()
	app.Get("/staff/:id",
		func(c *fiber.Ctx) error {
			c.Locals(LocPrincipal, p)
			return c.Next()
		},
		OwnerOrAdmin(ParamOwnerID("id")),
		func(c *fiber.Ctx) error {
			return helpers.JsonOK(c, "ok", nil)
		},
	)
	return app
}

func staffPrincipal(id uuid.UUID, role string) StaffPrincipal {
	return StaffPrincipal{Staff: &staffModel.StaffModel{
		ID:       id,
		Role:     role,
		IsActive: true,
	}}
}

func TestOwnerCanAccessOwnResource(t *testing.T) {
	id := uuid.New()
	app := newOwnershipApp(staffPrincipal(id, constants.RoleTeacher))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staff/"+id.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestNonOwnerGets403(t *testing.T) {
	app := newOwnershipApp(staffPrincipal(uuid.New(), constants.RoleTeacher))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staff/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestAdminBypassesOwnership(t *testing.T) {
	app := newOwnershipApp(staffPrincipal(uuid.New(), constants.RoleAdmin))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staff/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 (admin bypass)", resp.StatusCode)
	}
}

func TestMissingPrincipalGets401(t *testing.T) {
	app := fiber.New()
	app.Get("/staff/:id",
		OwnerOrAdmin(ParamOwnerID("id")),
		func(c *fiber.Ctx) error { return helpers.JsonOK(c, "ok", nil) },
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/staff/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
