// internals/middlewares/auth/role_middleware.go
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	helpers "schoolku_backend/internals/helpers"
)

// OnlyRoles: authorization policy berbasis role.
// Harus dipasang SETELAH AuthMiddleware (butuh user_type di Locals).
// Denial message menyebut role yang dibutuhkan vs role pemanggil
// (nama role saja — non-sensitif).
func OnlyRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helpers.GetUserType(c)
		if role == "" {
			return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
				helpers.CodeNoToken, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		msg := fmt.Sprintf(
			"Akses ditolak: butuh role [%s], role Anda '%s'",
			strings.Join(allowedRoles, ", "), role,
		)
		return helpers.JsonErrorWithCode(c, fiber.StatusForbidden,
			helpers.CodeInsufficientPerm, msg)
	}
}
