// internals/middlewares/auth/optional_auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "schoolku_backend/internals/features/users/auth/service"
	helpers "schoolku_backend/internals/helpers"
)

// OptionalAuthMiddleware: untuk route publik yang bisa dipersonalisasi.
// Semua kegagalan (token tidak ada / invalid / user nonaktif) lolos diam-diam
// TANPA principal di context — sengaja entry point terpisah dari strict
// supaya route protected tidak bisa melemah karena salah flag.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helpers.GetRawAccessToken(c)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := authService.VerifyToken(tokenString)
		if err != nil {
			return c.Next()
		}

		principal, _, err := loadPrincipal(db, claims.UserID.String(), claims.UserType)
		if err != nil {
			return c.Next()
		}

		c.Locals(helpers.LocUserID, principal.PrincipalID().String())
		c.Locals(helpers.LocUserType, principal.Role())
		c.Locals(helpers.LocRawToken, tokenString)
		c.Locals(LocPrincipal, principal)

		return c.Next()
	}
}
