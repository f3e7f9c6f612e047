// internals/middlewares/auth/ownership_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helpers "schoolku_backend/internals/helpers"
)

// OwnerIDExtractor menurunkan owner id dari request (path param,
// atau field owner dari resource yang sudah di-load handler sebelumnya).
type OwnerIDExtractor func(c *fiber.Ctx) (uuid.UUID, error)

// OwnerOrAdmin: admin bypass; selain itu principal id harus sama dengan
// owner id hasil extractor. "Ownership" teacher atas resource miliknya
// (mis. student dengan teacher_id = dia) dicek di handler masing-masing
// karena artinya beda-beda per resource.
func OwnerOrAdmin(extractOwnerID OwnerIDExtractor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return helpers.JsonErrorWithCode(c, fiber.StatusUnauthorized,
				helpers.CodeNoToken, "Unauthorized: missing principal")
		}

		if IsAdmin(c) {
			return c.Next()
		}

		ownerID, err := extractOwnerID(c)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid resource owner reference")
		}

		if principal.PrincipalID() != ownerID {
			return helpers.JsonErrorWithCode(c, fiber.StatusForbidden,
				helpers.CodeInsufficientPerm, "Akses ditolak: bukan pemilik resource ini")
		}
		return c.Next()
	}
}

// ParamOwnerID: extractor umum — owner id dari path parameter.
func ParamOwnerID(param string) OwnerIDExtractor {
	return func(c *fiber.Ctx) (uuid.UUID, error) {
		return uuid.Parse(c.Params(param))
	}
}
