// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// Nama cookie access token (dipakai transport & logout)
	AccessTokenCookie = "access_token"

	// Locals keys (diisi auth middleware)
	LocUserID   = "user_id"
	LocUserType = "user_type"
	LocRawToken = "raw_token"
)

// GetRawAccessToken mengembalikan access token dari request.
// Urutan: Authorization header dulu, baru cookie — header menang.
// String kosong berarti "no credential presented", bukan error.
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies(AccessTokenCookie)); v != "" {
		return v
	}
	return ""
}

// GetUserID ambil user_id dari Locals (diset auth middleware)
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserID).(string); ok {
		return v
	}
	return ""
}

// GetUserType ambil user_type dari Locals (diset auth middleware)
func GetUserType(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserType).(string); ok {
		return v
	}
	return ""
}
