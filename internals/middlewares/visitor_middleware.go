package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	presenceService "schoolku_backend/internals/features/analytics/presence/service"
	visitService "schoolku_backend/internals/features/analytics/visits/service"
	helpers "schoolku_backend/internals/helpers"
)

const visitorSessionCookie = "visitor_session"

// Path yang tidak pernah direkam analytics
var skipPrefixes = []string{
	"/health",
	"/.well-known",
	"/favicon",
	"/static",
	"/assets",
}

// VisitorTrackerMiddleware merekam presence + visit log secara
// fire-and-forget: response sudah dikirim dulu, penulisan analytics
// jalan di goroutine dan tidak pernah menggagalkan request.
// Bot dikecualikan total — tidak direkam sama sekali.
func VisitorTrackerMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// Semua method masuk presence — user yang cuma kirim POST/PUT
		// tetap harus terhitung online. Gate GET hanya untuk visit log.
		path := c.Path()
		if !trackablePath(path) {
			return err
		}

		ua := c.Get(fiber.HeaderUserAgent)
		if helpers.IsBot(ua) {
			return err
		}

		sessionID := ensureVisitorSession(c)

		// Fiber recycle ctx setelah handler selesai — copy semua value
		// SEBELUM goroutine jalan.
		device := helpers.ParseUserAgent(ua)
		in := trackingInput{
			sessionID: sessionID,
			ip:        c.IP(),
			method:    c.Method(),
			path:      path,
			pageTitle: c.Get("X-Page-Title"), // dikirim frontend, boleh kosong
			referrer:  c.Get(fiber.HeaderReferer),
			country:   countryFromHeaders(c),
			device:    device,
			roleLabel: constants.RoleGuest,
		}
		if userType := helpers.GetUserType(c); userType != "" {
			in.roleLabel = userType
			if id, err := uuid.Parse(helpers.GetUserID(c)); err == nil {
				in.subjectID = &id
			}
		}

		go recordVisitor(db, in)
		return err
	}
}

type trackingInput struct {
	sessionID string
	subjectID *uuid.UUID
	roleLabel string
	ip        string
	method    string
	path      string
	pageTitle string
	referrer  string
	country   string
	device    helpers.DeviceInfo
}

func recordVisitor(db *gorm.DB, in trackingInput) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[VISITOR] panic saat merekam analytics: %v", r)
		}
	}()

	if err := presenceService.UpsertPresence(db, presenceService.PresenceInput{
		SessionID: in.sessionID,
		SubjectID: in.subjectID,
		RoleLabel: in.roleLabel,
		IP:        in.ip,
		Browser:   in.device.Browser,
		OS:        in.device.OS,
		Device:    in.device.Device,
		Country:   in.country,
		Page:      in.path,
	}); err != nil {
		log.Printf("[VISITOR] gagal upsert presence: %v", err)
	}

	// Visit log hanya untuk page view — presence sudah direkam di atas
	if !isPageVisit(in.method, in.path) {
		return
	}

	if err := visitService.RecordVisit(db, visitService.VisitInput{
		IP:        in.ip,
		SessionID: in.sessionID,
		SubjectID: in.subjectID,
		Page:      in.path,
		PageTitle: in.pageTitle,
		Referrer:  in.referrer,
		Browser:   in.device.Browser,
		OS:        in.device.OS,
		Device:    in.device.Device,
		Country:   in.country,
	}); err != nil {
		log.Printf("[VISITOR] gagal merekam visit: %v", err)
	}
}

// trackablePath: path yang layak direkam analytics (presence & visit).
// Static asset, health check, dan well-known dilewati total.
func trackablePath(path string) bool {
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// isPageVisit: hanya GET non-API yang dihitung sebagai page view.
func isPageVisit(method, path string) bool {
	return method == fiber.MethodGet && !strings.HasPrefix(path, "/api")
}

// ensureVisitorSession: ambil session id dari cookie, atau terbitkan baru
func ensureVisitorSession(c *fiber.Ctx) string {
	if sid := c.Cookies(visitorSessionCookie); sid != "" && len(sid) <= 64 {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     visitorSessionCookie,
		Value:    sid,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
	})
	return sid
}

// countryFromHeaders: best-effort dari proxy/CDN (Cloudflare atau LB sendiri)
func countryFromHeaders(c *fiber.Ctx) string {
	if cc := c.Get("CF-IPCountry"); cc != "" && cc != "XX" {
		return strings.ToUpper(cc)
	}
	if cc := c.Get("X-Geo-Country"); cc != "" {
		return strings.ToUpper(cc)
	}
	return ""
}
