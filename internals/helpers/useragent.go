// file: internals/helpers/useragent.go
package helper

import "strings"

// DeviceInfo hasil parse User-Agent (best-effort, cukup untuk analytics)
type DeviceInfo struct {
	Browser string `json:"browser"`
	OS      string `json:"os"`
	Device  string `json:"device"` // desktop | mobile | tablet
}

// Signature crawler yang dikecualikan total dari analytics
// (tidak direkam sama sekali, bukan sekadar di-flag).
var botSignatures = []string{
	"bot", "crawler", "spider", "slurp", "curl", "wget", "python-requests",
	"headless", "lighthouse", "pingdom", "facebookexternalhit", "whatsapp",
	"telegrambot", "bingpreview", "yandex", "baiduspider", "duckduckbot",
	"semrush", "ahrefs", "mj12bot", "dotbot", "petalbot", "uptimerobot",
}

// IsBot: pattern match sederhana di lower-case UA.
// UA kosong dianggap bot juga (klien non-browser).
func IsBot(ua string) bool {
	ua = strings.ToLower(strings.TrimSpace(ua))
	if ua == "" {
		return true
	}
	for _, sig := range botSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}

// ParseUserAgent menebak browser/OS/device dari UA string.
func ParseUserAgent(ua string) DeviceInfo {
	low := strings.ToLower(ua)

	info := DeviceInfo{Browser: "unknown", OS: "unknown", Device: "desktop"}

	switch {
	case strings.Contains(low, "edg/"), strings.Contains(low, "edge"):
		info.Browser = "Edge"
	case strings.Contains(low, "opr/"), strings.Contains(low, "opera"):
		info.Browser = "Opera"
	case strings.Contains(low, "chrome"):
		info.Browser = "Chrome"
	case strings.Contains(low, "safari"):
		info.Browser = "Safari"
	case strings.Contains(low, "firefox"):
		info.Browser = "Firefox"
	case strings.Contains(low, "msie"), strings.Contains(low, "trident"):
		info.Browser = "IE"
	}

	switch {
	case strings.Contains(low, "android"):
		info.OS = "Android"
	case strings.Contains(low, "iphone"), strings.Contains(low, "ipad"), strings.Contains(low, "ios"):
		info.OS = "iOS"
	case strings.Contains(low, "windows"):
		info.OS = "Windows"
	case strings.Contains(low, "mac os"), strings.Contains(low, "macintosh"):
		info.OS = "macOS"
	case strings.Contains(low, "linux"):
		info.OS = "Linux"
	}

	switch {
	case strings.Contains(low, "ipad"), strings.Contains(low, "tablet"):
		info.Device = "tablet"
	case strings.Contains(low, "mobi"), strings.Contains(low, "iphone"), strings.Contains(low, "android"):
		info.Device = "mobile"
	}

	return info
}
