package useragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Device types.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// UserAgent is the parsed summary of a User-Agent header.
type UserAgent struct {
	raw     string
	browser string
	os      string
	device  string
}

func (ua UserAgent) String() string     { return ua.raw }
func (ua UserAgent) Browser() string    { return ua.browser }
func (ua UserAgent) OS() string         { return ua.os }
func (ua UserAgent) DeviceType() string { return ua.device }
func (ua UserAgent) IsBot() bool        { return ua.device == DeviceBot }

// Short returns a compact label like "Chrome on macOS (desktop)".
func (ua UserAgent) Short() string {
	if ua.browser == "" && ua.os == "" {
		return ua.device
	}
	if ua.os == "" {
		return ua.browser + " (" + ua.device + ")"
	}
	return ua.browser + " on " + ua.os + " (" + ua.device + ")"
}

var titleCaser = cases.Title(language.English)

// Ordered: more specific tokens first, since Chrome ships "Safari" in its
// user agent and Edge ships both.
var browserTokens = []struct{ token, name string }{
	{"edg/", "Edge"},
	{"opr/", "Opera"},
	{"firefox/", "Firefox"},
	{"chrome/", "Chrome"},
	{"safari/", "Safari"},
	{"curl/", "curl"},
	{"postman", "Postman"},
}

var osTokens = []struct{ token, name string }{
	{"windows nt", "Windows"},
	{"android", "Android"},
	{"iphone os", "iOS"},
	{"ipad", "iPadOS"},
	{"mac os x", "macOS"},
	{"linux", "Linux"},
}

var botTokens = []string{"bot", "crawler", "spider", "slurp", "curl/", "python-requests"}

// Parse extracts the browser, OS, and device class from a User-Agent value.
// Unrecognized agents degrade to a title-cased first token rather than an
// empty label.
func Parse(raw string) UserAgent {
	ua := UserAgent{raw: raw, device: DeviceUnknown}
	lower := strings.ToLower(raw)
	if strings.TrimSpace(raw) == "" {
		return ua
	}

	for _, b := range browserTokens {
		if strings.Contains(lower, b.token) {
			ua.browser = b.name
			break
		}
	}
	if ua.browser == "" {
		// First product token, e.g. "MyApp/1.2" -> "Myapp".
		token := strings.FieldsFunc(lower, func(r rune) bool { return r == '/' || r == ' ' })
		if len(token) > 0 {
			ua.browser = titleCaser.String(token[0])
		}
	}

	for _, o := range osTokens {
		if strings.Contains(lower, o.token) {
			ua.os = o.name
			break
		}
	}

	switch {
	case containsAny(lower, botTokens):
		ua.device = DeviceBot
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet"):
		ua.device = DeviceTablet
	case strings.Contains(lower, "mobile") || strings.Contains(lower, "iphone") || strings.Contains(lower, "android"):
		ua.device = DeviceMobile
	case ua.os != "":
		ua.device = DeviceDesktop
	}

	return ua
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
