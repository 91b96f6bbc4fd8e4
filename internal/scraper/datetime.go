package scraper

import (
	"regexp"
	"strings"
)

var utcOffsetRe = regexp.MustCompile(`(\.\d{1,6})?(\+00:00|\+0000)$`)

// NormalizeISO reduces the ISO-8601 variants the providers emit
// ("2026-09-05 18:45:00+00:00", "2026-09-05T18:45:00.000Z", ...) to the
// canonical Z-suffixed form used on UnifiedEvent.KickoffUTC.
func NormalizeISO(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, " ", "T")
	s = utcOffsetRe.ReplaceAllString(s, "Z")
	if i := strings.IndexByte(s, '.'); i >= 0 && strings.HasSuffix(s, "Z") {
		s = s[:i] + "Z"
	}
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}
	return s
}
