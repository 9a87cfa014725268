package sitemap

import (
	"net/url"
	"strconv"
	"time"
)

// dateLayouts are the accepted lastmod formats, tried in order. The set is
// deliberately wider than W3C DATETIME to match real-world sitemap input.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	"02 Jan 2006",
}

// IsValidURI reports whether s is a syntactically valid absolute URI with
// both a scheme and an authority component.
func IsValidURI(s string) bool {
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return u.IsAbs() && u.Host != ""
}

// IsValidDate reports whether s parses as a calendar date or date-time in
// one of the accepted layouts.
func IsValidDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}

	return false
}

// IsValidPriority reports whether s parses as a base-10 number in the
// closed interval [0.0, 1.0].
func IsValidPriority(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}

	return v >= 0.0 && v <= 1.0
}

// IsValidChangeFreq reports whether s is exactly one of the sitemap
// protocol's change frequency values. Matching is case-sensitive.
func IsValidChangeFreq(s string) bool {
	switch s {
	case "always", "hourly", "daily", "weekly", "monthly", "yearly", "never":
		return true
	default:
		return false
	}
}
