package concept

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultEstimateMinutes is assumed when a time string can't be parsed.
// Malformed analyzer output degrades to this default instead of erroring.
const DefaultEstimateMinutes = 15

var timePattern = regexp.MustCompile(`(?i)(\d+)\s*(min|hour|hr)`)

// ParseTimeToMinutes extracts the first "<integer> min|hour|hr" pattern
// (case-insensitive) from s. Hours multiply by 60. Empty input or no match
// yields DefaultEstimateMinutes.
func ParseTimeToMinutes(s string) int {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultEstimateMinutes
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultEstimateMinutes
	}

	switch strings.ToLower(m[2]) {
	case "hour", "hr":
		return n * 60
	default:
		return n
	}
}

// FormatMinutesToTime renders minutes as "45 min", "1 hour", "2 hours",
// or "1h 30min".
func FormatMinutesToTime(n int) string {
	if n < 60 {
		return fmt.Sprintf("%d min", n)
	}

	h, m := n/60, n%60
	if m == 0 {
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}
