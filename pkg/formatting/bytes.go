// Package formatting renders raw values for display and parses human-entered sizes.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

var units = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders n using base-1024 units with one decimal place above bytes.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + " " + units[i]
}

// ParseBytes parses sizes such as "512", "64KB" or "8 mb" into a byte count.
// A bare number is bytes. Fractional values are truncated.
func ParseBytes(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	end := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	num, unit := s, "B"
	if end >= 0 {
		num, unit = s[:end], strings.TrimSpace(s[end:])
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	for i, u := range units {
		if u == unit {
			for range i {
				value *= 1024
			}
			return int64(value), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q in %q", unit, s)
}
