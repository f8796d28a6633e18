// Package timeutil parses the compact duration windows accepted by
// `journal export --last`.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const day = 24 * time.Hour

// units maps every accepted spelling to its length. Months and years are
// calendar-free approximations.
var units = map[string]time.Duration{
	"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": day, "day": day, "days": day,
	"w": 7 * day, "wk": 7 * day, "wks": 7 * day, "week": 7 * day, "weeks": 7 * day,
	"mo": 30 * day, "month": 30 * day, "months": 30 * day,
	"y": 365 * day, "yr": 365 * day, "year": 365 * day, "years": 365 * day,
}

// ParseWindow reads windows such as "3d", "1w2d" or "2 weeks". Segments are
// a number followed by a unit and add up.
func ParseWindow(input string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("timeutil: empty window")
	}

	var total time.Duration
	for len(s) > 0 {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		digits := len(s) - len(strings.TrimLeftFunc(s, unicode.IsDigit))
		if digits == 0 {
			return 0, fmt.Errorf("timeutil: expected a number at %q", s)
		}
		n, err := strconv.Atoi(s[:digits])
		if err != nil {
			return 0, fmt.Errorf("timeutil: %q: %w", s[:digits], err)
		}
		s = strings.TrimLeftFunc(s[digits:], unicode.IsSpace)

		letters := len(s) - len(strings.TrimLeftFunc(s, unicode.IsLetter))
		unit, ok := units[s[:letters]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unknown unit %q in %q", s[:letters], input)
		}
		if int64(n) > math.MaxInt64/int64(unit) {
			return 0, fmt.Errorf("timeutil: window %q is too long", input)
		}
		part := time.Duration(n) * unit
		if total > math.MaxInt64-part {
			return 0, fmt.Errorf("timeutil: window %q is too long", input)
		}
		total += part
		s = s[letters:]
	}

	if total <= 0 {
		return 0, fmt.Errorf("timeutil: window %q must be positive", input)
	}
	return total, nil
}

// Cutoff is the start of a window ending at now. Windows of whole days
// start at midnight so "1d" means today and yesterday.
func Cutoff(now time.Time, window time.Duration) time.Time {
	start := now.Add(-window)
	if window%day == 0 {
		y, m, d := start.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	}
	return start
}
