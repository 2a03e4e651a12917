package rtz

import (
	"strconv"
	"strings"
)

// SanitizeCoordinate cleans a raw coordinate string and validates it against
// [min, max]. Every character outside [0-9.-] is stripped; observed input
// contains digit sequences interleaved with stray non-Latin characters.
// Returns false when nothing parseable or in-range remains.
func SanitizeCoordinate(raw string, min, max float64) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if v < min || v > max {
		return 0, false
	}
	return v, true
}

// SanitizeLat validates a raw latitude string
func SanitizeLat(raw string) (float64, bool) {
	return SanitizeCoordinate(raw, -90, 90)
}

// SanitizeLon validates a raw longitude string
func SanitizeLon(raw string) (float64, bool) {
	return SanitizeCoordinate(raw, -180, 180)
}
