package usecase

import (
	"regexp"
	"strconv"

	"anime-hub/domain/model"
)

// durationPattern matches the platform's compact duration token, e.g.
// "PT1H2M3S", "PT12M", "PT45S". Every component is optional.
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts a compact duration token into total seconds.
// Malformed tokens yield 0 rather than an error: one bad record must not
// abort a batch of otherwise-valid videos, and 0 seconds already classifies
// as short-form downstream.
func ParseDuration(token string) int {
	m := durationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return hours*3600 + minutes*60 + seconds
}

// IsLongForm reports whether a duration clears the short-form threshold.
// Videos without duration information parse to 0 and are excluded; absence of
// evidence of length is treated as shortness.
func IsLongForm(seconds int) bool {
	return seconds >= model.ShortFormThresholdSeconds
}
