package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return d, nil
}

// ParseOptionalDate parses value with ParseDate, returning nil for an empty string.
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FormatDate renders the calendar date of t in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
