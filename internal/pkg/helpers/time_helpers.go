package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// Today returns the current date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// DateOrToday returns the dereferenced date when present, today otherwise.
// Create and update both use it, so omitting a defaulted date resets it.
func DateOrToday(date *string) string {
	if date == nil || *date == "" {
		return Today()
	}
	return *date
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
