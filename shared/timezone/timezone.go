package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// Init sets the application timezone. An empty name selects time.Local; an
// unknown name falls back to time.Local with an error log.
func Init(name string) {
	if name == "" {
		log.Debug().Msg("No timezone configured, using the host timezone")

		appLocation = time.Local

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to the host timezone. Please use standard timezone names like 'Europe/Helsinki', 'UTC', 'America/New_York'")

		appLocation = time.Local

		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// FromWall keeps the wall clock of t and attaches the application timezone.
// Database drivers return "timestamp without time zone" values in UTC.
func FromWall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.Local
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
