package timezone

import (
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/rs/zerolog/log"
)

// ValidStrftime reports whether pattern compiles as a strftime pattern.
// Patterns without any directive are valid.
func ValidStrftime(pattern string) bool {
	_, err := strftime.New(pattern)

	return err == nil
}

// Strftime formats t in the application timezone with a C strftime pattern.
// A pattern that does not compile is returned as is.
func Strftime(t time.Time, pattern string) string {
	out, err := strftime.Format(pattern, ToAppTime(t))
	if err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("failed to format time")

		return pattern
	}

	return out
}
