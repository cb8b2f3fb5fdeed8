package apod

import (
	"math/rand"
	"time"
)

// rangeStart is the earliest date the random selector may pick.
var rangeStart = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// DateParam resolves the date query parameter from the plugin settings.
// Randomize takes precedence over an explicit date; the explicit date is
// consulted only when randomize is off. An empty result means "let the
// server default to today". The custom value passes through unvalidated:
// a malformed date surfaces as an upstream API failure.
func DateParam(randomize bool, custom string, rng *rand.Rand, now time.Time) string {
	if randomize {
		return RandomDate(rng, now)
	}
	return custom
}

// RandomDate picks a day uniformly between 2015-01-01 and now, inclusive,
// formatted as YYYY-MM-DD.
func RandomDate(rng *rand.Rand, now time.Time) string {
	end := now.UTC().Truncate(24 * time.Hour)
	days := int(end.Sub(rangeStart).Hours() / 24)
	if days < 0 {
		days = 0
	}
	offset := rng.Intn(days + 1)
	return rangeStart.AddDate(0, 0, offset).Format("2006-01-02")
}
