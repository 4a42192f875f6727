package scoring

import (
	"math"
	"time"
)

// RecencyBoost converts a publication timestamp into a multiplicative boost:
// 0.9^(days/3), where days is the whole number of elapsed days in UTC.
// A zero timestamp means the article has no publication date and gets a
// neutral 1.0. Future timestamps yield a boost above 1.
func RecencyBoost(published time.Time) float64 {
	return RecencyBoostAt(published, time.Now().UTC())
}

// RecencyBoostAt is RecencyBoost against an explicit reference time, which
// keeps the decay curve testable.
func RecencyBoostAt(published, now time.Time) float64 {
	if published.IsZero() {
		return 1.0
	}
	days := math.Floor(now.Sub(published).Hours() / 24)
	return math.Pow(0.9, days/3)
}
