package billing

import (
	"math"
	"time"
)

// ElapsedHours returns the fractional hours between checkIn and now,
// clamped at zero. A zero checkIn time yields 0 rather than an error so
// records with missing timestamps bill at the minimum.
func ElapsedHours(checkIn, now time.Time) float64 {
	if checkIn.IsZero() {
		return 0
	}
	hours := now.Sub(checkIn).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// Multiplier converts elapsed hours into the number of billable days.
// Every started 24-hour block counts as a full day, with a minimum of one.
func Multiplier(hours float64) int {
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		return 1
	}
	return days
}
