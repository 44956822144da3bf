// Package biztime provides time boundary calculations for entitlement
// accounting. All storage and comparisons use UTC; the weekly scheduling
// window starts at the most recent Sunday 00:00 UTC. Implicit local
// timezone arithmetic is prohibited.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfWeekUTC returns the most recent Sunday 00:00:00 UTC at or
// before t. Sundays map to themselves.
func StartOfWeekUTC(t time.Time) time.Time {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// StartOfDayUTC returns 00:00:00 UTC on the day containing t.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRemainingCeil returns the number of whole days between now and
// deadline, rounded up, floored at zero.
func DaysRemainingCeil(now, deadline time.Time) int {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}
