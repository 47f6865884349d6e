package bookings

import "time"

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockOf is the wall-clock offset of t from its own midnight.
func clockOf(t time.Time) time.Duration {
	return t.Sub(dateOf(t))
}

func isWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
