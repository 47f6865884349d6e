package bookings

import (
	"booking-service/internal/app/models"
	"time"
)

// overlaps reports whether two half-open intervals [start, end) share at
// least one instant. Intervals that merely touch at an endpoint do not
// overlap.
func overlaps(a, b models.Booking) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// findConflict returns the first member of existing (start-ascending) that
// overlaps the candidate, or nil when the candidate is conflict-free.
func findConflict(candidate models.Booking, existing []models.Booking) *models.Booking {
	for i := range existing {
		if overlaps(candidate, existing[i]) {
			return &existing[i]
		}
	}
	return nil
}

// withinTimeframe keeps intervals fully inside the queried frame: start
// inclusive, end strictly exclusive of the frame end. Deliberately stricter
// than the half-open overlap containment.
func withinTimeframe(booking models.Booking, start, end time.Time) bool {
	return !booking.Start.Before(start) && booking.End.Before(end)
}

// containsInstant uses [start, end) containment: the start instant belongs
// to the booking, the end instant does not.
func containsInstant(booking models.Booking, t time.Time) bool {
	return !booking.Start.After(t) && booking.End.After(t)
}
