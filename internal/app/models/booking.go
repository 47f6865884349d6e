package models

import "time"

// Booking is a half-open interval [Start, End) on the shared calendar.
// ID and Client are set for persisted bookings only; a free slot is the same
// shape with both left empty. Date-times are naive local values with minute
// precision.
type Booking struct {
	ID     string
	Client string
	Start  time.Time
	End    time.Time
}

// Duration is the booking length in whole minutes.
func (b Booking) Duration() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}
