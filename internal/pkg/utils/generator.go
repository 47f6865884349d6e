package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateBookingID mints the opaque identifier assigned to a booking when it
// is persisted. Free slots never receive one.
func GenerateBookingID() string {
	return uuid.NewString()
}
