package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Booking-related messages
	BookingCreatedSuccess   = "booking created successfully"
	BookedTimeSlotsSuccess  = "booked timeslots retrieved successfully"
	FreeTimeSlotsSuccess    = "free timeslots retrieved successfully"
	TimeSlotByTimeSuccess   = "booked timeslot retrieved successfully"
	BookingsByClientSuccess = "client bookings retrieved successfully"
)
