package constvars

// Client-facing rejection messages. The booking rule messages carry the
// configured bounds or the conflicting interval for user display.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application."
	ErrClientCannotProcessRequest          = "Cannot process the request."
	ErrClientServerLongRespond             = "Server took too long to respond."
	ErrClientTooManyRequests               = "Too many requests, you are temporarily blocked."

	ErrClientBookingBeyondWorkingHours = "Invalid booking, the passed booking beyond the working hours, start: %s end: %s."
	ErrClientBookingOnWeekend          = "Invalid booking, booking can be done only on weekdays."
	ErrClientBookingBeyondTimeframe    = "Invalid booking, the passed booking beyond the bookable timeframe, start: %s end: %s."
	ErrClientBookingInvalidStart       = "Invalid booking, booked timeslot can only start from :00 or :30."
	ErrClientBookingBelowMinimum       = "Invalid booking, the minimum bookable timeslot: %d minutes."
	ErrClientBookingAboveMaximum       = "Invalid booking, the maximum bookable timeslot: %d hours."
	ErrClientBookingInvalidLength      = "Invalid booking, the timeslot length can only be integer multiples of the minimum bookable timeslot: %d minutes."
	ErrClientBookingOverlaps           = "Invalid request, the passed timeslot overlaps with a booked one: %s end: %s"
	ErrClientBookingStartAfterEnd      = "startTime cannot be after endTime. startTime: %s endTime: %s"
	ErrClientNoTimeSlotFound           = "No booked timeslot found for the provided data: %s"
)

// Developer-facing messages, never returned to production clients.
const (
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotParseDateTime    = "Failed to parse date-time value"
	ErrDevValidationFailed       = "Request body validation failed"
	ErrDevQueryParamMissing      = "Required query parameter is missing: %s"
	ErrDevPathParamInvalid       = "Failed to unescape path parameter: %s"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded"

	ErrDevBookingBeyondWorkingHours = "Booking rejected: beyond working hours"
	ErrDevBookingOnWeekend          = "Booking rejected: weekend day"
	ErrDevBookingBeyondTimeframe    = "Booking rejected: beyond bookable timeframe"
	ErrDevBookingInvalidStart       = "Booking rejected: start not aligned to :00/:30"
	ErrDevBookingBelowMinimum       = "Booking rejected: below minimum duration"
	ErrDevBookingAboveMaximum       = "Booking rejected: above maximum duration"
	ErrDevBookingInvalidLength      = "Booking rejected: duration not a multiple of the minimum slot"
	ErrDevBookingOverlaps           = "Booking rejected: overlaps a booked timeslot"
	ErrDevBookingStartAfterEnd      = "Booking rejected: start after end"
	ErrDevNoTimeSlotFound           = "No booked timeslot contains the specified instant"
)
