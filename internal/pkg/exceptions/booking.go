package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
)

// Boundary failures
var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDateTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDateTime)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatAllValidationErrors(err), constvars.ErrDevValidationFailed)
	}
	ErrQueryParamMissing = func(paramName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevQueryParamMissing, paramName))
	}
	ErrPathParamInvalid = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevPathParamInvalid, paramName))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
)

// Booking business-rule rejections. Each factory is one terminal reason of
// the validation chain and carries the offending values for user display.
var (
	ErrBookingBeyondWorkingHours = func(workdayStart, workdayEnd string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingBeyondWorkingHours, workdayStart, workdayEnd), constvars.ErrDevBookingBeyondWorkingHours)
	}
	ErrBookingOnWeekend = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientBookingOnWeekend, constvars.ErrDevBookingOnWeekend)
	}
	ErrBookingBeyondTimeframe = func(timeframeStart, timeframeEnd string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingBeyondTimeframe, timeframeStart, timeframeEnd), constvars.ErrDevBookingBeyondTimeframe)
	}
	ErrBookingInvalidStart = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientBookingInvalidStart, constvars.ErrDevBookingInvalidStart)
	}
	ErrBookingBelowMinimum = func(minMinutes int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingBelowMinimum, minMinutes), constvars.ErrDevBookingBelowMinimum)
	}
	ErrBookingAboveMaximum = func(maxHours int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingAboveMaximum, maxHours), constvars.ErrDevBookingAboveMaximum)
	}
	ErrBookingInvalidLength = func(minMinutes int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingInvalidLength, minMinutes), constvars.ErrDevBookingInvalidLength)
	}
	ErrBookingOverlaps = func(bookedStart, bookedEnd string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingOverlaps, bookedStart, bookedEnd), constvars.ErrDevBookingOverlaps)
	}
	ErrBookingStartAfterEnd = func(start, end string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientBookingStartAfterEnd, start, end), constvars.ErrDevBookingStartAfterEnd)
	}
	ErrNoTimeSlotFound = func(specifiedTime string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientNoTimeSlotFound, specifiedTime), constvars.ErrDevNoTimeSlotFound)
	}
)
