package bookings

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
)

// BookingValidator applies the admissibility rules to a candidate booking.
// The rules run in a fixed order and the first violated one aborts the
// evaluation; business-rule failures are never aggregated.
type BookingValidator struct {
	settings Settings
}

func NewBookingValidator(settings Settings) *BookingValidator {
	return &BookingValidator{settings: settings}
}

func (v *BookingValidator) Validate(booking models.Booking, existing []models.Booking) error {
	duration := booking.Duration()

	if err := v.checkWorkingHours(booking); err != nil {
		return err
	}
	if err := v.checkWorkingDays(booking); err != nil {
		return err
	}
	if err := v.checkTimeframe(booking); err != nil {
		return err
	}
	if err := v.checkStartAlignment(booking); err != nil {
		return err
	}
	if err := v.checkMinLength(duration); err != nil {
		return err
	}
	if err := v.checkMaxLength(duration); err != nil {
		return err
	}
	if err := v.checkLength(duration); err != nil {
		return err
	}
	return v.checkOverlap(booking, existing)
}

func (v *BookingValidator) checkWorkingHours(booking models.Booking) error {
	if clockOf(booking.Start) < v.settings.WorkdayStart || clockOf(booking.End) > v.settings.WorkdayEnd {
		return exceptions.ErrBookingBeyondWorkingHours(
			utils.FormatClock(v.settings.WorkdayStart),
			utils.FormatClock(v.settings.WorkdayEnd),
		)
	}
	return nil
}

func (v *BookingValidator) checkWorkingDays(booking models.Booking) error {
	if isWeekend(booking.Start) {
		return exceptions.ErrBookingOnWeekend()
	}
	return nil
}

func (v *BookingValidator) checkTimeframe(booking models.Booking) error {
	if dateOf(booking.Start).Before(v.settings.TimeframeStart) || dateOf(booking.End).After(v.settings.TimeframeEnd) {
		return exceptions.ErrBookingBeyondTimeframe(
			utils.FormatDate(v.settings.TimeframeStart),
			utils.FormatDate(v.settings.TimeframeEnd),
		)
	}
	return nil
}

// checkStartAlignment enforces the literal :00/:30 start rule. It is not
// derived from the configured minimum slot duration.
func (v *BookingValidator) checkStartAlignment(booking models.Booking) error {
	minute := booking.Start.Minute()
	if (minute != 0 && minute != 30) || booking.Start.Second() != 0 {
		return exceptions.ErrBookingInvalidStart()
	}
	return nil
}

func (v *BookingValidator) checkMinLength(durationMinutes int) error {
	if durationMinutes < v.settings.MinSlotMinutes {
		return exceptions.ErrBookingBelowMinimum(v.settings.MinSlotMinutes)
	}
	return nil
}

func (v *BookingValidator) checkMaxLength(durationMinutes int) error {
	if durationMinutes > v.settings.MaxSlotMinutes {
		return exceptions.ErrBookingAboveMaximum(v.settings.MaxSlotMinutes / 60)
	}
	return nil
}

func (v *BookingValidator) checkLength(durationMinutes int) error {
	if durationMinutes%v.settings.MinSlotMinutes != 0 {
		return exceptions.ErrBookingInvalidLength(v.settings.MinSlotMinutes)
	}
	return nil
}

func (v *BookingValidator) checkOverlap(booking models.Booking, existing []models.Booking) error {
	if conflict := findConflict(booking, existing); conflict != nil {
		return exceptions.ErrBookingOverlaps(
			utils.FormatDateTime(conflict.Start),
			utils.FormatDateTime(conflict.End),
		)
	}
	return nil
}
