package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"context"
	"time"
)

// AvailabilityEngine derives the free-slots view: the grid of fixed-size
// slots across the bookable date range and working hours, minus every slot
// that overlaps a booked interval.
type AvailabilityEngine struct {
	settings           Settings
	timeSlotRepository contracts.TimeSlotRepository
}

func NewAvailabilityEngine(settings Settings, timeSlotRepository contracts.TimeSlotRepository) *AvailabilityEngine {
	return &AvailabilityEngine{
		settings:           settings,
		timeSlotRepository: timeSlotRepository,
	}
}

func (e *AvailabilityEngine) FreeTimeSlots(ctx context.Context) ([]models.Booking, error) {
	booked, err := e.timeSlotRepository.All(ctx)
	if err != nil {
		return nil, err
	}
	return e.freeSlots(booked), nil
}

// FreeTimeSlotsByTimeframe applies the same generation and filter pipeline,
// keeping only slots fully inside [start, end) with the end strictly
// exclusive of the boundary.
func (e *AvailabilityEngine) FreeTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	booked, err := e.timeSlotRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	scoped := make([]models.Booking, 0)
	for _, slot := range e.freeSlots(booked) {
		if withinTimeframe(slot, start, end) {
			scoped = append(scoped, slot)
		}
	}
	return scoped, nil
}

func (e *AvailabilityEngine) freeSlots(booked []models.Booking) []models.Booking {
	free := make([]models.Booking, 0)
	for day := e.settings.TimeframeStart; !day.After(e.settings.TimeframeEnd); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			continue
		}
		for _, slot := range e.slotsForDay(day) {
			if findConflict(slot, booked) == nil {
				free = append(free, slot)
			}
		}
	}
	return free
}

// slotsForDay generates the per-day grid, stepping by the minimum slot
// duration from the workday start. The final slot is clipped to the workday
// end rather than discarded, even when shorter than the nominal duration.
func (e *AvailabilityEngine) slotsForDay(day time.Time) []models.Booking {
	workdayStart := day.Add(e.settings.WorkdayStart)
	workdayEnd := day.Add(e.settings.WorkdayEnd)
	step := time.Duration(e.settings.MinSlotMinutes) * time.Minute

	var slots []models.Booking
	for t := workdayStart; t.Before(workdayEnd); t = t.Add(step) {
		end := t.Add(step)
		if end.After(workdayEnd) {
			end = workdayEnd
		}
		slots = append(slots, models.Booking{Start: t, End: end})
	}
	return slots
}
