package contracts

import (
	"booking-service/internal/app/models"
	"context"
	"time"
)

// TimeSlotRepository is the ordered interval index behind the booking
// service. The in-memory implementation is the reference one; a durable,
// transactional store can be swapped in behind this same contract.
type TimeSlotRepository interface {
	// Insert stores the booking, assigns its identifier and returns the
	// persisted copy. Conflict checking happens before insertion, in the
	// validator; insertion itself never fails on conflicts.
	Insert(ctx context.Context, booking models.Booking) (*models.Booking, error)
	// All returns a snapshot of every stored booking, ordered by start
	// instant ascending.
	All(ctx context.Context) ([]models.Booking, error)
}

type BookingUsecase interface {
	RegisterBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetBookedTimeSlots(ctx context.Context) ([]models.Booking, error)
	GetBookedTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error)
	GetFreeTimeSlots(ctx context.Context) ([]models.Booking, error)
	GetFreeTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error)
	GetTimeSlotByTime(ctx context.Context, specifiedTime time.Time) (*models.Booking, error)
	GetBookingsByClient(ctx context.Context, client string) ([]models.Booking, error)
}
