package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/utils"
	"context"
	"sort"
	"sync"
)

// timeSlotRepository is the in-memory ordered interval index. It stands in
// for a durable repository layer; the service owns it exclusively and nothing
// else aliases the slice.
type timeSlotRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewTimeSlotRepository() contracts.TimeSlotRepository {
	return &timeSlotRepository{
		bookings: make([]models.Booking, 0),
	}
}

func (r *timeSlotRepository) Insert(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = utils.GenerateBookingID()

	// Keep start-ascending order; duplicate starts stay in insertion order.
	idx := sort.Search(len(r.bookings), func(i int) bool {
		return r.bookings[i].Start.After(booking.Start)
	})
	r.bookings = append(r.bookings, models.Booking{})
	copy(r.bookings[idx+1:], r.bookings[idx:])
	r.bookings[idx] = booking

	persisted := booking
	return &persisted, nil
}

func (r *timeSlotRepository) All(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Booking, len(r.bookings))
	copy(snapshot, r.bookings)
	return snapshot, nil
}
