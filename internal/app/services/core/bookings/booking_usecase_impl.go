package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	TimeSlotRepository contracts.TimeSlotRepository
	Validator          *BookingValidator
	Availability       *AvailabilityEngine
	Log                *zap.Logger

	// registerMu makes validate-then-insert atomic with respect to other
	// registrations. Read-only queries never take it.
	registerMu sync.Mutex
}

func NewBookingUsecase(
	timeSlotRepository contracts.TimeSlotRepository,
	validator *BookingValidator,
	availability *AvailabilityEngine,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		TimeSlotRepository: timeSlotRepository,
		Validator:          validator,
		Availability:       availability,
		Log:                logger,
	}
}

func (uc *bookingUsecase) RegisterBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.RegisterBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientKey, booking.Client),
	)

	uc.registerMu.Lock()
	defer uc.registerMu.Unlock()

	existing, err := uc.TimeSlotRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	err = uc.Validator.Validate(booking, existing)
	if err != nil {
		uc.Log.Info("bookingUsecase.RegisterBooking rejected booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	persisted, err := uc.TimeSlotRepository.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("bookingUsecase.RegisterBooking persisted booking",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("booking_id", persisted.ID),
	)
	return persisted, nil
}

func (uc *bookingUsecase) GetBookedTimeSlots(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetBookedTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.TimeSlotRepository.All(ctx)
}

func (uc *bookingUsecase) GetBookedTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetBookedTimeSlotsByTimeframe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	booked, err := uc.TimeSlotRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Booking, 0)
	for _, booking := range booked {
		if withinTimeframe(booking, start, end) {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (uc *bookingUsecase) GetFreeTimeSlots(ctx context.Context) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetFreeTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.Availability.FreeTimeSlots(ctx)
}

func (uc *bookingUsecase) GetFreeTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetFreeTimeSlotsByTimeframe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.Availability.FreeTimeSlotsByTimeframe(ctx, start, end)
}

func (uc *bookingUsecase) GetTimeSlotByTime(ctx context.Context, specifiedTime time.Time) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetTimeSlotByTime called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	booked, err := uc.TimeSlotRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, booking := range booked {
		if containsInstant(booking, specifiedTime) {
			found := booking
			return &found, nil
		}
	}
	return nil, exceptions.ErrNoTimeSlotFound(utils.FormatDateTime(specifiedTime))
}

func (uc *bookingUsecase) GetBookingsByClient(ctx context.Context, client string) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetBookingsByClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientKey, client),
	)

	booked, err := uc.TimeSlotRepository.All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Booking, 0)
	for _, booking := range booked {
		if booking.Client == client {
			result = append(result, booking)
		}
	}
	return result, nil
}
