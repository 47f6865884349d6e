package utils

import (
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/dto/responses"
)

func ToBookingResponse(booking models.Booking) responses.Booking {
	return responses.Booking{
		ID:     booking.ID,
		Client: booking.Client,
		Start:  FormatDateTime(booking.Start),
		End:    FormatDateTime(booking.End),
	}
}

func ToBookingListResponse(bookings []models.Booking) []responses.Booking {
	result := make([]responses.Booking, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, ToBookingResponse(booking))
	}
	return result
}
