package routers

import (
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(r chi.Router, m *middlewares.Middlewares, ctrl *bookings.BookingController) {
	r.With(m.RateLimiter.Limit).Post("/book", ctrl.RegisterBooking)

	r.Get("/booked", ctrl.GetBookedTimeSlots)
	r.Get("/booked/timeframe", ctrl.GetBookedTimeSlotsByTimeframe)
	r.Get("/free", ctrl.GetFreeTimeSlots)
	r.Get("/free/timeframe", ctrl.GetFreeTimeSlotsByTimeframe)
	r.Get("/specific-time/{specifiedTime}", ctrl.GetTimeSlotByTime)
	r.Get("/client/{client}", ctrl.GetBookingsByClient)
}
