package bookings

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) RegisterBooking(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateBooking)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Boundary pass: aggregate every field-presence/format violation
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	start, err := utils.ParseDateTime(request.Start)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDateTime(err))
		return
	}
	end, err := utils.ParseDateTime(request.End)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDateTime(err))
		return
	}

	// Inverted intervals are a structural defect of the entity itself and
	// are rejected here, before the business-rule chain runs
	if start.After(end) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBookingStartAfterEnd(request.Start, request.End))
		return
	}

	booking := models.Booking{
		Client: request.Client,
		Start:  start,
		End:    end,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	persisted, err := ctrl.BookingUsecase.RegisterBooking(ctx, booking)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderLocation, persisted.ID)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedSuccess, utils.ToBookingResponse(*persisted))
}

func (ctrl *BookingController) GetBookedTimeSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booked, err := ctrl.BookingUsecase.GetBookedTimeSlots(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookedTimeSlotsSuccess, utils.ToBookingListResponse(booked))
}

func (ctrl *BookingController) GetBookedTimeSlotsByTimeframe(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeframeParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booked, err := ctrl.BookingUsecase.GetBookedTimeSlotsByTimeframe(ctx, start, end)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookedTimeSlotsSuccess, utils.ToBookingListResponse(booked))
}

func (ctrl *BookingController) GetFreeTimeSlots(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	free, err := ctrl.BookingUsecase.GetFreeTimeSlots(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FreeTimeSlotsSuccess, utils.ToBookingListResponse(free))
}

func (ctrl *BookingController) GetFreeTimeSlotsByTimeframe(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeframeParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	free, err := ctrl.BookingUsecase.GetFreeTimeSlotsByTimeframe(ctx, start, end)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FreeTimeSlotsSuccess, utils.ToBookingListResponse(free))
}

func (ctrl *BookingController) GetTimeSlotByTime(w http.ResponseWriter, r *http.Request) {
	// The path segment arrives escaped when the instant carries a space
	specifiedTimeParam, err := url.PathUnescape(chi.URLParam(r, constvars.URLParamSpecifiedTime))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPathParamInvalid(err, constvars.URLParamSpecifiedTime))
		return
	}

	specifiedTime, err := utils.ParseDateTime(specifiedTimeParam)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDateTime(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := ctrl.BookingUsecase.GetTimeSlotByTime(ctx, specifiedTime)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TimeSlotByTimeSuccess, utils.ToBookingResponse(*booking))
}

func (ctrl *BookingController) GetBookingsByClient(w http.ResponseWriter, r *http.Request) {
	client, err := url.PathUnescape(chi.URLParam(r, constvars.URLParamClient))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPathParamInvalid(err, constvars.URLParamClient))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.GetBookingsByClient(ctx, client)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingsByClientSuccess, utils.ToBookingListResponse(bookings))
}

func parseTimeframeParams(r *http.Request) (time.Time, time.Time, error) {
	startParam := r.URL.Query().Get(constvars.QueryParamStart)
	if startParam == "" {
		return time.Time{}, time.Time{}, exceptions.ErrQueryParamMissing(constvars.QueryParamStart)
	}
	endParam := r.URL.Query().Get(constvars.QueryParamEnd)
	if endParam == "" {
		return time.Time{}, time.Time{}, exceptions.ErrQueryParamMissing(constvars.QueryParamEnd)
	}

	start, err := utils.ParseDateTime(startParam)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrCannotParseDateTime(err)
	}
	end, err := utils.ParseDateTime(endParam)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrCannotParseDateTime(err)
	}
	return start, end, nil
}
