package routers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) RegisterBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookedTimeSlots(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookedTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetFreeTimeSlots(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetFreeTimeSlotsByTimeframe(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetTimeSlotByTime(ctx context.Context, specifiedTime time.Time) (*models.Booking, error) {
	args := m.Called(ctx, specifiedTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) GetBookingsByClient(ctx context.Context, client string) ([]models.Booking, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

type errorBody struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

func setupBookingRouter(t *testing.T) (*chi.Mux, *MockBookingUsecase) {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			RateLimiterRequestsPerSecond: 100,
			RateLimiterBlockTimeInMinute: 1,
		},
	}

	mockBookingUsecase := new(MockBookingUsecase)
	bookingController := bookings.NewBookingController(logger, mockBookingUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig)

	router := chi.NewRouter()
	attachBookingRoutes(router, middlewareInstance, bookingController)
	return router, mockBookingUsecase
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	assert.NoError(t, err)
	return parsed
}

func TestBookingRouter_RegisterBooking(t *testing.T) {
	t.Run("valid booking returns 201 with Location header", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		persisted := &models.Booking{
			ID:     "7a1b9a54-6f5e-4f27-9f2c-1f6a02f6f9de",
			Client: "John Doe",
			Start:  mustParse(t, "2023-03-10 10:00"),
			End:    mustParse(t, "2023-03-10 11:00"),
		}
		mockBookingUsecase.On("RegisterBooking", mock.Anything, mock.AnythingOfType("models.Booking")).Return(persisted, nil)

		jsonBody, _ := json.Marshal(requests.CreateBooking{
			Client: "John Doe",
			Start:  "2023-03-10 10:00",
			End:    "2023-03-10 11:00",
		})

		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, persisted.ID, rr.Header().Get("Location"))

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				ID     string `json:"id"`
				Client string `json:"client"`
				Start  string `json:"start"`
				End    string `json:"end"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, persisted.ID, body.Data.ID)
		assert.Equal(t, "2023-03-10 10:00", body.Data.Start)
		assert.Equal(t, "2023-03-10 11:00", body.Data.End)

		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("missing client aggregates boundary violations", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		jsonBody, _ := json.Marshal(requests.CreateBooking{
			Start: "2023-03-10 10:00",
			End:   "2023-03-10 11:00",
		})

		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body errorBody
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "client is required", body.Message)

		mockBookingUsecase.AssertNotCalled(t, "RegisterBooking")
	})

	t.Run("inverted interval is rejected before the business rules", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		jsonBody, _ := json.Marshal(requests.CreateBooking{
			Client: "John Doe",
			Start:  "2023-03-10 11:00",
			End:    "2023-03-10 10:00",
		})

		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body errorBody
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "startTime cannot be after endTime. startTime: 2023-03-10 11:00 endTime: 2023-03-10 10:00", body.Message)

		mockBookingUsecase.AssertNotCalled(t, "RegisterBooking")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		req := httptest.NewRequest("POST", "/book", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBookingUsecase.AssertNotCalled(t, "RegisterBooking")
	})

	t.Run("business rejection is surfaced with its status and message", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		mockBookingUsecase.On("RegisterBooking", mock.Anything, mock.AnythingOfType("models.Booking")).
			Return(nil, exceptions.ErrBookingOverlaps("2023-03-10 10:00", "2023-03-10 11:00"))

		jsonBody, _ := json.Marshal(requests.CreateBooking{
			Client: "John Doe",
			Start:  "2023-03-10 10:30",
			End:    "2023-03-10 11:30",
		})

		req := httptest.NewRequest("POST", "/book", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var body errorBody
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Invalid request, the passed timeslot overlaps with a booked one: 2023-03-10 10:00 end: 2023-03-10 11:00", body.Message)
	})
}

func TestBookingRouter_GetBookedTimeSlots(t *testing.T) {
	router, mockBookingUsecase := setupBookingRouter(t)

	booked := []models.Booking{
		{
			ID:     "booking-1",
			Client: "John Doe",
			Start:  mustParse(t, "2023-03-10 10:00"),
			End:    mustParse(t, "2023-03-10 11:00"),
		},
	}
	mockBookingUsecase.On("GetBookedTimeSlots", mock.Anything).Return(booked, nil)

	req := httptest.NewRequest("GET", "/booked", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "booking-1", body.Data[0].ID)

	mockBookingUsecase.AssertExpectations(t)
}

func TestBookingRouter_TimeframeQueries(t *testing.T) {
	t.Run("booked timeframe forwards parsed bounds", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		start := mustParse(t, "2023-03-10 09:00")
		end := mustParse(t, "2023-03-10 12:00")
		mockBookingUsecase.On("GetBookedTimeSlotsByTimeframe", mock.Anything, start, end).Return([]models.Booking{}, nil)

		req := httptest.NewRequest("GET", "/booked/timeframe?start=2023-03-10+09:00&end=2023-03-10+12:00", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("missing query parameter returns 400", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		req := httptest.NewRequest("GET", "/free/timeframe?start=2023-03-10+09:00", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBookingUsecase.AssertNotCalled(t, "GetFreeTimeSlotsByTimeframe")
	})
}

func TestBookingRouter_GetTimeSlotByTime(t *testing.T) {
	t.Run("found slot is returned", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		specifiedTime := mustParse(t, "2023-03-10 10:30")
		found := &models.Booking{
			ID:     "booking-1",
			Client: "John Doe",
			Start:  mustParse(t, "2023-03-10 10:00"),
			End:    mustParse(t, "2023-03-10 11:00"),
		}
		mockBookingUsecase.On("GetTimeSlotByTime", mock.Anything, specifiedTime).Return(found, nil)

		req := httptest.NewRequest("GET", "/specific-time/2023-03-10%2010:30", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockBookingUsecase.AssertExpectations(t)
	})

	t.Run("miss maps to 404", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		specifiedTime := mustParse(t, "2023-03-10 08:00")
		mockBookingUsecase.On("GetTimeSlotByTime", mock.Anything, specifiedTime).
			Return(nil, exceptions.ErrNoTimeSlotFound("2023-03-10 08:00"))

		req := httptest.NewRequest("GET", "/specific-time/2023-03-10%2008:00", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var body errorBody
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "No booked timeslot found for the provided data: 2023-03-10 08:00", body.Message)
	})

	t.Run("unparsable path value returns 400", func(t *testing.T) {
		router, mockBookingUsecase := setupBookingRouter(t)

		req := httptest.NewRequest("GET", "/specific-time/not-a-time", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockBookingUsecase.AssertNotCalled(t, "GetTimeSlotByTime")
	})
}

func TestBookingRouter_GetBookingsByClient(t *testing.T) {
	router, mockBookingUsecase := setupBookingRouter(t)

	mockBookingUsecase.On("GetBookingsByClient", mock.Anything, "John Doe").Return([]models.Booking{}, nil)

	req := httptest.NewRequest("GET", "/client/John%20Doe", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockBookingUsecase.AssertExpectations(t)
}
