package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/services/core/bookings"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Bookable calendar settings
	settings, err := bookings.NewSettings(bootstrap.InternalConfig)
	if err != nil {
		bootstrap.Logger.Fatal("Invalid bookable settings", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Booking
	timeSlotRepository := bookings.NewTimeSlotRepository()
	bookingValidator := bookings.NewBookingValidator(settings)
	availabilityEngine := bookings.NewAvailabilityEngine(settings, timeSlotRepository)
	bookingUsecase := bookings.NewBookingUsecase(timeSlotRepository, bookingValidator, availabilityEngine, bootstrap.Logger)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, bookingController)
}
