package config

import (
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "booking-backend-service"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),

			RateLimiterRequestsPerSecond: utils.GetEnvInt("APP_RATE_LIMITER_REQUESTS_PER_SECOND", 5),
			RateLimiterBlockTimeInMinute: utils.GetEnvInt("APP_RATE_LIMITER_BLOCK_TIME_IN_MINUTE", 1),
		},
		Bookable: Bookable{
			TimeframeStart:             utils.GetEnvString("BOOKABLE_TIMEFRAME_START", ""),
			TimeframeEnd:               utils.GetEnvString("BOOKABLE_TIMEFRAME_END", ""),
			WorkdayStart:               utils.GetEnvString("BOOKABLE_WORKDAY_START", "09:00"),
			WorkdayEnd:                 utils.GetEnvString("BOOKABLE_WORKDAY_END", "17:00"),
			TimeSlotMinDurationMinutes: utils.GetEnvInt("BOOKABLE_TIMESLOT_MIN_DURATION_MINUTES", 30),
			TimeSlotMaxDurationMinutes: utils.GetEnvInt("BOOKABLE_TIMESLOT_MAX_DURATION_MINUTES", 180),
		},
	}
}
