package middlewares

import (
	"booking-service/internal/app/config"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	RateLimiter    *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		RateLimiter: NewRateLimiter(
			internalConfig.App.RateLimiterRequestsPerSecond,
			time.Second,
			time.Duration(internalConfig.App.RateLimiterBlockTimeInMinute)*time.Minute,
		),
	}
}
