package config

type DriverConfig struct {
	Logger Logger
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	Bookable Bookable
}

type App struct {
	Env             string
	Port            string
	Version         string
	EndpointPrefix  string
	ShutdownTimeout int
	MaxRequests     int

	RateLimiterRequestsPerSecond int
	RateLimiterBlockTimeInMinute int
}

// Bookable holds the raw calendar settings; empty timeframe values fall back
// to the today..today+7 default when the settings are parsed.
type Bookable struct {
	TimeframeStart             string
	TimeframeEnd               string
	WorkdayStart               string
	WorkdayEnd                 string
	TimeSlotMinDurationMinutes int
	TimeSlotMaxDurationMinutes int
}
