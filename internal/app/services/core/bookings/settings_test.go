package bookings

import (
	"booking-service/internal/app/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bookableConfig(bookable config.Bookable) *config.InternalConfig {
	return &config.InternalConfig{Bookable: bookable}
}

func TestNewSettings_ExplicitTimeframe(t *testing.T) {
	settings, err := NewSettings(bookableConfig(config.Bookable{
		TimeframeStart:             "2023-03-10",
		TimeframeEnd:               "2023-03-13",
		WorkdayStart:               "09:00",
		WorkdayEnd:                 "17:00",
		TimeSlotMinDurationMinutes: 30,
		TimeSlotMaxDurationMinutes: 180,
	}))

	assert.NoError(t, err)
	assert.Equal(t, mustDate(t, "2023-03-10"), settings.TimeframeStart)
	assert.Equal(t, mustDate(t, "2023-03-13"), settings.TimeframeEnd)
	assert.Equal(t, 9*time.Hour, settings.WorkdayStart)
	assert.Equal(t, 17*time.Hour, settings.WorkdayEnd)
}

func TestNewSettings_TimeframeDefaultsToOneWeek(t *testing.T) {
	settings, err := NewSettings(bookableConfig(config.Bookable{
		WorkdayStart:               "09:00",
		WorkdayEnd:                 "17:00",
		TimeSlotMinDurationMinutes: 30,
		TimeSlotMaxDurationMinutes: 180,
	}))

	assert.NoError(t, err)
	assert.Equal(t, settings.TimeframeStart.AddDate(0, 0, 7), settings.TimeframeEnd)
	assert.Equal(t, time.UTC, settings.TimeframeStart.Location())
}

func TestNewSettings_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		bookable config.Bookable
	}{
		{
			"unparsable workday clock",
			config.Bookable{WorkdayStart: "nine", WorkdayEnd: "17:00", TimeSlotMinDurationMinutes: 30, TimeSlotMaxDurationMinutes: 180},
		},
		{
			"timeframe end before start",
			config.Bookable{TimeframeStart: "2023-03-13", TimeframeEnd: "2023-03-10", WorkdayStart: "09:00", WorkdayEnd: "17:00", TimeSlotMinDurationMinutes: 30, TimeSlotMaxDurationMinutes: 180},
		},
		{
			"workday end not after start",
			config.Bookable{WorkdayStart: "17:00", WorkdayEnd: "09:00", TimeSlotMinDurationMinutes: 30, TimeSlotMaxDurationMinutes: 180},
		},
		{
			"non-positive minimum duration",
			config.Bookable{WorkdayStart: "09:00", WorkdayEnd: "17:00", TimeSlotMinDurationMinutes: 0, TimeSlotMaxDurationMinutes: 180},
		},
		{
			"maximum below minimum",
			config.Bookable{WorkdayStart: "09:00", WorkdayEnd: "17:00", TimeSlotMinDurationMinutes: 60, TimeSlotMaxDurationMinutes: 30},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSettings(bookableConfig(tc.bookable))
			assert.Error(t, err)
		})
	}
}
