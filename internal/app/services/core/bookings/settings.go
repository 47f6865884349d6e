package bookings

import (
	"booking-service/internal/app/config"
	"booking-service/internal/pkg/utils"
	"fmt"
	"time"
)

// Settings is the parsed bookable-calendar configuration, read-only for the
// lifetime of the process. Workday bounds are offsets from midnight; slot
// durations are whole minutes and the minimum doubles as the granularity
// unit for slot generation.
type Settings struct {
	TimeframeStart time.Time
	TimeframeEnd   time.Time
	WorkdayStart   time.Duration
	WorkdayEnd     time.Duration
	MinSlotMinutes int
	MaxSlotMinutes int
}

// NewSettings parses the raw configuration. An unset timeframe defaults to
// today..today+7 days, both bounds inclusive.
func NewSettings(internalConfig *config.InternalConfig) (Settings, error) {
	bookable := internalConfig.Bookable
	today := dateOf(time.Now().UTC())

	timeframeStart := today
	if bookable.TimeframeStart != "" {
		parsed, err := utils.ParseDate(bookable.TimeframeStart)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid bookable timeframe start %q: %w", bookable.TimeframeStart, err)
		}
		timeframeStart = parsed
	}

	timeframeEnd := today.AddDate(0, 0, 7)
	if bookable.TimeframeEnd != "" {
		parsed, err := utils.ParseDate(bookable.TimeframeEnd)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid bookable timeframe end %q: %w", bookable.TimeframeEnd, err)
		}
		timeframeEnd = parsed
	}

	workdayStart, err := utils.ParseClock(bookable.WorkdayStart)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid workday start %q: %w", bookable.WorkdayStart, err)
	}
	workdayEnd, err := utils.ParseClock(bookable.WorkdayEnd)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid workday end %q: %w", bookable.WorkdayEnd, err)
	}

	settings := Settings{
		TimeframeStart: timeframeStart,
		TimeframeEnd:   timeframeEnd,
		WorkdayStart:   workdayStart,
		WorkdayEnd:     workdayEnd,
		MinSlotMinutes: bookable.TimeSlotMinDurationMinutes,
		MaxSlotMinutes: bookable.TimeSlotMaxDurationMinutes,
	}
	if err := settings.validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Settings) validate() error {
	if s.TimeframeEnd.Before(s.TimeframeStart) {
		return fmt.Errorf("bookable timeframe end %s before start %s", utils.FormatDate(s.TimeframeEnd), utils.FormatDate(s.TimeframeStart))
	}
	if s.WorkdayEnd <= s.WorkdayStart {
		return fmt.Errorf("workday end %s not after start %s", utils.FormatClock(s.WorkdayEnd), utils.FormatClock(s.WorkdayStart))
	}
	if s.MinSlotMinutes <= 0 {
		return fmt.Errorf("minimum timeslot duration must be positive, got %d", s.MinSlotMinutes)
	}
	if s.MaxSlotMinutes < s.MinSlotMinutes {
		return fmt.Errorf("maximum timeslot duration %d below minimum %d", s.MaxSlotMinutes, s.MinSlotMinutes)
	}
	return nil
}
