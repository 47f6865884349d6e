package utils

import (
	"booking-service/internal/pkg/constvars"
	"time"
)

// ParseDateTime parses a minute-precision date-time in the boundary pattern
// yyyy-MM-dd HH:mm.
func ParseDateTime(value string) (time.Time, error) {
	return time.Parse(constvars.FormatDateTime, value)
}

// ParseDate parses a bare calendar date in the pattern yyyy-MM-dd.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.FormatDate, value)
}

// ParseClock parses a wall-clock value (HH:mm) into the offset from midnight.
func ParseClock(value string) (time.Duration, error) {
	parsed, err := time.Parse(constvars.FormatClock, value)
	if err != nil {
		return 0, err
	}
	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
}

func FormatDateTime(t time.Time) string {
	return t.Format(constvars.FormatDateTime)
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.FormatDate)
}

// FormatClock renders an offset from midnight as HH:mm.
func FormatClock(offset time.Duration) string {
	return time.Time{}.Add(offset).Format(constvars.FormatClock)
}
