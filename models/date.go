package models

import (
	"errors"
	"time"
)

// DayLayout is the wire format of scheduled dates
const DayLayout = "2006-01-02"

// ClockLayout is the wire format of dose times
const ClockLayout = "15:04"

// ErrInvalidDate is returned when a date is neither RFC 3339 nor YYYY-MM-DD
var ErrInvalidDate = errors.New("invalid date")

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD days (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, time.UTC)
}

// ParseDateIn is ParseDate with plain days taken as midnight in loc
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DayLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ParseDay parses a YYYY-MM-DD scheduled date to UTC midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidClock reports whether s is a zero padded "HH:MM" clock time
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
