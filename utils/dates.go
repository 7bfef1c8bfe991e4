package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO-8601 calendar date used for activity dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the 24-hour "HH:MM" start time format.
	ClockLayout = "15:04"
)

// Clock abstracts time.Now so date-window logic can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ParseDate parses a calendar date. The result is midnight UTC.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DaysBetween returns the whole calendar-day difference to - from.
// Negative when to is earlier than from.
func DaysBetween(from, to string) (int, error) {
	start, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// DaysAgo returns the UTC calendar date n days before now.
func DaysAgo(clock Clock, n int) time.Time {
	now := clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -n)
}

func IsDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// IsClock reports whether value is a zero-padded "HH:MM" time.
func IsClock(value string) bool {
	if len(value) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, value)
	return err == nil
}
