package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a time of day in "HH:MM" format
type TimeString string

// NewTimeString creates a TimeString from a time.Time (truncated to minutes)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the underlying "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}

	if hours < 0 || hours > 23 {
		return fmt.Errorf("hours out of range in %q", string(t))
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("minutes out of range in %q", string(t))
	}

	return nil
}

// Minutes returns the value as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parts := strings.Split(string(t), ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes, nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// Returns an error if the result leaves the 24-hour day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %q + %d minutes leaves the day", string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// DiffMinutes returns other - t in minutes
func (t TimeString) DiffMinutes(other TimeString) (int, error) {
	a, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	b, err := other.Minutes()
	if err != nil {
		return 0, err
	}
	return b - a, nil
}

// Hour returns the hour component
func (t TimeString) Hour() (int, error) {
	total, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	return total / 60, nil
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
