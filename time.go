package chrono

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	nanosPerSecond = int64(1000000000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
)

// Midnight is the start of the day, 00:00:00.
var Midnight = LocalTime{}

// LocalTime is an immutable time-of-day without a date or time zone,
// stored as nanoseconds since midnight.
type LocalTime struct {
	nanoOfDay int64
}

// NewLocalTime returns the time-of-day with the given hour (0-23),
// minute (0-59) and second (0-59).
func NewLocalTime(hour, minute, second int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, errors.Errorf("invalid hour %d", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, errors.Errorf("invalid minute %d", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, errors.Errorf("invalid second %d", second)
	}
	nod := int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute + int64(second)*nanosPerSecond
	return LocalTime{nanoOfDay: nod}, nil
}

// MustLocalTime is like NewLocalTime, but panics if there's an error.
func MustLocalTime(hour, minute, second int) LocalTime {
	t, err := NewLocalTime(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour returns the hour-of-day, from 0 to 23.
func (t LocalTime) Hour() int { return int(t.nanoOfDay / nanosPerHour) }

// Minute returns the minute-of-hour, from 0 to 59.
func (t LocalTime) Minute() int { return int(t.nanoOfDay % nanosPerHour / nanosPerMinute) }

// Second returns the second-of-minute, from 0 to 59.
func (t LocalTime) Second() int { return int(t.nanoOfDay % nanosPerMinute / nanosPerSecond) }

// NanoOfDay returns the time as nanoseconds since midnight.
func (t LocalTime) NanoOfDay() int64 { return t.nanoOfDay }

// Equal returns true if t and other are the same time-of-day.
func (t LocalTime) Equal(other LocalTime) bool { return t == other }

// Before returns true if t is strictly before other.
func (t LocalTime) Before(other LocalTime) bool { return t.nanoOfDay < other.nanoOfDay }

// After returns true if t is strictly after other.
func (t LocalTime) After(other LocalTime) bool { return t.nanoOfDay > other.nanoOfDay }

// String returns the time in hh:mm:ss form.
func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
