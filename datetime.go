package chrono

import "fmt"

// LocalDateTime is an immutable date with a time-of-day, without a time
// zone.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime combines a date and a time-of-day.
func NewLocalDateTime(date LocalDate, time LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: time}
}

// Date returns the date component.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time-of-day component.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// WithDate returns a copy of dt with the date replaced and the time-of-day
// unchanged.
func (dt LocalDateTime) WithDate(date LocalDate) LocalDateTime {
	return LocalDateTime{date: date, time: dt.time}
}

// Equal returns true if dt and other are the same date-time.
func (dt LocalDateTime) Equal(other LocalDateTime) bool { return dt == other }

// Before returns true if dt is strictly before other.
func (dt LocalDateTime) Before(other LocalDateTime) bool {
	if dt.date != other.date {
		return dt.date.Before(other.date)
	}
	return dt.time.Before(other.time)
}

// String returns the date-time in ISO yyyy-mm-ddThh:mm:ss form.
func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%vT%v", dt.date, dt.time)
}
