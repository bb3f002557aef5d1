package chrono

import "github.com/pkg/errors"

var (
	// ErrUnsupportedUnit is returned when a unit cannot perform the
	// requested calculation at all, such as adding eras on a calendar
	// that only has one era.
	ErrUnsupportedUnit = errors.New("unsupported unit: ISO calendar system only has one era")

	// ErrOverflow is returned when an intermediate calculation exceeds
	// the range of an int64.
	ErrOverflow = errors.New("calculation overflows int64")

	// ErrDateOutOfRange is returned when date arithmetic produces a date
	// outside the supported year range [MinYear, MaxYear].
	ErrDateOutOfRange = errors.New("date outside the supported calendar range")
)
