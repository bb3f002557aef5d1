package chrono

import (
	"fmt"

	"github.com/JohnCGriffin/overflow" // Overflow-checked int64 arithmetic
	"github.com/pkg/errors"
)

// MinYear and MaxYear bound the years a LocalDate can represent.
const (
	MinYear = -999999999
	MaxYear = 999999999
)

const (
	// Days between 0000-01-01 and the epoch day zero, 1970-01-01.
	daysFrom0000To1970 = 719528

	// Days in a 400-year Gregorian cycle.
	daysPerCycle = 146097
)

// MinDate and MaxDate are the smallest and largest representable dates.
// Forever saturates to them when shifting a date.
var (
	MinDate = LocalDate{year: MinYear, month: 1, day: 1}
	MaxDate = LocalDate{year: MaxYear, month: 12, day: 31}
)

var (
	minEpochDay = MinDate.EpochDay()
	maxEpochDay = MaxDate.EpochDay()
)

// LocalDate is an immutable date on the proleptic Gregorian calendar,
// without a time-of-day or time zone.
//
// The zero value is an invalid date; construct dates with NewLocalDate or
// DateOfEpochDay.
type LocalDate struct {
	year  int
	month int
	day   int
}

// NewLocalDate returns the date with the given year, month (1-12) and
// day-of-month. An error is returned if any field is out of range for the
// calendar, e.g. February 30th.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "year %d", year)
	}
	if month < 1 || month > 12 {
		return LocalDate{}, errors.Errorf("invalid month %d", month)
	}
	if day < 1 || day > lengthOfMonth(month, IsLeapYear(year)) {
		return LocalDate{}, errors.Errorf("invalid day %d of month %d in year %d", day, month, year)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustLocalDate is like NewLocalDate, but panics if there's an error.
func MustLocalDate(year, month, day int) LocalDate {
	d, err := NewLocalDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOfEpochDay returns the date that is epochDay days after 1970-01-01
// (negative values count backwards).
func DateOfEpochDay(epochDay int64) (LocalDate, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "epoch day %d", epochDay)
	}
	// Shift the epoch to 0000-03-01 so that the leap day falls at the end
	// of a year and the 400-year cycle math stays branch-free.
	zeroDay := epochDay + daysFrom0000To1970 - 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust
	marchMonth0 := (doyEst*5 + 2) / 153
	month := int((marchMonth0+2)%12) + 1
	day := int(doyEst - (marchMonth0*306+5)/10 + 1)
	yearEst += marchMonth0 / 10
	return LocalDate{year: int(yearEst), month: month, day: day}, nil
}

// Year returns the proleptic year.
func (d LocalDate) Year() int { return d.year }

// Month returns the month-of-year, from 1 (January) to 12 (December).
func (d LocalDate) Month() int { return d.month }

// Day returns the day-of-month, from 1 to 31.
func (d LocalDate) Day() int { return d.day }

// EpochDay returns the signed count of days since 1970-01-01.
func (d LocalDate) EpochDay() int64 {
	y, m := int64(d.year), int64(d.month)
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(d.day - 1)
	if m > 2 {
		total--
		if !IsLeapYear(d.year) {
			total--
		}
	}
	return total - daysFrom0000To1970
}

// EpochMonth returns the signed count of months since January 1970.
func (d LocalDate) EpochMonth() int64 {
	return int64(d.year-1970)*12 + int64(d.month-1)
}

// Equal returns true if d and other are the same date.
func (d LocalDate) Equal(other LocalDate) bool { return d == other }

// Before returns true if d is strictly before other.
func (d LocalDate) Before(other LocalDate) bool {
	return d.EpochDay() < other.EpochDay()
}

// After returns true if d is strictly after other.
func (d LocalDate) After(other LocalDate) bool {
	return d.EpochDay() > other.EpochDay()
}

// PlusDays returns the date days later (earlier if negative).
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	ed, ok := overflow.Add64(d.EpochDay(), days)
	if !ok {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "%v plus %d days", d, days)
	}
	return DateOfEpochDay(ed)
}

// PlusWeeks returns the date weeks*7 days later (earlier if negative).
func (d LocalDate) PlusWeeks(weeks int64) (LocalDate, error) {
	days, ok := overflow.Mul64(weeks, 7)
	if !ok {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "%v plus %d weeks", d, weeks)
	}
	return d.PlusDays(days)
}

// PlusMonths returns the date months later (earlier if negative). If the
// day-of-month doesn't exist in the target month, it is clamped to the last
// day of that month: 2012-01-31 plus one month is 2012-02-29.
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	calc, ok := overflow.Add64(int64(d.year)*12+int64(d.month-1), months)
	if !ok {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "%v plus %d months", d, months)
	}
	year := floorDiv(calc, 12)
	if year < MinYear || year > MaxYear {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "%v plus %d months", d, months)
	}
	month := int(floorMod(calc, 12)) + 1
	return clampDay(int(year), month, d.day), nil
}

// PlusYears returns the date years later (earlier if negative), clamping
// February 29th to the 28th when the target year is not a leap year.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	year, ok := overflow.Add64(int64(d.year), years)
	if !ok || year < MinYear || year > MaxYear {
		return LocalDate{}, errors.Wrapf(ErrDateOutOfRange, "%v plus %d years", d, years)
	}
	return clampDay(int(year), d.month, d.day), nil
}

// String returns the date in ISO yyyy-mm-dd form.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// prevDay returns the previous calendar day without range validation, so
// that borrowing a day below MinDate stays total. Callers only read the
// fields of the result.
func (d LocalDate) prevDay() LocalDate {
	if d.day > 1 {
		return LocalDate{year: d.year, month: d.month, day: d.day - 1}
	}
	if d.month > 1 {
		m := d.month - 1
		return LocalDate{year: d.year, month: m, day: lengthOfMonth(m, IsLeapYear(d.year))}
	}
	return LocalDate{year: d.year - 1, month: 12, day: 31}
}

// clampDay builds a date from resolved year/month, clamping day to the
// length of the month. year must already be validated.
func clampDay(year, month, day int) LocalDate {
	if max := lengthOfMonth(month, IsLeapYear(year)); day > max {
		day = max
	}
	return LocalDate{year: year, month: month, day: day}
}

// IsLeapYear returns true if year is a leap year on the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// lengthOfMonth returns the number of days in month (1-12).
func lengthOfMonth(month int, leap bool) int {
	switch month {
	case 2:
		if leap {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
