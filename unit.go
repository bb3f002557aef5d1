package chrono

import (
	"github.com/JohnCGriffin/overflow" // Overflow-checked int64 arithmetic
	"github.com/pkg/errors"
)

// Unit is a standard calendar unit of date-based time, from days up
// through millennia plus the artificial Eras and Forever units. The set of
// units is closed: the eleven package-level constants are the only values.
//
// A unit shifts date-like values by a signed amount of itself (AddToDate
// and friends) and counts the complete units separating two values
// (BetweenDates and friends). A unit is "complete" only once its defining
// boundary has been reached or passed: one month after January 31st is not
// complete until the matching day-of-month comes around, so February 28th
// is still zero complete months.
type Unit int

// The calendar units, smallest to largest. Eras and Forever are
// artificial units and sit outside the size ordering.
const (
	Days Unit = iota
	Weeks
	Months
	QuarterYears
	HalfYears
	Years
	Decades
	Centuries
	Millenia
	Eras
	Forever
)

// Units lists every calendar unit in declaration order.
var Units = [...]Unit{
	Days, Weeks, Months, QuarterYears, HalfYears, Years,
	Decades, Centuries, Millenia, Eras, Forever,
}

// Seconds in a year of 365.2425 days, the mean Gregorian year.
const secondsPerYear = 31556952

var unitNames = [...]string{
	Days:         "Days",
	Weeks:        "Weeks",
	Months:       "Months",
	QuarterYears: "QuarterYears",
	HalfYears:    "HalfYears",
	Years:        "Years",
	Decades:      "Decades",
	Centuries:    "Centuries",
	Millenia:     "Millenia",
	Eras:         "Eras",
	Forever:      "Forever",
}

// Estimated unit durations, truncated to whole seconds of the mean
// Gregorian year. The Eras duration is an artificial one billion years;
// Forever is the largest duration there is.
var unitDurations = [...]Duration{
	Days:         DurationOfSeconds(86400),
	Weeks:        DurationOfSeconds(7 * 86400),
	Months:       DurationOfSeconds(secondsPerYear / 12),
	QuarterYears: DurationOfSeconds(secondsPerYear / 4),
	HalfYears:    DurationOfSeconds(secondsPerYear / 2),
	Years:        DurationOfSeconds(secondsPerYear),
	Decades:      DurationOfSeconds(secondsPerYear * 10),
	Centuries:    DurationOfSeconds(secondsPerYear * 100),
	Millenia:     DurationOfSeconds(secondsPerYear * 1000),
	Eras:         DurationOfSeconds(secondsPerYear * 1000000000),
	Forever:      MaxDuration,
}

// PeriodUnit is the capability contract of a calendar unit. Unit is the
// only implementation in this package; the interface exists so that
// higher-level period code can accept units without naming the concrete
// type.
type PeriodUnit interface {
	Name() string
	Duration() Duration
	IsDurationEstimated() bool
	AddToDate(date LocalDate, amount int64) (LocalDate, error)
	AddToTime(time LocalTime, amount int64) LocalTime
	AddToDateTime(dateTime LocalDateTime, amount int64) (LocalDateTime, error)
	BetweenDates(date1, date2 LocalDate) int64
	BetweenTimes(time1, time2 LocalTime) int64
	BetweenDateTimes(dateTime1, dateTime2 LocalDateTime) int64
}

var _ PeriodUnit = Days

// Name returns the stable display name of the unit, e.g. "QuarterYears".
func (u Unit) Name() string { return unitNames[u] }

// String returns the unit's display name.
func (u Unit) String() string { return u.Name() }

// Duration returns the estimated duration of the unit. Days vary with
// daylight saving shifts and months differ in length, so the value is an
// estimate suited only for documentation and ordering.
func (u Unit) Duration() Duration { return unitDurations[u] }

// IsDurationEstimated reports whether the unit's duration is an estimate.
// It is true for every calendar unit in this package.
func (u Unit) IsDurationEstimated() bool { return true }

// AddToDate returns date shifted by amount units. A zero amount returns
// the date unchanged for every unit.
//
// Eras cannot be added on a single-era calendar and return
// ErrUnsupportedUnit for any nonzero amount. Decades, Centuries and
// Millenia return ErrOverflow if scaling the amount to years exceeds an
// int64. Forever ignores the magnitude of amount and saturates to MaxDate
// or MinDate. Any unit can return ErrDateOutOfRange from the underlying
// date shift.
func (u Unit) AddToDate(date LocalDate, amount int64) (LocalDate, error) {
	if amount == 0 {
		return date, nil
	}
	switch u {
	case Days:
		return date.PlusDays(amount)
	case Weeks:
		return date.PlusWeeks(amount)
	case Months:
		return date.PlusMonths(amount)
	case QuarterYears:
		// Split into whole-year chunks of 256 before scaling by 3 so the
		// remainder multiplication cannot overflow (256 is a multiple of 4).
		date, err := date.PlusYears(amount / 256)
		if err != nil {
			return LocalDate{}, err
		}
		return date.PlusMonths((amount % 256) * 3)
	case HalfYears:
		// Same split as QuarterYears (256 is a multiple of 2).
		date, err := date.PlusYears(amount / 256)
		if err != nil {
			return LocalDate{}, err
		}
		return date.PlusMonths((amount % 256) * 6)
	case Years:
		return date.PlusYears(amount)
	case Decades:
		return plusScaledYears(date, amount, 10)
	case Centuries:
		return plusScaledYears(date, amount, 100)
	case Millenia:
		return plusScaledYears(date, amount, 1000)
	case Eras:
		return LocalDate{}, ErrUnsupportedUnit
	case Forever:
		if amount > 0 {
			return MaxDate, nil
		}
		return MinDate, nil
	}
	panic("chrono: unknown unit")
}

// plusScaledYears shifts date by amount*scale years, reporting overflow of
// the multiplication as ErrOverflow rather than wrapping around.
func plusScaledYears(date LocalDate, amount, scale int64) (LocalDate, error) {
	years, ok := overflow.Mul64(amount, scale)
	if !ok {
		return LocalDate{}, errors.Wrapf(ErrOverflow, "%d * %d years", amount, scale)
	}
	return date.PlusYears(years)
}

// AddToTime returns the time-of-day unchanged: date-based units have no
// effect below the granularity of a day.
func (u Unit) AddToTime(time LocalTime, amount int64) LocalTime {
	return time
}

// AddToDateTime shifts the date component of dateTime by amount units and
// keeps the time-of-day. The error conditions are those of AddToDate.
func (u Unit) AddToDateTime(dateTime LocalDateTime, amount int64) (LocalDateTime, error) {
	date, err := u.AddToDate(dateTime.Date(), amount)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dateTime.WithDate(date), nil
}

// BetweenDates returns the number of complete units elapsed going from
// date1 to date2, negative if date2 is before date1.
//
// Weeks, QuarterYears, HalfYears, Decades, Centuries and Millenia derive
// their count from a smaller unit by integer division, which truncates
// toward zero rather than flooring; see the package tests for the
// negative-span consequences. Eras and Forever always return 0.
func (u Unit) BetweenDates(date1, date2 LocalDate) int64 {
	switch u {
	case Days:
		return date2.EpochDay() - date1.EpochDay()
	case Weeks:
		return Days.BetweenDates(date1, date2) / 7
	case Months:
		months := date2.EpochMonth() - date1.EpochMonth()
		if date2.Day() < date1.Day() {
			// The final month is not complete until the day-of-month of
			// date1 comes around again.
			months--
		}
		return months
	case QuarterYears:
		return Months.BetweenDates(date1, date2) / 3
	case HalfYears:
		return Months.BetweenDates(date1, date2) / 6
	case Years:
		years := int64(date2.Year()) - int64(date1.Year())
		if date2.Month() < date1.Month() ||
			(date2.Month() == date1.Month() && date2.Day() < date1.Day()) {
			// The anniversary hasn't been reached yet.
			years--
		}
		return years
	case Decades:
		return Years.BetweenDates(date1, date2) / 10
	case Centuries:
		return Years.BetweenDates(date1, date2) / 100
	case Millenia:
		return Years.BetweenDates(date1, date2) / 1000
	case Eras, Forever:
		return 0
	}
	panic("chrono: unknown unit")
}

// BetweenTimes returns 0 for every unit: no date-based unit separates two
// times-of-day.
func (u Unit) BetweenTimes(time1, time2 LocalTime) int64 {
	return 0
}

// BetweenDateTimes returns the number of complete units elapsed going from
// dateTime1 to dateTime2. If the second time-of-day is earlier than the
// first, a day is borrowed before comparing the dates, so 23:00 to 01:00
// the next day is still zero complete days.
func (u Unit) BetweenDateTimes(dateTime1, dateTime2 LocalDateTime) int64 {
	start, end := dateTime1.Date(), dateTime2.Date()
	if dateTime2.Time().Before(dateTime1.Time()) {
		end = end.prevDay()
	}
	return u.BetweenDates(start, end)
}

// Between returns the period in this unit between two dates, pairing the
// BetweenDates count with the unit itself.
func (u Unit) Between(date1, date2 LocalDate) Period {
	return PeriodOf(u.BetweenDates(date1, date2), u)
}

// BetweenDateTime returns the period in this unit between two date-times.
func (u Unit) BetweenDateTime(dateTime1, dateTime2 LocalDateTime) Period {
	return PeriodOf(u.BetweenDateTimes(dateTime1, dateTime2), u)
}

// UnitOf returns the unit with the given display name, e.g. "Months".
func UnitOf(name string) (Unit, bool) {
	for _, u := range Units {
		if u.Name() == name {
			return u, true
		}
	}
	return 0, false
}

// UnitNames returns the display names of every unit, in declaration order.
func UnitNames() []string {
	names := make([]string, 0, len(Units))
	for _, u := range Units {
		names = append(names, u.Name())
	}
	return names
}
