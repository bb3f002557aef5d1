package chrono

import "fmt"

// Period is an immutable amount of time measured in a single calendar
// unit, e.g. "3 Months". Periods are produced by the Between methods of
// Unit.
type Period struct {
	amount int64
	unit   Unit
}

// PeriodOf returns a period of the given amount of unit.
func PeriodOf(amount int64, unit Unit) Period {
	return Period{amount: amount, unit: unit}
}

// Amount returns the signed number of units in the period.
func (p Period) Amount() int64 { return p.amount }

// Unit returns the unit the period is measured in.
func (p Period) Unit() Unit { return p.unit }

// IsZero returns true if the period's amount is zero.
func (p Period) IsZero() bool { return p.amount == 0 }

// String returns the period as "<amount> <unit>", e.g. "3 Months".
func (p Period) String() string {
	return fmt.Sprintf("%d %v", p.amount, p.unit)
}
