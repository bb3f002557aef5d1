// Package chrono implements period arithmetic on the proleptic Gregorian
// calendar.
//
// The core of the package is Unit, a fixed set of eleven calendar units
// from days up through millennia, plus the artificial Eras and Forever
// units. A unit can shift a date-like value by a signed amount of itself,
// or count the number of complete units separating two values. Every
// higher-level period or duration computation reduces to these per-unit
// rules.
//
// All values in this package are immutable and all operations are pure
// functions, so everything here is safe for concurrent use without
// coordination.
package chrono
