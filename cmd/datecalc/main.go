// Command datecalc is a one-shot calendar calculator: it shifts a date by
// an amount of a calendar unit, or counts the complete units between two
// dates. Dates are passed as separate numeric flags, e.g.
//
//	datecalc add --unit Months --amount 3 --year 2012 --month 1 --day 31
//	datecalc between --unit Years --year 2011 --month 6 --day 30 --year2 2012 --month2 6 --day2 30
package main

import (
	"fmt"

	"go.uber.org/zap"                        // Logging
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line args parser

	"github.com/mintel/chrono"
	"github.com/mintel/chrono/cmd" // Common logging setup func
)

var (
	unitFlag = kingpin.Flag("unit", "Calendar unit to calculate in.").
			Default(chrono.Days.Name()).
			Enum(chrono.UnitNames()...)

	addCmd    = kingpin.Command("add", "Shift a date by an amount of units.")
	addAmount = addCmd.Flag("amount", "Signed amount of units to add.").Required().Int64()
	addYear   = addCmd.Flag("year", "Year of the date to shift.").Required().Int()
	addMonth  = addCmd.Flag("month", "Month of the date to shift (1-12).").Required().Int()
	addDay    = addCmd.Flag("day", "Day-of-month of the date to shift.").Required().Int()

	betweenCmd   = kingpin.Command("between", "Count complete units between two dates.")
	betweenYear  = betweenCmd.Flag("year", "Year of the first date.").Required().Int()
	betweenMonth = betweenCmd.Flag("month", "Month of the first date (1-12).").Required().Int()
	betweenDay   = betweenCmd.Flag("day", "Day-of-month of the first date.").Required().Int()
	betweenYear2 = betweenCmd.Flag("year2", "Year of the second date.").Required().Int()
	betweenMon2  = betweenCmd.Flag("month2", "Month of the second date (1-12).").Required().Int()
	betweenDay2  = betweenCmd.Flag("day2", "Day-of-month of the second date.").Required().Int()
)

func main() {
	kingpin.CommandLine.Help = "Calendar unit arithmetic on proleptic Gregorian dates."
	command := kingpin.Parse()

	logger := cmd.SetupLogging()
	defer func() {
		// Flush any buffered logs before exiting.
		_ = logger.Sync()
	}()

	unit, ok := chrono.UnitOf(*unitFlag)
	if !ok {
		// Unreachable thanks to the Enum flag, but belt and braces.
		logger.Fatal("unknown unit", zap.String("unit", *unitFlag))
	}
	logger.Debug("calculating", zap.Stringer("unit", unit), zap.String("command", command))

	switch command {
	case addCmd.FullCommand():
		date := mustDate(logger, *addYear, *addMonth, *addDay)
		shifted, err := unit.AddToDate(date, *addAmount)
		if err != nil {
			logger.Fatal("error shifting date",
				zap.Stringer("date", date),
				zap.Int64("amount", *addAmount),
				zap.Stringer("unit", unit),
				zap.Error(err),
			)
		}
		fmt.Println(shifted)

	case betweenCmd.FullCommand():
		d1 := mustDate(logger, *betweenYear, *betweenMonth, *betweenDay)
		d2 := mustDate(logger, *betweenYear2, *betweenMon2, *betweenDay2)
		fmt.Println(unit.Between(d1, d2))
	}
}

// mustDate builds a date from flag values, logging fatally on invalid
// input.
func mustDate(logger *zap.Logger, year, month, day int) chrono.LocalDate {
	d, err := chrono.NewLocalDate(year, month, day)
	if err != nil {
		logger.Fatal("invalid date",
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Int("day", day),
			zap.Error(err),
		)
	}
	return d
}
