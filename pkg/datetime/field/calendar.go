// Package field holds the Gregorian calendar arithmetic and the enumeration
// of calendar fields shared by the parsers and the value types.
//
// Leap-year logic exists only here; every higher-level check routes through
// these functions.
package field

import (
	"fmt"

	dErrors "chrono/pkg/domain-errors"
)

// Supported year range, inclusive.
const (
	MinYear = -999999
	MaxYear = 999999
)

// IsLeapYear reports whether year has 366 days in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LengthOfMonth returns the number of days in month, 0 for an invalid month.
func LengthOfMonth(month int, leap bool) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if leap {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// LengthOfYear returns 366 for leap years, 365 otherwise.
func LengthOfYear(leap bool) int {
	if leap {
		return 366
	}
	return 365
}

// CheckYear fails with CodeCalendarRange outside [MinYear, MaxYear].
func CheckYear(year int) error {
	if year < MinYear || year > MaxYear {
		return dErrors.Range(Year.Name(), year, MinYear, MaxYear)
	}
	return nil
}

// CheckDate validates a full calendar date, including the day against the
// length of the month in that year.
func CheckDate(year, month, day int) error {
	if err := CheckYear(year); err != nil {
		return err
	}
	if err := MonthOfYear.Check(month); err != nil {
		return err
	}
	if err := DayOfMonth.Check(day); err != nil {
		return err
	}
	if length := LengthOfMonth(month, IsLeapYear(year)); day > length {
		e := dErrors.Range(DayOfMonth.Name(), day, 1, length)
		e.Message = fmt.Sprintf("invalid date %d-%02d-%02d: month has %d days", year, month, day, length)
		return e
	}
	return nil
}

// OrdinalDay returns the 1-based ordinal of a valid date within its year.
func OrdinalDay(year, month, day int) int {
	leap := IsLeapYear(year)
	n := day
	for m := 1; m < month; m++ {
		n += LengthOfMonth(m, leap)
	}
	return n
}
