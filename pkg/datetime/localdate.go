package datetime

import (
	"time"

	"github.com/rickb777/date/v2"

	"chrono/pkg/datetime/field"
	"chrono/pkg/datetime/parser"
)

// LocalDate is a calendar date without a time zone, e.g. 2007-12-03.
//
// Invariants:
//   - year is within [field.MinYear, field.MaxYear]
//   - month is within [1, 12]
//   - day is within [1, length of the month in that year]
type LocalDate struct {
	year  int
	month int
	day   int
}

// LocalDateOf validates and combines year, month and day.
//
// Errors: CodeCalendarRange for any out-of-range component, including a day
// past the end of the month (2023-02-29).
func LocalDateOf(year, month, day int) (LocalDate, error) {
	if err := field.CheckDate(year, month, day); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// LocalDateFrom builds a LocalDate from the Year, MonthOfYear and DayOfMonth
// fields of a parse result.
func LocalDateFrom(r *parser.Result) (LocalDate, error) {
	year, err := r.Field(field.Year)
	if err != nil {
		return LocalDate{}, err
	}
	month, err := r.Field(field.MonthOfYear)
	if err != nil {
		return LocalDate{}, err
	}
	day, err := r.Field(field.DayOfMonth)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateOf(year, month, day)
}

// ParseLocalDate parses text such as "2007-12-03". A nil p means
// parser.ISODate().
func ParseLocalDate(text string, p parser.Parser) (LocalDate, error) {
	if p == nil {
		p = parser.ISODate()
	}
	r, err := p.Parse(text)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateFrom(r)
}

// LocalDateNow returns today's date in zone. A nil clock reads the system
// clock.
func LocalDateNow(zone TimeZone, clock Clock) (LocalDate, error) {
	now := resolveClock(clock).Now().In(zone.Location())
	return LocalDateFromDate(date.NewAt(now))
}

// LocalDateFromDate converts from a rickb777 date.
func LocalDateFromDate(d date.Date) (LocalDate, error) {
	return LocalDateOf(d.Year(), int(d.Month()), d.Day())
}

// ToDate converts to a rickb777 date.
func (d LocalDate) ToDate() date.Date {
	return date.New(d.year, time.Month(d.month), d.day)
}

func (d LocalDate) Year() int { return d.year }

func (d LocalDate) Month() int { return d.month }

func (d LocalDate) Day() int { return d.day }

func (d LocalDate) YearMonth() YearMonth {
	return YearMonth{year: d.year, month: d.month}
}

func (d LocalDate) IsLeapYear() bool {
	return field.IsLeapYear(d.year)
}

func (d LocalDate) LengthOfMonth() int {
	return field.LengthOfMonth(d.month, d.IsLeapYear())
}

func (d LocalDate) LengthOfYear() int {
	return field.LengthOfYear(d.IsLeapYear())
}

// DayOfYear returns the 1-based ordinal day within the year.
func (d LocalDate) DayOfYear() int {
	return field.OrdinalDay(d.year, d.month, d.day)
}

func (d LocalDate) DayOfWeek() time.Weekday {
	return d.ToDate().Weekday()
}

// WithYear replaces the year; the day must still exist (2024-02-29 has no
// 2023 counterpart).
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	if year == d.year {
		return d, nil
	}
	return LocalDateOf(year, d.month, d.day)
}

func (d LocalDate) WithMonth(month int) (LocalDate, error) {
	if month == d.month {
		return d, nil
	}
	return LocalDateOf(d.year, month, d.day)
}

func (d LocalDate) WithDay(day int) (LocalDate, error) {
	if day == d.day {
		return d, nil
	}
	return LocalDateOf(d.year, d.month, day)
}

// PlusMonths moves n months. When the day does not exist in the target
// month it becomes the last day of that month (01-31 plus one month is
// 02-28 or 02-29).
func (d LocalDate) PlusMonths(n int) (LocalDate, error) {
	ym, err := d.YearMonth().PlusMonths(n)
	if err != nil {
		return LocalDate{}, err
	}
	return d.atYearMonth(ym), nil
}

// PlusYears moves n years, with the same end-of-month rule as PlusMonths.
func (d LocalDate) PlusYears(n int) (LocalDate, error) {
	ym, err := d.YearMonth().PlusYears(n)
	if err != nil {
		return LocalDate{}, err
	}
	return d.atYearMonth(ym), nil
}

// PlusDays moves n days across month and year boundaries.
func (d LocalDate) PlusDays(n int) (LocalDate, error) {
	if n == 0 {
		return d, nil
	}
	if n > daySpan || n < -daySpan {
		return LocalDate{}, rangeError(field.DayOfMonth, n, -daySpan, daySpan)
	}
	return LocalDateFromDate(d.ToDate().AddDate(0, 0, n))
}

// Plus applies p: years and months together as a month offset, then days.
func (d LocalDate) Plus(p Period) (LocalDate, error) {
	if p.years > yearSpan || p.years < -yearSpan {
		return LocalDate{}, rangeError(field.Year, p.years, -yearSpan, yearSpan)
	}
	if p.months > monthSpan || p.months < -monthSpan {
		return LocalDate{}, rangeError(field.MonthOfYear, p.months, -monthSpan, monthSpan)
	}
	shifted, err := d.PlusMonths(p.years*12 + p.months)
	if err != nil {
		return LocalDate{}, err
	}
	return shifted.PlusDays(p.days)
}

func (d LocalDate) atYearMonth(ym YearMonth) LocalDate {
	return LocalDate{year: ym.year, month: ym.month, day: min(d.day, ym.LengthOfMonth())}
}

// CompareTo returns -1, 0 or 1 in chronological order.
func (d LocalDate) CompareTo(other LocalDate) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(d.month - other.month)
	default:
		return sign(d.day - other.day)
	}
}

func (d LocalDate) IsBefore(other LocalDate) bool { return d.CompareTo(other) < 0 }

func (d LocalDate) IsAfter(other LocalDate) bool { return d.CompareTo(other) > 0 }

func (d LocalDate) IsEqualTo(other LocalDate) bool { return d == other }

// String returns the ISO 8601 form, e.g. "2007-12-03".
func (d LocalDate) String() string {
	b := make([]byte, 0, 13)
	b = appendYear(b, d.year)
	b = append(b, '-')
	b = appendPadded(b, d.month)
	b = append(b, '-')
	return string(appendPadded(b, d.day))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
