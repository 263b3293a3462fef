package datetime

import (
	"chrono/pkg/datetime/field"
	"chrono/pkg/datetime/parser"
)

// Offsets beyond these spans always leave the supported years; rejecting
// them up front keeps the arithmetic from overflowing.
const (
	yearSpan  = field.MaxYear - field.MinYear + 1
	monthSpan = yearSpan * 12
	daySpan   = yearSpan * 366
)

// YearMonth is the combination of a year and a month-of-year, e.g. 2007-12.
//
// Invariants:
//   - year is within [field.MinYear, field.MaxYear]
//   - month is within [1, 12]
//
// Construct via YearMonthOf, YearMonthFrom or ParseYearMonth; the zero value
// is not a valid year-month.
type YearMonth struct {
	year  int
	month int
}

// YearMonthOf validates and combines year and month.
//
// Errors: CodeCalendarRange when either is out of range.
func YearMonthOf(year, month int) (YearMonth, error) {
	if err := field.CheckYear(year); err != nil {
		return YearMonth{}, err
	}
	if err := field.MonthOfYear.Check(month); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: year, month: month}, nil
}

// YearMonthFrom builds a YearMonth from the Year and MonthOfYear fields.
//
// Errors: CodeMissingField when a field was not captured; CodeCalendarRange
// when a captured value is out of range.
func YearMonthFrom(r *parser.Result) (YearMonth, error) {
	year, err := r.Field(field.Year)
	if err != nil {
		return YearMonth{}, err
	}
	month, err := r.Field(field.MonthOfYear)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonthOf(year, month)
}

// ParseYearMonth parses text such as "2007-12". A nil p means
// parser.ISOYearMonth().
//
// Errors: CodeParseGrammar for malformed text, otherwise as YearMonthFrom.
func ParseYearMonth(text string, p parser.Parser) (YearMonth, error) {
	if p == nil {
		p = parser.ISOYearMonth()
	}
	r, err := p.Parse(text)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonthFrom(r)
}

// YearMonthNow returns the current year-month in zone. A nil clock reads
// the system clock.
func YearMonthNow(zone TimeZone, clock Clock) (YearMonth, error) {
	d, err := LocalDateNow(zone, clock)
	if err != nil {
		return YearMonth{}, err
	}
	return d.YearMonth(), nil
}

func (ym YearMonth) Year() int { return ym.year }

func (ym YearMonth) Month() int { return ym.month }

// IsLeapYear reports whether the year is a leap year.
func (ym YearMonth) IsLeapYear() bool {
	return Year{value: ym.year}.IsLeap()
}

// LengthOfMonth returns the length of the month in days, taking the year
// into account.
func (ym YearMonth) LengthOfMonth() int {
	return Month{value: ym.month}.Length(ym.IsLeapYear())
}

// LengthOfYear returns the length of the year in days, 365 or 366.
func (ym YearMonth) LengthOfYear() int {
	return field.LengthOfYear(ym.IsLeapYear())
}

// WithYear returns a copy with the year replaced, or ym itself if unchanged.
func (ym YearMonth) WithYear(year int) (YearMonth, error) {
	if year == ym.year {
		return ym, nil
	}
	return YearMonthOf(year, ym.month)
}

// WithMonth returns a copy with the month replaced, or ym itself if unchanged.
func (ym YearMonth) WithMonth(month int) (YearMonth, error) {
	if month == ym.month {
		return ym, nil
	}
	return YearMonthOf(ym.year, month)
}

// AtDay combines this year-month with a day-of-month. Day validation is
// LocalDateOf's.
func (ym YearMonth) AtDay(day int) (LocalDate, error) {
	return LocalDateOf(ym.year, ym.month, day)
}

// AtEndOfMonth returns the last valid date of the month.
//
// Errors: CodeCalendarRange when ym was not built by a factory (the zero
// value has no month).
func (ym YearMonth) AtEndOfMonth() (LocalDate, error) {
	return LocalDateOf(ym.year, ym.month, ym.LengthOfMonth())
}

// PlusMonths moves n months, carrying into the year.
//
// Errors: CodeCalendarRange when the result leaves the supported years.
func (ym YearMonth) PlusMonths(n int) (YearMonth, error) {
	if n == 0 {
		return ym, nil
	}
	if n > monthSpan || n < -monthSpan {
		return YearMonth{}, rangeError(field.MonthOfYear, n, -monthSpan, monthSpan)
	}
	index := ym.year*12 + ym.month - 1 + n
	return YearMonthOf(floorDiv(index, 12), floorMod(index, 12)+1)
}

// PlusYears moves n years, keeping the month.
func (ym YearMonth) PlusYears(n int) (YearMonth, error) {
	if n == 0 {
		return ym, nil
	}
	if n > yearSpan || n < -yearSpan {
		return YearMonth{}, rangeError(field.Year, n, -yearSpan, yearSpan)
	}
	return YearMonthOf(ym.year+n, ym.month)
}

// ToInteger returns 12*year + month. Two year-months compare exactly as
// their integers do, which is chronological order.
func (ym YearMonth) ToInteger() int {
	return 12*ym.year + ym.month
}

// CompareTo returns -1, 0 or 1.
func (ym YearMonth) CompareTo(other YearMonth) int {
	a, b := ym.ToInteger(), other.ToInteger()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (ym YearMonth) IsBefore(other YearMonth) bool { return ym.CompareTo(other) < 0 }

func (ym YearMonth) IsAfter(other YearMonth) bool { return ym.CompareTo(other) > 0 }

func (ym YearMonth) IsEqualTo(other YearMonth) bool { return ym == other }

// String returns the ISO 8601 form, e.g. "2007-12". See appendYear for the
// year rule.
func (ym YearMonth) String() string {
	b := make([]byte, 0, 10)
	b = appendYear(b, ym.year)
	b = append(b, '-')
	return string(appendPadded(b, ym.month))
}
