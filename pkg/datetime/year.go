package datetime

import (
	"chrono/pkg/datetime/field"
	"chrono/pkg/datetime/parser"
)

// Year is a proleptic Gregorian year in [field.MinYear, field.MaxYear].
type Year struct {
	value int
}

// YearOf validates value. Errors: CodeCalendarRange.
func YearOf(value int) (Year, error) {
	if err := field.CheckYear(value); err != nil {
		return Year{}, err
	}
	return Year{value: value}, nil
}

// YearFrom reads the Year field of a parse result.
func YearFrom(r *parser.Result) (Year, error) {
	v, err := r.Field(field.Year)
	if err != nil {
		return Year{}, err
	}
	return YearOf(v)
}

// ParseYear parses text such as "2007". A nil p means parser.ISOYear().
func ParseYear(text string, p parser.Parser) (Year, error) {
	if p == nil {
		p = parser.ISOYear()
	}
	r, err := p.Parse(text)
	if err != nil {
		return Year{}, err
	}
	return YearFrom(r)
}

// YearNow returns the current year in zone. A nil clock reads the system clock.
func YearNow(zone TimeZone, clock Clock) (Year, error) {
	d, err := LocalDateNow(zone, clock)
	if err != nil {
		return Year{}, err
	}
	return Year{value: d.year}, nil
}

func (y Year) Value() int { return y.value }

func (y Year) IsLeap() bool {
	return field.IsLeapYear(y.value)
}

// Length returns the number of days in the year, 365 or 366.
func (y Year) Length() int {
	return field.LengthOfYear(y.IsLeap())
}

// AtMonth combines this year with a month-of-year.
func (y Year) AtMonth(month int) (YearMonth, error) {
	return YearMonthOf(y.value, month)
}

// AtDay returns the date at the given 1-based day-of-year.
func (y Year) AtDay(dayOfYear int) (LocalDate, error) {
	if err := field.DayOfYear.Check(dayOfYear); err != nil {
		return LocalDate{}, err
	}
	if dayOfYear > y.Length() {
		return LocalDate{}, rangeError(field.DayOfYear, dayOfYear, 1, y.Length())
	}
	leap := y.IsLeap()
	month := 1
	for dayOfYear > field.LengthOfMonth(month, leap) {
		dayOfYear -= field.LengthOfMonth(month, leap)
		month++
	}
	return LocalDate{year: y.value, month: month, day: dayOfYear}, nil
}

func (y Year) String() string {
	return string(appendYear(nil, y.value))
}
