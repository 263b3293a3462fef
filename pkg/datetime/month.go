package datetime

import (
	"time"

	"chrono/pkg/datetime/field"
	"chrono/pkg/datetime/parser"
	dErrors "chrono/pkg/domain-errors"
)

// Month is a month-of-year, 1 (January) to 12 (December).
type Month struct {
	value int
}

// MonthOf validates value. Errors: CodeCalendarRange.
func MonthOf(value int) (Month, error) {
	if err := field.MonthOfYear.Check(value); err != nil {
		return Month{}, err
	}
	return Month{value: value}, nil
}

// MonthFrom reads the MonthOfYear field of a parse result.
func MonthFrom(r *parser.Result) (Month, error) {
	v, err := r.Field(field.MonthOfYear)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(v)
}

func (m Month) Value() int { return m.value }

// Length returns the number of days in the month.
func (m Month) Length(leap bool) int {
	return field.LengthOfMonth(m.value, leap)
}

// MaxLength returns the length of the month in a leap year.
func (m Month) MaxLength() int {
	return field.LengthOfMonth(m.value, true)
}

// Plus moves n months forward or backward, wrapping around the year.
func (m Month) Plus(n int) Month {
	return Month{value: floorMod(m.value-1+n%12, 12) + 1}
}

func (m Month) TimeMonth() time.Month {
	return time.Month(m.value)
}

// String returns the ISO 8601 month form, e.g. "--12".
func (m Month) String() string {
	return string(appendPadded([]byte("--"), m.value))
}

func rangeError(f field.Field, value, min, max int) error {
	return dErrors.Range(f.Name(), value, min, max)
}
