package field

import dErrors "chrono/pkg/domain-errors"

// Field is a named, range-bounded component of a calendar value.
//
// The set is closed: only the constants below are valid fields.
type Field int

const (
	Year Field = iota + 1
	MonthOfYear
	DayOfMonth
	DayOfYear
)

type bounds struct {
	name     string
	min, max int
}

// fieldBounds is the single source of truth for field names and ranges.
var fieldBounds = map[Field]bounds{
	Year:        {"Year", MinYear, MaxYear},
	MonthOfYear: {"MonthOfYear", 1, 12},
	DayOfMonth:  {"DayOfMonth", 1, 31},
	DayOfYear:   {"DayOfYear", 1, 366},
}

// All returns every field in declaration order.
func All() []Field {
	return []Field{Year, MonthOfYear, DayOfMonth, DayOfYear}
}

// IsValid reports whether f is one of the declared fields.
func (f Field) IsValid() bool {
	_, ok := fieldBounds[f]
	return ok
}

func (f Field) Name() string {
	if b, ok := fieldBounds[f]; ok {
		return b.name
	}
	return "Unknown"
}

func (f Field) Min() int { return fieldBounds[f].min }

func (f Field) Max() int { return fieldBounds[f].max }

// Check fails with CodeCalendarRange when value is outside the field's range.
// DayOfMonth is checked against 31 only; month length is CheckDate's job.
func (f Field) Check(value int) error {
	b, ok := fieldBounds[f]
	if !ok {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown field %d", int(f))
	}
	if value < b.min || value > b.max {
		return dErrors.Range(b.name, value, b.min, b.max)
	}
	return nil
}

func (f Field) String() string {
	return f.Name()
}
