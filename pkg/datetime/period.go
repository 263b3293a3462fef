package datetime

import (
	"strconv"

	"github.com/rickb777/period"

	dErrors "chrono/pkg/domain-errors"
)

// Period is a calendar offset of years, months and days, e.g. "P1Y2M3D".
//
// Each component is signed independently and is never normalized against
// the others: PeriodOf(12, 0, 0) and PeriodOf(0, 12, 0) are different values
// even though both move a date by one year. Any int triple is a valid
// Period; the zero value equals ZeroPeriod().
type Period struct {
	years  int
	months int
	days   int
}

// ZeroPeriod returns P0D.
func ZeroPeriod() Period {
	return Period{}
}

// PeriodOf builds a period verbatim from its three components.
func PeriodOf(years, months, days int) Period {
	return Period{years: years, months: months, days: days}
}

// PeriodFromDateInterval converts from a rickb777 period. Weeks are folded
// into days; only whole units are read.
//
// Errors: CodeInvalidInput when the period has hour, minute or second
// components, which have no calendar meaning here.
func PeriodFromDateInterval(p period.Period) (Period, error) {
	if p.Hours() != 0 || p.Minutes() != 0 || p.Seconds() != 0 {
		return Period{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"period %s has time components", p.String())
	}
	return Period{years: p.Years(), months: p.Months(), days: p.DaysIncWeeks()}, nil
}

func (p Period) Years() int { return p.years }

func (p Period) Months() int { return p.months }

func (p Period) Days() int { return p.days }

func (p Period) PlusYears(n int) Period {
	p.years += n
	return p
}

func (p Period) PlusMonths(n int) Period {
	p.months += n
	return p
}

func (p Period) PlusDays(n int) Period {
	p.days += n
	return p
}

func (p Period) WithYears(years int) Period {
	p.years = years
	return p
}

func (p Period) WithMonths(months int) Period {
	p.months = months
	return p
}

func (p Period) WithDays(days int) Period {
	p.days = days
	return p
}

// Plus adds other component by component.
func (p Period) Plus(other Period) Period {
	return Period{years: p.years + other.years, months: p.months + other.months, days: p.days + other.days}
}

// Negated flips the sign of every component.
func (p Period) Negated() Period {
	return Period{years: -p.years, months: -p.months, days: -p.days}
}

// Normalized carries whole years out of the months component so that
// |months| < 12 and years and months share a sign. Days are untouched.
//
// Errors: CodeCalendarRange when the carried years do not fit in an int.
func (p Period) Normalized() (Period, error) {
	years, ok := addInt(p.years, p.months/12)
	if !ok {
		return Period{}, dErrors.Newf(dErrors.CodeCalendarRange,
			"period %s: years overflow when carrying months", p)
	}
	months := p.months % 12
	switch {
	case years > 0 && months < 0:
		years, months = years-1, months+12
	case years < 0 && months > 0:
		years, months = years+1, months-12
	}
	return Period{years: years, months: months, days: p.days}, nil
}

func (p Period) IsZero() bool {
	return p.years == 0 && p.months == 0 && p.days == 0
}

// IsEqualTo compares component by component. Periods that shift a date by
// the same amount through different units are not equal.
func (p Period) IsEqualTo(other Period) bool {
	return p == other
}

// ToDateInterval converts to a rickb777 period, preserving the sign of each
// component independently: PeriodOf(1, -2, 3) becomes years=1, months=-2,
// days=3.
func (p Period) ToDateInterval() period.Period {
	return period.NewYMD(p.years, p.months, p.days)
}

// String returns the ISO 8601 form. Zero components are omitted, each
// present component carries its own sign ("P-1M-2D", "P1Y-2M"), and the
// all-zero period is "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	b := make([]byte, 0, 16)
	b = append(b, 'P')
	b = appendComponent(b, p.years, 'Y')
	b = appendComponent(b, p.months, 'M')
	b = appendComponent(b, p.days, 'D')
	return string(b)
}

func appendComponent(b []byte, n int, designator byte) []byte {
	if n == 0 {
		return b
	}
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, designator)
}
