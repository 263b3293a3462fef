package datetime

import (
	"math"
	"regexp"
	"strconv"

	dErrors "chrono/pkg/domain-errors"
)

var periodPattern = regexp.MustCompile(
	`(?i)^([+-])?P(?:([+-]?\d+)Y)?(?:([+-]?\d+)M)?(?:([+-]?\d+)W)?(?:([+-]?\d+)D)?$`)

// ParsePeriod parses the ISO 8601 date-based period form: "P1Y2M3D",
// "P-1M", "P2W", "-P1Y2M". Letters are case-insensitive, each component may
// carry its own sign, weeks become 7 days and a leading '-' negates every
// component.
//
// Errors: CodeParseGrammar for malformed text, no components or values that
// do not fit in an int.
func ParsePeriod(text string) (Period, error) {
	m := periodPattern.FindStringSubmatch(text)
	if m == nil {
		return Period{}, dErrors.Newf(dErrors.CodeParseGrammar, "cannot parse %q as a period", text)
	}
	if m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "" {
		return Period{}, dErrors.Newf(dErrors.CodeParseGrammar, "period %q has no components", text)
	}

	var values [4]int
	for i, s := range m[2:] {
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Period{}, dErrors.Wrap(err, dErrors.CodeParseGrammar, "period component out of range")
		}
		values[i] = n
	}

	weeks, days := values[2], values[3]
	if weeks > math.MaxInt/7 || weeks < math.MinInt/7 {
		return Period{}, dErrors.Newf(dErrors.CodeParseGrammar, "period %q: weeks out of range", text)
	}
	days, ok := addInt(days, weeks*7)
	if !ok {
		return Period{}, dErrors.Newf(dErrors.CodeParseGrammar, "period %q: days out of range", text)
	}

	p := Period{years: values[0], months: values[1], days: days}
	if m[1] == "-" {
		if p.years == math.MinInt || p.months == math.MinInt || p.days == math.MinInt {
			return Period{}, dErrors.Newf(dErrors.CodeParseGrammar, "period %q cannot be negated", text)
		}
		p = p.Negated()
	}
	return p, nil
}

func addInt(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
