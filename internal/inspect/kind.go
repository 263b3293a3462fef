package inspect

import (
	"fmt"

	"chrono/pkg/datetime"
	dErrors "chrono/pkg/domain-errors"
)

// Kind names a value type the service can parse.
type Kind string

const (
	KindYear      Kind = "year"
	KindYearMonth Kind = "year-month"
	KindDate      Kind = "date"
	KindPeriod    Kind = "period"
)

type parseFunc func(text string) (fmt.Stringer, error)

var parsers = map[Kind]parseFunc{
	KindYear: func(text string) (fmt.Stringer, error) {
		return datetime.ParseYear(text, nil)
	},
	KindYearMonth: func(text string) (fmt.Stringer, error) {
		return datetime.ParseYearMonth(text, nil)
	},
	KindDate: func(text string) (fmt.Stringer, error) {
		return datetime.ParseLocalDate(text, nil)
	},
	KindPeriod: func(text string) (fmt.Stringer, error) {
		return datetime.ParsePeriod(text)
	},
}

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{KindYear, KindYearMonth, KindDate, KindPeriod}
}

// ParseKind validates a kind name. Errors: CodeInvalidInput.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := parsers[k]; !ok {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown kind %q, want one of %v", name, Kinds())
	}
	return k, nil
}
