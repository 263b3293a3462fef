// Package cast coerces loosely typed input, such as CLI arguments or decoded
// JSON, into the integers the calendar factories take.
package cast

import (
	"math"
	"strconv"
	"strings"

	dErrors "chrono/pkg/domain-errors"
)

// ToInt returns v as an int, or a CodeInvalidInput error.
//
// Accepted: signed and unsigned integers that fit in int, floats with no
// fractional part, and decimal strings with an optional sign. Surrounding
// whitespace in strings is ignored.
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, outOfRange(v)
		}
		return int(x), nil
	case uint:
		return fromUint(uint64(x), v)
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return fromUint(uint64(x), v)
	case uint64:
		return fromUint(x, v)
	case float32:
		return fromFloat(float64(x), v)
	case float64:
		return fromFloat(x, v)
	case string:
		return fromString(x)
	case nil:
		return 0, dErrors.New(dErrors.CodeInvalidInput, "expected an integer, got nil")
	default:
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "expected an integer, got %T", v)
	}
}

func fromUint(x uint64, orig any) (int, error) {
	if x > math.MaxInt {
		return 0, outOfRange(orig)
	}
	return int(x), nil
}

func fromFloat(x float64, orig any) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "expected an integer, got %v", orig)
	}
	if x < math.MinInt || x >= math.MaxInt {
		return 0, outOfRange(orig)
	}
	return int(x), nil
}

func fromString(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "expected an integer string, got "+strconv.Quote(s))
	}
	return n, nil
}

func outOfRange(v any) error {
	return dErrors.Newf(dErrors.CodeInvalidInput, "integer %v overflows int", v)
}
