package datetime

import "strconv"

// appendYear renders a year for the ISO forms: '-' for negative years, no
// '+' for positive ones, magnitude zero-padded to at least two digits and
// never truncated.
func appendYear(b []byte, year int) []byte {
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	return appendPadded(b, year)
}

// appendPadded appends a non-negative n with at least two digits.
func appendPadded(b []byte, n int) []byte {
	if n < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(n), 10)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
