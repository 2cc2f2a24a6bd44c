package table

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds v to the given number of decimal places.
//
// Rounding is done on the exact binary value, so 2.675 rounds to 2.67 at two
// places. NaN and infinities are returned unchanged.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}

	return r
}

// FormatNumber renders v in its shortest round-trip decimal form.
//
// Integral values keep a trailing ".0" and magnitudes outside [1e-4, 1e16) use
// exponent notation, so 400 renders as "400.0" and 0.00001 as "1e-05".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}

		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// ParseNumber parses a table cell as a locale-independent decimal number.
// Surrounding whitespace is ignored.
func ParseNumber(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}
