package tabular

import (
	"strconv"
	"strings"
)

// Bool converts a sheet cell to a boolean. Recognized spellings are 1/0,
// true/false, yes/no, y/n and t/f, case-insensitive; an empty cell is
// false. Anything else is coerced through its numeric value, and a
// non-numeric non-empty cell counts as true.
func Bool(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "1", "true", "yes", "y", "t":
		return true
	case "0", "false", "no", "n", "f", "":
		return false
	}
	if n, ok := Number(v); ok {
		return n != 0
	}
	return true
}

// Number parses a cell as a float, accepting both decimal-point and
// decimal-comma input. The second return value is false for empty or
// unparsable cells.
func Number(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Float parses a cell as a float, substituting def for empty or
// unparsable cells. The fallback is silent.
func Float(raw string, def float64) float64 {
	f, ok := Number(raw)
	if !ok {
		return def
	}
	return f
}

// Int parses a cell as an integer, truncating decimal input the way the
// sheets encode integer parameters. The second return value is false for
// empty or unparsable cells.
func Int(raw string) (int, bool) {
	f, ok := Number(raw)
	if !ok {
		return 0, false
	}
	return int(f), true
}
