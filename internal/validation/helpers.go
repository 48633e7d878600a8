package validation

import (
	"math"
	"strconv"
	"strings"
)

// hasText reports whether v stringifies to a non-empty trimmed string.
// Mirrors the required-string check: empty-string, null and absent are all
// "missing".
func hasText(v interface{}) bool {
	switch s := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(s) != ""
	case float64:
		return !math.IsNaN(s)
	case bool:
		return true
	default:
		return false
	}
}

// asString returns the trimmed string form of a scalar, or "" when missing.
func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// asNumber parses a numeric field that may arrive as float64 or string.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isTrue reports whether v is the boolean literal true. Any other value,
// including truthy strings, fails; the disclaimer gate depends on this.
func isTrue(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// allDigits reports whether s is exactly n ASCII digits.
func allDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// asList returns the value as a JSON array, nil when absent or not a list.
func asList(v interface{}) []interface{} {
	list, _ := v.([]interface{})
	return list
}

// oneOf reports whether s equals one of the allowed values.
func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
