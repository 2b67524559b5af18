package schema

import (
	"strconv"
	"strings"
)

// isEmpty applies the strict-empty check: nil, whitespace-only strings,
// empty lists, and empty nested objects all count as missing.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		if len(t) == 0 {
			return true
		}
		for _, item := range t {
			if !isEmpty(item) {
				return false
			}
		}
		return true
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// asMap returns v as a nested entity map, or nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asList normalizes a collection property that may hold either a single
// object or a list of objects.
func asList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

// asString returns a scalar property as a trimmed string.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// asNumber parses a numeric property, accepting JSON numbers and numeric
// strings. The second result reports whether a number was present.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isDecimalFormat reports whether a raw coordinate value is expressed in
// decimal notation rather than degrees/minutes/seconds.
func isDecimalFormat(v any) bool {
	s := asString(v)
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, "°'\"NSEWnsew ")
}

// nestedType reads the @type of a nested entity map.
func nestedType(m map[string]any) string {
	if m == nil {
		return ""
	}
	switch t := m["@type"].(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
