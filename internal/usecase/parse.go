package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// parseNumber accepts JSON numbers and numeric strings. Anything else is reported as not ok.
func parseNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// nullableNumber turns unparseable input into nil instead of an error.
func nullableNumber(v interface{}) *float64 {
	f, ok := parseNumber(v)
	if !ok {
		return nil
	}
	return &f
}

// clampOpenings normalises openings to an integer of at least 1.
func clampOpenings(v interface{}) int {
	f, ok := parseNumber(v)
	if !ok || f < 1 {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// parseID accepts a positive integer id given as a number or a string.
func parseID(v interface{}) (int64, bool) {
	f, ok := parseNumber(v)
	if !ok || f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// parseStringList accepts a JSON array or a comma separated string.
func parseStringList(v interface{}) []string {
	out := []string{}
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch list := v.(type) {
	case []string:
		for _, s := range list {
			add(s)
		}
	case []interface{}:
		for _, item := range list {
			if s, ok := item.(string); ok {
				add(s)
			}
		}
	case string:
		for _, s := range strings.Split(list, ",") {
			add(s)
		}
	}
	return out
}
