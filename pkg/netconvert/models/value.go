package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPattern matches integers, decimals, and scientific notation.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// groupedPattern matches numbers with comma thousands grouping, e.g. 1,234.5.
var groupedPattern = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseNumber converts a raw field to a number.
// Commas are accepted only as thousands grouping (1,234,567); any other comma,
// such as a decimal comma, makes the field non-numeric. It returns false for
// empty or non-numeric input.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") {
		if !groupedPattern.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	if !numericPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Float returns v as a float64 when it holds a number or a numeric string.
// Missing values (nil) report false.
func Float(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		return ParseNumber(n)
	default:
		return 0, false
	}
}
