package strix

import (
	"fmt"
	"math"
	"strconv"
	"unicode"
)

// stringify returns the display text of a runtime value.
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return formatNumber(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(num float64) string {
	switch {
	case math.IsInf(num, 1):
		return "inf"
	case math.IsInf(num, -1):
		return "-inf"
	case math.IsNaN(num):
		return "NaN"
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

// isTruthy reports whether a value counts as true. Only nil and false are
// falsy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// isEqual compares two runtime values. nil is only equal to nil and values of
// different types are never equal.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r)
}
