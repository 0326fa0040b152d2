package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/wippyai/calculator/errors"
)

// ParseNumber parses the longest numeric prefix of s, the way a pocket
// calculator reads a display. It accepts an optional sign, digits with at
// most one decimal point and an optional exponent: "1.2.3" parses as 1.2,
// "7." as 7 and "1e+21" as 1e21. ok is false when no digits lead the text.
func ParseNumber(s string) (f float64, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	n := numericPrefix(s)
	if n == 0 {
		if strings.HasPrefix(strings.TrimLeft(s, "+-"), "Infinity") {
			if strings.HasPrefix(s, "-") {
				return math.Inf(-1), true
			}
			return math.Inf(1), true
		}
		return 0, false
	}
	// Range errors still yield ±Inf, which evaluation rejects as non-finite.
	f, _ = strconv.ParseFloat(s[:n], 64)
	return f, true
}

// numericPrefix returns the length of the longest prefix of s matching
// [+-]?(digits[.digits*]|.digits)([eE][+-]?digits)?, or 0.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		frac := j - i - 1
		if digits > 0 || frac > 0 {
			digits += frac
			i = j
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatNumber renders f as the shortest decimal that reads back as f.
// Magnitudes from 1e-6 up to 1e21 use plain notation and everything else
// uses an exponent without zero padding ("1e+21", "1.5e-7"). Negative zero
// renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// Evaluate applies op to a and b. It fails for an unknown operator and for
// any result that is NaN or infinite, which covers division and remainder
// by zero. The remainder takes the sign of the dividend.
func Evaluate(op Operator, a, b float64) (float64, error) {
	var r float64
	switch op {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv:
		r = a / b
	case OpMod:
		r = math.Mod(a, b)
	default:
		return 0, errors.InvalidOperator(string(op))
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, errors.NonFinite(string(op), a, b)
	}
	return r, nil
}
