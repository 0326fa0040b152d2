package keypad

import (
	"strings"
	"unicode/utf8"

	"github.com/wippyai/calculator/engine"
	"github.com/wippyai/calculator/errors"
)

// Button labels that are not digits or operators.
const (
	LabelDecimalPoint = "."
	LabelDoubleZero   = "00"
	LabelEquals       = "="
	LabelClear        = "C"
	LabelAllClear     = "AC"
	LabelBackspace    = "⌫"
)

// Class groups buttons that are rendered alike.
type Class uint8

const (
	ClassDigit Class = iota
	ClassOperator
	ClassEquals
	ClassClear
	ClassAllClear
	ClassBackspace
)

func (c Class) String() string {
	switch c {
	case ClassDigit:
		return "digit"
	case ClassOperator:
		return "operator"
	case ClassEquals:
		return "equals"
	case ClassClear:
		return "clear"
	case ClassAllClear:
		return "all_clear"
	case ClassBackspace:
		return "backspace"
	default:
		return "unknown"
	}
}

// Key is a labeled button and the event it produces.
type Key struct {
	Label string
	Event engine.Event
	Class Class
}

// Layout is the button grid, top row first.
var Layout = [][]string{
	{LabelAllClear, LabelBackspace, "%", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", LabelDoubleZero, LabelDecimalPoint, LabelEquals},
}

var keys = buildKeys()

func buildKeys() map[string]Key {
	m := make(map[string]Key, 20)
	for d := 0; d <= 9; d++ {
		label := string(rune('0' + d))
		m[label] = Key{Label: label, Event: engine.Digit(d), Class: ClassDigit}
	}
	for _, op := range engine.Operators() {
		m[string(op)] = Key{Label: string(op), Event: engine.OperatorKey(op), Class: ClassOperator}
	}
	m[LabelDecimalPoint] = Key{Label: LabelDecimalPoint, Event: engine.DecimalPoint(), Class: ClassDigit}
	m[LabelDoubleZero] = Key{Label: LabelDoubleZero, Event: engine.DoubleZero(), Class: ClassDigit}
	m[LabelEquals] = Key{Label: LabelEquals, Event: engine.Equals(), Class: ClassEquals}
	m[LabelClear] = Key{Label: LabelClear, Event: engine.Clear(), Class: ClassClear}
	m[LabelAllClear] = Key{Label: LabelAllClear, Event: engine.AllClear(), Class: ClassAllClear}
	m[LabelBackspace] = Key{Label: LabelBackspace, Event: engine.Backspace(), Class: ClassBackspace}
	return m
}

// aliases map alternative spellings to canonical labels. Lookups are
// case-insensitive.
var aliases = map[string]string{
	"x":         "*",
	"×":         "*",
	"÷":         "/",
	"<":         LabelBackspace,
	"bs":        LabelBackspace,
	"backspace": LabelBackspace,
	"c":         LabelClear,
	"ac":        LabelAllClear,
}

// Lookup returns the key for a canonical label or alias.
func Lookup(label string) (Key, bool) {
	if k, ok := keys[label]; ok {
		return k, true
	}
	if canon, ok := aliases[strings.ToLower(label)]; ok {
		return keys[canon], true
	}
	return Key{}, false
}

// Parse returns the event produced by pressing label.
func Parse(label string) (engine.Event, error) {
	k, ok := Lookup(label)
	if !ok {
		return engine.Event{}, errors.UnknownKey(label)
	}
	return k.Event, nil
}

// ClassOf reports how label is rendered. Unknown labels are digits.
func ClassOf(label string) Class {
	k, _ := Lookup(label)
	return k.Class
}

// Labels returns every canonical label, in grid order followed by "C".
func Labels() []string {
	var out []string
	for _, row := range Layout {
		out = append(out, row...)
	}
	return append(out, LabelClear)
}

// Tokenize splits text into canonical labels. Whitespace-separated fields
// that are labels or aliases are taken whole, so "00" stays a double zero;
// any other field is read one key at a time, so "12+3=" is 1 2 + 3 =.
func Tokenize(text string) ([]string, error) {
	var out []string
	for _, field := range strings.Fields(text) {
		if k, ok := Lookup(field); ok {
			out = append(out, k.Label)
			continue
		}
		labels, err := scan(field)
		if err != nil {
			return nil, err
		}
		out = append(out, labels...)
	}
	return out, nil
}

// multi are the multi-character spellings recognized inside a compact field,
// longest first.
var multi = []string{"backspace", "ac", "bs"}

func scan(field string) ([]string, error) {
	var out []string
	for len(field) > 0 {
		lower := strings.ToLower(field)
		matched := false
		for _, m := range multi {
			if strings.HasPrefix(lower, m) {
				out = append(out, keys[aliases[m]].Label)
				field = field[len(m):]
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		r, size := utf8.DecodeRuneInString(field)
		k, ok := Lookup(string(r))
		if !ok {
			return nil, errors.UnknownKey(string(r))
		}
		out = append(out, k.Label)
		field = field[size:]
	}
	return out, nil
}
