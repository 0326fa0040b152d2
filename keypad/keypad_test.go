package keypad

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wippyai/calculator/engine"
	calcerrors "github.com/wippyai/calculator/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		label string
		want  engine.Event
	}{
		{"0", engine.Digit(0)},
		{"7", engine.Digit(7)},
		{"00", engine.DoubleZero()},
		{".", engine.DecimalPoint()},
		{"+", engine.OperatorKey(engine.OpAdd)},
		{"-", engine.OperatorKey(engine.OpSub)},
		{"*", engine.OperatorKey(engine.OpMul)},
		{"/", engine.OperatorKey(engine.OpDiv)},
		{"%", engine.OperatorKey(engine.OpMod)},
		{"=", engine.Equals()},
		{"C", engine.Clear()},
		{"AC", engine.AllClear()},
		{"⌫", engine.Backspace()},
		{"x", engine.OperatorKey(engine.OpMul)},
		{"÷", engine.OperatorKey(engine.OpDiv)},
		{"ac", engine.AllClear()},
		{"BS", engine.Backspace()},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Parse(tt.label)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, label := range []string{"", "sqrt", "10", "^", "=="} {
		_, err := Parse(label)
		if !errors.Is(err, &calcerrors.Error{Phase: calcerrors.PhaseKeypad, Kind: calcerrors.KindUnknownKey}) {
			t.Errorf("Parse(%q) err = %v, want unknown_key", label, err)
		}
	}
}

func TestLayout(t *testing.T) {
	if len(Layout) != 5 {
		t.Fatalf("Layout has %d rows, want 5", len(Layout))
	}
	seen := make(map[string]bool)
	for i, row := range Layout {
		if len(row) != 4 {
			t.Errorf("row %d has %d buttons, want 4", i, len(row))
		}
		for _, label := range row {
			if _, err := Parse(label); err != nil {
				t.Errorf("grid label %q does not parse: %v", label, err)
			}
			if seen[label] {
				t.Errorf("label %q appears twice", label)
			}
			seen[label] = true
		}
	}
	if seen[LabelClear] {
		t.Error("C should not be on the grid")
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	if len(labels) != 21 {
		t.Fatalf("Labels() has %d entries, want 21", len(labels))
	}
	if labels[0] != LabelAllClear || labels[len(labels)-1] != LabelClear {
		t.Errorf("Labels() = %q", labels)
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		label string
		want  Class
	}{
		{"5", ClassDigit},
		{"00", ClassDigit},
		{".", ClassDigit},
		{"%", ClassOperator},
		{"/", ClassOperator},
		{"=", ClassEquals},
		{"C", ClassClear},
		{"AC", ClassAllClear},
		{"⌫", ClassBackspace},
	}
	for _, tt := range tests {
		if got := ClassOf(tt.label); got != tt.want {
			t.Errorf("ClassOf(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"spaced", "2 + 3 =", []string{"2", "+", "3", "="}},
		{"compact", "12+3=", []string{"1", "2", "+", "3", "="}},
		{"double zero field", "1 00 .", []string{"1", "00", "."}},
		{"compact zeros are digits", "100", []string{"1", "0", "0"}},
		{"aliases", "7 x 8 ÷ 2", []string{"7", "*", "8", "/", "2"}},
		{"compact alias", "7x8", []string{"7", "*", "8"}},
		{"clear words", "AC 5 c", []string{"AC", "5", "C"}},
		{"compact clear", "12cAC", []string{"1", "2", "C", "AC"}},
		{"backspace spellings", "12 ⌫ bs < 3<", []string{"1", "2", "⌫", "⌫", "⌫", "3", "⌫"}},
		{"compact backspace word", "9backspace", []string{"9", "⌫"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.in)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize_Unknown(t *testing.T) {
	got, err := Tokenize("2 + sqrt")
	if got != nil {
		t.Errorf("Tokenize returned %q on error", got)
	}
	var ce *calcerrors.Error
	if !errors.As(err, &ce) || ce.Kind != calcerrors.KindUnknownKey || ce.Value != "s" {
		t.Errorf("err = %v, want unknown_key for s", err)
	}
}
