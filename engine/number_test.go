package engine

import (
	"math"
	"testing"

	"github.com/wippyai/calculator/errors"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"0005", 5, true},
		{"-7", -7, true},
		{"+3", 3, true},
		{"3.25", 3.25, true},
		{"7.", 7, true},
		{".5", 0.5, true},
		{"0.", 0, true},
		{"1.2.3", 1.2, true},
		{"1..2", 1, true},
		{"1e+21", 1e21, true},
		{"1.5e-7", 1.5e-7, true},
		{"1e", 1, true},
		{"1e+", 1, true},
		{"1e+215", 1e215, true},
		{"12abc", 12, true},
		{"  8", 8, true},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"-.", 0, false},
		{"e5", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumber_Infinite(t *testing.T) {
	if f, ok := ParseNumber("Infinity"); !ok || !math.IsInf(f, 1) {
		t.Errorf("Infinity = %v, %v", f, ok)
	}
	if f, ok := ParseNumber("-Infinity"); !ok || !math.IsInf(f, -1) {
		t.Errorf("-Infinity = %v, %v", f, ok)
	}
	if f, ok := ParseNumber("1e400"); !ok || !math.IsInf(f, 1) {
		t.Errorf("1e400 = %v, %v", f, ok)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-7, "-7"},
		{3.5, "3.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1.0 / 3, "0.3333333333333333"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e22, "1.5e+22"},
		{-2e30, "-2e+30"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e-10, "1e-10"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber_RoundTrip(t *testing.T) {
	for _, f := range []float64{1, -1, 0.5, 123456.789, 1e21, 2.5e-9, 9007199254740993} {
		got, ok := ParseNumber(FormatNumber(f))
		if !ok || got != f {
			t.Errorf("round trip %v = %v, %v", f, got, ok)
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		op   Operator
		a, b float64
		want float64
	}{
		{OpAdd, 2, 3, 5},
		{OpSub, 2, 3, -1},
		{OpMul, 4, 2.5, 10},
		{OpDiv, 1, 4, 0.25},
		{OpMod, 7, 3, 1},
		{OpMod, -7, 3, -1},
		{OpMod, 7, -3, 1},
		{OpMod, 5.5, 2, 1.5},
		{OpDiv, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := Evaluate(tt.op, tt.a, tt.b)
			if err != nil {
				t.Fatalf("Evaluate(%s, %v, %v): %v", tt.op, tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%s, %v, %v) = %v, want %v", tt.op, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		a, b float64
		kind errors.Kind
	}{
		{"divide by zero", OpDiv, 5, 0, errors.KindNonFinite},
		{"negative divide by zero", OpDiv, -5, 0, errors.KindNonFinite},
		{"zero over zero", OpDiv, 0, 0, errors.KindNonFinite},
		{"remainder by zero", OpMod, 5, 0, errors.KindNonFinite},
		{"overflow", OpMul, math.MaxFloat64, 2, errors.KindNonFinite},
		{"infinite operand", OpAdd, math.Inf(1), 1, errors.KindNonFinite},
		{"unknown operator", Operator("^"), 2, 3, errors.KindInvalidOperator},
		{"no operator", OpNone, 2, 3, errors.KindInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.op, tt.a, tt.b)
			if err == nil {
				t.Fatal("expected error")
			}
			if !err.(*errors.Error).Is(&errors.Error{Phase: errors.PhaseEvaluate, Kind: tt.kind}) {
				t.Errorf("err = %v, want %s", err, tt.kind)
			}
		})
	}
}

func TestOperatorValid(t *testing.T) {
	for _, op := range Operators() {
		if !op.Valid() {
			t.Errorf("%q should be valid", op)
		}
	}
	for _, op := range []Operator{OpNone, "^", "x", "=="} {
		if op.Valid() {
			t.Errorf("%q should not be valid", op)
		}
	}
}
