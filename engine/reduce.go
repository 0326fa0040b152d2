package engine

import (
	"github.com/wippyai/calculator/errors"
)

// Reduce returns the state that follows s after e. s is never modified;
// the result shares no mutable data with it.
func Reduce(s State, e Event) State {
	next, _ := Step(s, e)
	return next
}

// Step is Reduce that also reports why an Equals press was discarded.
// err is non-nil for EventEquals with a pending operator whose operands or
// result are not finite numbers, and for malformed digit or operator events;
// next equals s in that case.
func Step(s State, e Event) (next State, err error) {
	switch e.Kind {
	case EventDigit:
		if !isDigit(e.Digit) {
			return s, errors.InvalidInput(errors.PhaseEvaluate, "digit event without a decimal digit")
		}
		s.Display = appendDigit(s.Display, e.Digit)
	case EventDecimalPoint:
		s.Display += "."
	case EventDoubleZero:
		s.Display += "00"
	case EventOperator:
		if !e.Operator.Valid() {
			return s, errors.InvalidOperator(string(e.Operator))
		}
		s.Pending = e.Operator
		s.First = s.Display
		s.Display = DefaultDisplay
	case EventEquals:
		return equals(s)
	case EventClear:
		s = clearEntry(s)
	case EventAllClear:
		s = clearEntry(s)
		s.History = History{}
	case EventBackspace:
		if len(s.Display) > 1 {
			s.Display = s.Display[:len(s.Display)-1]
		} else {
			s.Display = DefaultDisplay
		}
	default:
		debugf("ignoring %s", e)
	}
	return s, nil
}

func appendDigit(display string, d byte) string {
	if display == DefaultDisplay {
		return string(d)
	}
	return display + string(d)
}

func clearEntry(s State) State {
	s.Display = DefaultDisplay
	s.Pending = OpNone
	s.First = ""
	return s
}

func equals(s State) (State, error) {
	if s.Pending == OpNone {
		return s, nil
	}

	a, ok := ParseNumber(s.First)
	if !ok {
		debugf("equals rejected: first operand %q", s.First)
		return s, errors.InvalidOperand(s.First)
	}
	b, ok := ParseNumber(s.Display)
	if !ok {
		debugf("equals rejected: second operand %q", s.Display)
		return s, errors.InvalidOperand(s.Display)
	}

	r, err := Evaluate(s.Pending, a, b)
	if err != nil {
		debugf("equals rejected: %v", err)
		return s, err
	}

	result := FormatNumber(r)
	s.History = s.History.Push(s.First + " " + string(s.Pending) + " " + s.Display + " = " + result)
	s.Display = result
	s.Pending = OpNone
	s.First = ""
	return s, nil
}
