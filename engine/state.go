package engine

import "strconv"

// Operator is an arithmetic operator awaiting its second operand.
type Operator string

const (
	OpNone Operator = ""
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
	OpMod  Operator = "%"
)

// Valid reports whether op is one of the five arithmetic operators.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return true
	}
	return false
}

// Operators lists the arithmetic operators in keypad order.
func Operators() []Operator {
	return []Operator{OpMod, OpDiv, OpMul, OpSub, OpAdd}
}

// Phase is the logical state of the machine.
type Phase uint8

const (
	PhaseEntering        Phase = iota // no operator pending
	PhaseAwaitingOperand              // operator chosen, typing the second operand
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseAwaitingOperand:
		return "awaiting_operand"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// DefaultDisplay is shown whenever nothing has been typed.
const DefaultDisplay = "0"

// State is the complete calculator state. The zero value is not valid;
// use New.
type State struct {
	Display string
	First   string
	Pending Operator
	History History
}

// New returns the state of a freshly opened screen.
func New() State {
	return State{Display: DefaultDisplay}
}

// Phase reports whether an operator is pending.
func (s State) Phase() Phase {
	if s.Pending == OpNone {
		return PhaseEntering
	}
	return PhaseAwaitingOperand
}

// Equal reports whether two states render identically.
func (s State) Equal(o State) bool {
	return s.Display == o.Display &&
		s.First == o.First &&
		s.Pending == o.Pending &&
		s.History.Equal(o.History)
}

// EventKind identifies an input event.
type EventKind uint8

const (
	EventDigit EventKind = iota + 1
	EventDecimalPoint
	EventDoubleZero
	EventOperator
	EventEquals
	EventClear
	EventAllClear
	EventBackspace
)

var eventKindNames = [...]string{
	EventDigit:        "digit",
	EventDecimalPoint: "decimal_point",
	EventDoubleZero:   "double_zero",
	EventOperator:     "operator",
	EventEquals:       "equals",
	EventClear:        "clear",
	EventAllClear:     "all_clear",
	EventBackspace:    "backspace",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return "event(" + strconv.Itoa(int(k)) + ")"
}

// Event is a single button press.
type Event struct {
	Operator Operator
	Kind     EventKind
	Digit    byte
}

// Digit returns the event for pressing digit d (0-9). Any other d yields an
// event that Step rejects with invalid_input.
func Digit(d int) Event {
	if d < 0 || d > 9 {
		return Event{Kind: EventDigit}
	}
	return Event{Kind: EventDigit, Digit: byte('0' + d)}
}

// DecimalPoint returns the event for pressing ".".
func DecimalPoint() Event { return Event{Kind: EventDecimalPoint} }

// DoubleZero returns the event for pressing "00".
func DoubleZero() Event { return Event{Kind: EventDoubleZero} }

// OperatorKey returns the event for pressing an operator key.
func OperatorKey(op Operator) Event { return Event{Kind: EventOperator, Operator: op} }

// Equals returns the event for pressing "=".
func Equals() Event { return Event{Kind: EventEquals} }

// Clear returns the event for pressing "C".
func Clear() Event { return Event{Kind: EventClear} }

// AllClear returns the event for pressing "AC".
func AllClear() Event { return Event{Kind: EventAllClear} }

// Backspace returns the event for pressing "⌫".
func Backspace() Event { return Event{Kind: EventBackspace} }

func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		if !isDigit(e.Digit) {
			return "digit(?)"
		}
		return "digit(" + string(e.Digit) + ")"
	case EventOperator:
		return "operator(" + string(e.Operator) + ")"
	default:
		return e.Kind.String()
	}
}
