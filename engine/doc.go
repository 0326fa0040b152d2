// Package engine provides the calculator's input/calculation state machine.
//
// The engine is a pure reducer: every button press is an Event, and Reduce
// maps the current State and an Event to the next State without touching
// its input. Presentation layers hold the State they were handed and render
// from it; they never do arithmetic themselves.
//
// # State
//
//	Display  - the operand being typed or the last result, never empty
//	Pending  - the operator awaiting its second operand, or OpNone
//	First    - Display as it was when Pending was chosen
//	History  - the last four evaluations, newest first
//
// # Events
//
//	Digit(d)        replace a lone "0" or append d
//	DecimalPoint()  append "."
//	DoubleZero()    append "00"
//	OperatorKey(op) remember Display and op, reset Display to "0"
//	Equals()        evaluate First op Display and record it
//	Clear()         reset Display, Pending and First
//	AllClear()      Clear and empty History
//	Backspace()     drop the last character, down to "0"
//
// A second OperatorKey before Equals overwrites the first one; there is no
// operator stack and no precedence.
//
// # Evaluation
//
// Operands are parsed with ParseNumber, which accepts the longest numeric
// prefix of the text ("1.2.3" is 1.2). Results are rendered with
// FormatNumber. An evaluation whose result is not a finite number, including
// division or remainder by zero, leaves the State untouched.
//
// # Example
//
//	s := engine.New()
//	for _, e := range []engine.Event{
//	    engine.Digit(2), engine.OperatorKey(engine.OpAdd), engine.Digit(3), engine.Equals(),
//	} {
//	    s = engine.Reduce(s, e)
//	}
//	fmt.Println(s.Display)         // 5
//	fmt.Println(s.History.Items()) // [2 + 3 = 5]
//
// # Thread Safety
//
// State values are immutable once returned and may be shared freely.
// Reduce has no side effects other than debug logging.
package engine
