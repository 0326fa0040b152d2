// Package calculator provides a pocket calculator as a pure state machine.
//
// The calculator has one display, the operators + - * / %, and a history of
// the last four completed calculations. Presentation layers feed it button
// presses and render the state they get back.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	calculator/          Root package with the Eval convenience
//	├── engine/          State, events and the pure Reduce function
//	├── keypad/          Button labels, the button grid and text tokenizing
//	├── session/         Owned state, observers and logging for one screen
//	├── server/          MCP tools that press keys on a session
//	├── errors/          Structured error types
//	└── cmd/calc/        Terminal UI, one-shot and MCP host
//
// # Quick Start
//
// Evaluate a key sequence:
//
//	st, err := calculator.Eval("2", "+", "3", "=")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(st.Display)         // 5
//	fmt.Println(st.History.Items()) // [2 + 3 = 5]
//
// Or drive the reducer directly:
//
//	s := engine.New()
//	s = engine.Reduce(s, engine.Digit(7))
//	s = engine.Reduce(s, engine.OperatorKey(engine.OpMod))
//
// # Arithmetic
//
// Operations are binary and evaluated on "="; a second operator before "="
// replaces the first. Results use native float64 arithmetic. A calculation
// that does not produce a finite number, such as division by zero, is
// silently discarded and the display keeps what it showed.
package calculator
