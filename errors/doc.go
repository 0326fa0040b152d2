// Package errors provides structured error types for the calculator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending value, a human-readable detail and an
// optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseKeypad, errors.KindUnknownKey).
//		Value("sqrt").
//		Detail("no button labeled %q", "sqrt").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownKey("sqrt")
//	err := errors.NonFinite("/", 5, 0)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
