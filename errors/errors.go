package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseKeypad    Phase = "keypad"    // label to event translation
	PhaseEvaluate  Phase = "evaluate"  // equals evaluation
	PhaseSession   Phase = "session"   // session bookkeeping
	PhaseConfig    Phase = "config"    // command line configuration
	PhaseTransport Phase = "transport" // MCP and terminal surfaces
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownKey      Kind = "unknown_key"
	KindNonFinite       Kind = "non_finite"
	KindInvalidOperand  Kind = "invalid_operand"
	KindInvalidOperator Kind = "invalid_operator"
	KindInvalidInput    Kind = "invalid_input"
	KindNotInitialized  Kind = "not_initialized"
	KindUnsupported     Kind = "unsupported"
	KindIO              Kind = "io"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location the error refers to, e.g. flag or argument names
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownKey creates an error for a label that is not on the keypad
func UnknownKey(label string) *Error {
	return &Error{
		Phase:  PhaseKeypad,
		Kind:   KindUnknownKey,
		Detail: fmt.Sprintf("no button labeled %q", label),
		Value:  label,
	}
}

// NonFinite creates an error for an evaluation whose result is NaN or infinite
func NonFinite(op string, a, b float64) *Error {
	return &Error{
		Phase:  PhaseEvaluate,
		Kind:   KindNonFinite,
		Detail: fmt.Sprintf("%v %s %v is not a finite number", a, op, b),
		Value:  op,
	}
}

// InvalidOperand creates an error for an operand that does not parse as a number
func InvalidOperand(operand string) *Error {
	return &Error{
		Phase:  PhaseEvaluate,
		Kind:   KindInvalidOperand,
		Detail: fmt.Sprintf("operand %q is not a number", operand),
		Value:  operand,
	}
}

// InvalidOperator creates an error for an operator outside + - * / %
func InvalidOperator(op string) *Error {
	return &Error{
		Phase:  PhaseEvaluate,
		Kind:   KindInvalidOperator,
		Detail: fmt.Sprintf("unknown operator %q", op),
		Value:  op,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
