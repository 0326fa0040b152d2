package calculator

import (
	"github.com/wippyai/calculator/engine"
	"github.com/wippyai/calculator/errors"
	"github.com/wippyai/calculator/keypad"
	"github.com/wippyai/calculator/session"
)

// Eval presses labels on a fresh calculator and returns the final state.
// A single argument is tokenized, so Eval("12+3=") works as well.
func Eval(labels ...string) (engine.State, error) {
	if len(labels) == 1 {
		tokens, err := keypad.Tokenize(labels[0])
		if err != nil {
			return engine.New(), errors.Wrap(errors.PhaseSession, errors.KindInvalidInput, err, "tokenize")
		}
		labels = tokens
	}
	st, err := session.New().PressAll(labels)
	if err != nil {
		return st, errors.Wrap(errors.PhaseSession, errors.KindInvalidInput, err, "eval")
	}
	return st, nil
}
