// Package keypad maps calculator button labels to engine events.
//
// The keypad is the fixed set of labeled buttons a presentation layer
// renders. Layout is the grid of the calculator screen:
//
//	AC  ⌫   %   /
//	7   8   9   *
//	4   5   6   -
//	1   2   3   +
//	0   00  .   =
//
// "C" is a recognized label without a place on the grid; hosts bind it to a
// key of their own.
//
// Parse turns one label into an engine.Event. Tokenize splits free text such
// as "12+3=" or "AC 7 x 8 =" into labels, accepting a few aliases
// ("x" for "*", "÷" for "/", "bs" for "⌫").
package keypad
