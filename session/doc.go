// Package session owns the calculator state for the lifetime of one screen.
//
// A Session holds the current engine.State, applies button presses to it one
// at a time and tells observers what changed:
//
//	s := session.New().WithLogger(logger)
//	s.Subscribe(historyPrinter)
//
//	state, err := s.PressAll([]string{"2", "+", "3", "="})
//	fmt.Println(state.Display) // 5
//
// # Events
//
//	EventApplied         - any press that was handled
//	EventEvaluated       - "=" produced a result and a history entry
//	EventRejected        - a press was discarded, e.g. "=" with a non-finite result
//	EventHistoryCleared  - "AC" emptied a non-empty history
//
// A rejected evaluation never reaches the display; it is logged at debug
// level and reported to observers with its cause.
//
// # Thread Safety
//
// Session serializes presses with a mutex, so transports that dispatch on
// several goroutines still see one press at a time. Observers are called
// after the lock is released, so they may read or press on the Session they
// watch. Notifications for one press arrive in order; presses racing on
// several goroutines may have their notifications interleave.
package session
