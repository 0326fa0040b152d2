package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wippyai/calculator/engine"
	"github.com/wippyai/calculator/keypad"
)

// EventType identifies a session notification.
type EventType uint8

const (
	EventApplied EventType = iota
	EventEvaluated
	EventRejected
	EventHistoryCleared
)

func (t EventType) String() string {
	switch t {
	case EventApplied:
		return "applied"
	case EventEvaluated:
		return "evaluated"
	case EventRejected:
		return "rejected"
	case EventHistoryCleared:
		return "history_cleared"
	default:
		return "unknown"
	}
}

// Event describes one state transition.
type Event struct {
	Err    error // why an evaluation was rejected
	Before engine.State
	After  engine.State
	Input  engine.Event
	Type   EventType
}

// Observer receives notifications about state transitions.
type Observer interface {
	OnSessionEvent(Event)
}

// Session is the single owner of a calculator state.
type Session struct {
	base      *zap.Logger
	logger    *zap.Logger
	id        string
	observers []Observer
	state     engine.State
	mu        sync.Mutex
}

// New creates a session with a fresh state and a random ID.
func New() *Session {
	s := &Session{
		base:  zap.NewNop(),
		id:    uuid.NewString(),
		state: engine.New(),
	}
	s.logger = s.base
	return s
}

// WithLogger sets the logger. A nil logger disables logging.
func (s *Session) WithLogger(l *zap.Logger) *Session {
	if l == nil {
		l = zap.NewNop()
	}
	s.base = l
	s.logger = l.With(zap.String("session", s.id))
	return s
}

// WithID replaces the generated session ID.
func (s *Session) WithID(id string) *Session {
	s.id = id
	s.logger = s.base.With(zap.String("session", id))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply handles one event and returns the resulting state.
func (s *Session) Apply(e engine.Event) engine.State {
	s.mu.Lock()
	after, events := s.apply(e)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, events)
	return after
}

// Press handles the button with the given label.
func (s *Session) Press(label string) (engine.State, error) {
	e, err := keypad.Parse(label)
	if err != nil {
		s.logger.Debug("unknown key", zap.String("label", label))
		return s.State(), err
	}
	return s.Apply(e), nil
}

// PressAll handles labels in order. It stops at the first unknown label;
// the returned state reflects the labels handled before it.
func (s *Session) PressAll(labels []string) (engine.State, error) {
	events := make([]engine.Event, 0, len(labels))
	var parseErr error
	for _, label := range labels {
		e, err := keypad.Parse(label)
		if err != nil {
			parseErr = err
			break
		}
		events = append(events, e)
	}

	s.mu.Lock()
	var notes []Event
	for _, e := range events {
		_, evs := s.apply(e)
		notes = append(notes, evs...)
	}
	st := s.state
	observers := s.snapshotObservers()
	s.mu.Unlock()

	if parseErr != nil {
		s.logger.Debug("press sequence stopped", zap.Int("applied", len(events)), zap.Error(parseErr))
	}
	notify(observers, notes)
	return st, parseErr
}

// Reset returns the session to its initial state, history included.
func (s *Session) Reset() engine.State {
	return s.Apply(engine.AllClear())
}

// apply runs e against the state and returns the notifications it caused.
// The caller holds s.mu and delivers them after unlocking.
func (s *Session) apply(e engine.Event) (engine.State, []Event) {
	before := s.state
	after, err := engine.Step(before, e)
	s.state = after

	if err != nil {
		s.logger.Debug("press discarded",
			zap.Stringer("event", e),
			zap.String("first", before.First),
			zap.String("operator", string(before.Pending)),
			zap.String("display", before.Display),
			zap.Error(err))
		return after, []Event{
			{Type: EventRejected, Before: before, After: after, Input: e, Err: err},
			{Type: EventApplied, Before: before, After: after, Input: e},
		}
	}

	var events []Event
	switch e.Kind {
	case engine.EventEquals:
		if before.Pending != engine.OpNone {
			s.logger.Info("evaluated", zap.String("calculation", after.History.At(0)))
			events = append(events, Event{Type: EventEvaluated, Before: before, After: after, Input: e})
		}
	case engine.EventAllClear:
		if before.History.Len() > 0 {
			s.logger.Debug("history cleared", zap.Int("entries", before.History.Len()))
			events = append(events, Event{Type: EventHistoryCleared, Before: before, After: after, Input: e})
		}
	}

	return after, append(events, Event{Type: EventApplied, Before: before, After: after, Input: e})
}

// Subscribe adds an observer for state transitions.
func (s *Session) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Unsubscribe removes an observer.
func (s *Session) Unsubscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, obs := range s.observers {
		if obs == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Session) snapshotObservers() []Observer {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]Observer, len(s.observers))
	copy(out, s.observers)
	return out
}

func notify(observers []Observer, events []Event) {
	for _, e := range events {
		for _, o := range observers {
			o.OnSessionEvent(e)
		}
	}
}
