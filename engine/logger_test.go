package engine

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	prev, prevDebug := Logger(), debug.Load()
	t.Cleanup(func() {
		logger.Store(prev)
		debug.Store(prevDebug)
	})
}

func TestSetLogger(t *testing.T) {
	restoreLogger(t)

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	s := New()
	if got := Reduce(s, Event{Kind: EventKind(99)}); !got.Equal(s) {
		t.Errorf("unknown event changed state to %+v", got)
	}
	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "ignoring event(99)" {
		t.Errorf("logs = %+v", entries)
	}

	SetLogger(nil)
	Reduce(s, Event{Kind: EventKind(99)})
	if logs.Len() != 1 {
		t.Errorf("nil logger should stop tracing, got %d entries", logs.Len())
	}
	if Logger() == nil {
		t.Error("Logger() should fall back to a no-op logger")
	}
}

func TestSetLogger_Concurrent(t *testing.T) {
	restoreLogger(t)

	core, _ := observer.New(zap.DebugLevel)
	l := zap.New(core)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s := New()
			for j := 0; j < 100; j++ {
				s = Reduce(s, Event{Kind: EventKind(99)})
				s = Reduce(s, Digit(1))
			}
		}()
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(l)
			} else {
				SetLogger(nil)
			}
		}(i)
	}
	wg.Wait()
}
