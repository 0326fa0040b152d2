package engine

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	debug  atomic.Bool
)

// Logger returns the engine's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	logger.CompareAndSwap(nil, zap.NewNop())
	return logger.Load()
}

// SetLogger configures the engine's logger and turns on debug tracing of
// discarded events. A nil logger restores the no-op logger. It is safe to
// call while other goroutines reduce.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger.Store(zap.NewNop())
		debug.Store(false)
		return
	}
	logger.Store(l)
	debug.Store(true)
}

// debugf is a no-op until SetLogger installs a logger.
func debugf(format string, args ...any) {
	if debug.Load() {
		Logger().Sugar().Debugf(format, args...)
	}
}
