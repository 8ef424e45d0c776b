package asynctask

import (
	"runtime"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the subset of logiface's generic logger this package needs,
// to stay backend-agnostic the way eventloop's globalLogger does.
type Logger interface {
	Info() *logiface.Builder[*stumpy.Event]
	Warning() *logiface.Builder[*stumpy.Event]
	Err() *logiface.Builder[*stumpy.Event]
}

var (
	loggerMu     sync.RWMutex
	globalLogger Logger = stumpy.L.New()
)

// SetLogger replaces the package-level logger used to report programming
// errors (AlreadyCompleted on a non-Try setter), recovered continuation
// panics, and unhandled task failures. Passing nil restores a default
// stumpy-backed logger.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		l = stumpy.L.New()
	}
	globalLogger = l
}

func getLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

func logAlreadyCompleted(op string) {
	getLogger().Warning().Str(`op`, op).Log(`asynctask: already completed`)
}

func logRecoveredPanic(op string, err error) {
	getLogger().Err().Str(`op`, op).Err(err).Log(`asynctask: recovered panic`)
}

// trackUnhandledFailure arranges for a log message if core settles with
// StateFailure and is garbage collected without ever being observed by a
// continuation or WaitUntilCompleted. This mirrors eventloop/promise.go's
// handler-ready unhandled-rejection tracking, downscaled to a finalizer
// hook since this library has no event-loop tick to schedule a periodic
// check against.
func trackUnhandledFailure[T any](c *taskCore[T]) {
	runtime.SetFinalizer(c, func(c *taskCore[T]) {
		c.mu.Lock()
		unhandled := c.state == StateFailure && !c.observed
		err := c.err
		c.mu.Unlock()
		if unhandled {
			getLogger().Err().Err(err).Log(`asynctask: unhandled task failure`)
		}
	})
}
