package asynctask

import (
	"context"
	"math/big"
	"time"

	"github.com/joeycumines/floater"
)

// WithDelay returns a Task that settles successfully after seconds have
// elapsed.
func WithDelay(seconds float64) *Task[struct{}] {
	return withDelayDuration(time.Duration(seconds * float64(time.Second)))
}

// WithDelayContext is like WithDelay, but settles Cancelled if ctx is
// done before the delay elapses - restoring Bolts'
// Task.delay(_:cancellationToken:) early-cancellation behavior, which
// spec.md's WithDelay left out.
func WithDelayContext(ctx context.Context, seconds float64) *Task[struct{}] {
	tcs := NewCompletionSource[struct{}]()
	d := time.Duration(seconds * float64(time.Second))

	done := make(chan struct{})
	defaultScheduler().scheduleAt(time.Now().Add(d), func() {
		close(done)
		tcs.TrySetResult(struct{}{})
	})

	go func() {
		select {
		case <-done:
		case <-ctx.Done():
			tcs.TryCancel()
		}
	}()

	return tcs.Task()
}

// WithDelayRat is like WithDelay, but takes an exact number of seconds
// as a big.Rat, avoiding the binary-fraction rounding a float64 seconds
// argument would introduce - useful when the delay comes from an exact
// decimal source (e.g. a contractual/financial duration). Uses
// floater.RatToUnitsNanos for the conversion, the same function floater
// documents as suitable for exact units/nanos splitting.
//
// Returns a Task that immediately fails, if seconds is out of range (see
// floater.RatToUnitsNanos), or nil.
func WithDelayRat(seconds *big.Rat) *Task[struct{}] {
	units, nanos, ok := floater.RatToUnitsNanos(seconds)
	if !ok {
		return Failed[struct{}](errInvalidDelayRat)
	}
	d := time.Duration(units)*time.Second + time.Duration(nanos)
	return withDelayDuration(d)
}

var errInvalidDelayRat = &AggregateError{Message: `asynctask: WithDelayRat: seconds out of range or nil`}

func withDelayDuration(d time.Duration) *Task[struct{}] {
	tcs := NewCompletionSource[struct{}]()
	defaultScheduler().scheduleAt(time.Now().Add(d), func() {
		tcs.TrySetResult(struct{}{})
	})
	return tcs.Task()
}
