package asynctask

// ContinueWith attaches a continuation to t, to run on executor once t
// settles, regardless of how it settled. f observes the full state of t
// (via the passed-in *Task[T], which is guaranteed IsCompleted) and
// returns the result (or error) for the returned Task.
//
// Go methods cannot introduce new type parameters, so a continuation
// that changes the result type (T -> U) must be a package-level generic
// function rather than a method on Task[T] - the same free-function
// chaining idiom the pack's other future implementations use.
func ContinueWith[T, U any](t *Task[T], executor Executor, f func(*Task[T]) (U, error)) *Task[U] {
	tcs := NewCompletionSource[U]()
	run := func() {
		t.markObserved()
		executor.Execute(func() {
			settleWithRecover(tcs, func() (U, error) {
				return f(t)
			})
		})
	}
	if t.core.addContinuation(run) {
		run()
	}
	return tcs.Task()
}

// ContinueWithTask is like ContinueWith, but f returns a *Task[U] to
// chain onto, rather than a synchronous result. If f returns nil, the
// resulting Task is settled Cancelled (matching Bolts'
// continueWithTask behavior for a block that returns nil).
func ContinueWithTask[T, U any](t *Task[T], executor Executor, f func(*Task[T]) *Task[U]) *Task[U] {
	tcs := NewCompletionSource[U]()
	run := func() {
		t.markObserved()
		executor.Execute(func() {
			inner, err := callRecover(func() *Task[U] {
				return f(t)
			})
			if err != nil {
				tcs.TrySetError(err)
				return
			}
			if inner == nil {
				tcs.TryCancel()
				return
			}
			forward(inner, tcs)
		})
	}
	if t.core.addContinuation(run) {
		run()
	}
	return tcs.Task()
}

// ContinueOnSuccessWith is like ContinueWith, but f only runs if t
// settled successfully; a Failure or Cancelled t instead propagates
// directly to the resulting Task, without running f.
func ContinueOnSuccessWith[T, U any](t *Task[T], executor Executor, f func(T) (U, error)) *Task[U] {
	return ContinueWith(t, executor, func(t *Task[T]) (U, error) {
		var zero U
		switch t.State() {
		case StateFailure:
			return zero, t.Error()
		case StateCancelled:
			return zero, errCancelledPropagation
		default:
			return f(t.Result())
		}
	})
}

// ContinueOnSuccessWithTask is like ContinueWithTask, but f only runs if
// t settled successfully.
func ContinueOnSuccessWithTask[T, U any](t *Task[T], executor Executor, f func(T) *Task[U]) *Task[U] {
	return ContinueWithTask(t, executor, func(t *Task[T]) *Task[U] {
		switch t.State() {
		case StateFailure:
			return Failed[U](t.Error())
		case StateCancelled:
			return CancelledTask[U]()
		default:
			return f(t.Result())
		}
	})
}

// errCancelledPropagation is a private sentinel, never exposed: it
// exists only so ContinueOnSuccessWith can route a Cancelled antecedent
// through the same (U, error) shape its success path uses, without
// fabricating a cause. settleWithRecover strips it back out, below.
var errCancelledPropagation = &cancelledError{}

type cancelledError struct{}

func (*cancelledError) Error() string { return `asynctask: antecedent task was cancelled` }

// settleWithRecover runs f, recovering any panic into a Failure, and
// settles tcs accordingly. A returned errCancelledPropagation instead
// settles tcs as Cancelled.
func settleWithRecover[U any](tcs *TaskCompletionSource[U], f func() (U, error)) {
	v, err := callRecoverResult(f)
	if err == errCancelledPropagation {
		tcs.TryCancel()
		return
	}
	if err != nil {
		tcs.TrySetError(err)
		return
	}
	tcs.TrySetResult(v)
}

func callRecoverResult[U any](f func() (U, error)) (v U, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverPanic(r)
			logRecoveredPanic(`ContinueWith`, err)
		}
	}()
	return f()
}

func callRecover[U any](f func() *Task[U]) (t *Task[U], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverPanic(r)
			logRecoveredPanic(`ContinueWithTask`, err)
		}
	}()
	return f(), nil
}

// forward settles tcs identically to how inner eventually settles,
// without copying inner's continuation list.
func forward[U any](inner *Task[U], tcs *TaskCompletionSource[U]) {
	run := func() {
		inner.markObserved()
		switch inner.State() {
		case StateSuccess:
			tcs.TrySetResult(inner.Result())
		case StateFailure:
			tcs.TrySetError(inner.Error())
		case StateCancelled:
			tcs.TryCancel()
		}
	}
	if inner.core.addContinuation(run) {
		run()
	}
}
