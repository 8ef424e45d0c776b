package asynctask

import "sync"

// ErrNoTasksProvided is the error WhenAny settles with, when given an
// empty slice of tasks - mirroring eventloop's JS.Any behavior for an
// empty input (ErrNoPromiseResolved), since there is no task that could
// ever settle first.
var ErrNoTasksProvided = &AggregateError{Message: `asynctask: no tasks provided to WhenAny`}

// WhenAll returns a Task that settles once every task in tasks has
// settled. Per precedence, it settles:
//
//   - Failure, with an AggregateError of every failed task's error (in
//     completion order), if at least one task failed;
//   - Cancelled, if none failed but at least one was cancelled;
//   - Success, otherwise.
//
// An empty tasks settles Success immediately.
func WhenAll[T any](tasks []*Task[T]) *Task[struct{}] {
	tcs := NewCompletionSource[struct{}]()
	if len(tasks) == 0 {
		tcs.TrySetResult(struct{}{})
		return tcs.Task()
	}

	var (
		mu        sync.Mutex
		remaining = len(tasks)
		errs      []error
		cancelled bool
	)

	for _, t := range tasks {
		t := t
		attachSettleObserver(t, func() {
			mu.Lock()
			switch t.State() {
			case StateFailure:
				errs = append(errs, t.Error())
			case StateCancelled:
				cancelled = true
			}
			remaining--
			done := remaining == 0
			mu.Unlock()

			if done {
				switch {
				case len(errs) > 0:
					tcs.TrySetError(&AggregateError{Message: `asynctask: WhenAll: one or more tasks failed`, Errors: errs})
				case cancelled:
					tcs.TryCancel()
				default:
					tcs.TrySetResult(struct{}{})
				}
			}
		})
	}

	return tcs.Task()
}

// WhenAllResult is like WhenAll, but on success carries every task's
// result, in input-slice order.
func WhenAllResult[T any](tasks []*Task[T]) *Task[[]T] {
	tcs := NewCompletionSource[[]T]()
	if len(tasks) == 0 {
		tcs.TrySetResult(nil)
		return tcs.Task()
	}

	results := make([]T, len(tasks))
	var (
		mu        sync.Mutex
		remaining = len(tasks)
		errs      []error
		cancelled bool
	)

	for i, t := range tasks {
		i, t := i, t
		attachSettleObserver(t, func() {
			mu.Lock()
			switch t.State() {
			case StateFailure:
				errs = append(errs, t.Error())
			case StateCancelled:
				cancelled = true
			case StateSuccess:
				results[i] = t.Result()
			}
			remaining--
			done := remaining == 0
			mu.Unlock()

			if done {
				switch {
				case len(errs) > 0:
					tcs.TrySetError(&AggregateError{Message: `asynctask: WhenAllResult: one or more tasks failed`, Errors: errs})
				case cancelled:
					tcs.TryCancel()
				default:
					tcs.TrySetResult(results)
				}
			}
		})
	}

	return tcs.Task()
}

// WhenAllSettled always succeeds, once every task in tasks has settled,
// carrying the settled tasks themselves (so callers can inspect each
// individually), in input-slice order. Mirrors eventloop.JS.AllSettled.
func WhenAllSettled[T any](tasks []*Task[T]) *Task[[]*Task[T]] {
	tcs := NewCompletionSource[[]*Task[T]]()
	if len(tasks) == 0 {
		tcs.TrySetResult(nil)
		return tcs.Task()
	}

	var (
		mu        sync.Mutex
		remaining = len(tasks)
	)

	for _, t := range tasks {
		attachSettleObserver(t, func() {
			mu.Lock()
			remaining--
			done := remaining == 0
			mu.Unlock()
			if done {
				tcs.TrySetResult(tasks)
			}
		})
	}

	return tcs.Task()
}

// WhenAny returns a Task that settles successfully with the first task
// in tasks to settle (in any of its own states), once that happens. An
// empty tasks settles WhenAny's Task immediately with Failure,
// ErrNoTasksProvided.
func WhenAny[T any](tasks []*Task[T]) *Task[*Task[T]] {
	tcs := NewCompletionSource[*Task[T]]()
	if len(tasks) == 0 {
		tcs.TrySetError(ErrNoTasksProvided)
		return tcs.Task()
	}

	for _, t := range tasks {
		t := t
		attachSettleObserver(t, func() {
			tcs.TrySetResult(t)
		})
	}

	return tcs.Task()
}

// attachSettleObserver runs fn once t settles, directly on the goroutine
// that settles t (or the caller, if t has already settled), without an
// Executor or a chained Task as ContinueWith uses - combinators need only
// the raw settle notification.
func attachSettleObserver[T any](t *Task[T], fn func()) {
	if t.core.addContinuation(fn) {
		fn()
	}
}
