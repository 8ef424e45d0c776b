package asynctask

// Task represents a unit of work that will eventually settle exactly
// once, with either a result of type T, an error, or as cancelled. A
// Task is a read-only handle: it is produced either by a
// TaskCompletionSource, by one of the synchronous factories (Completed,
// Failed, CancelledTask), or by a combinator/continuation.
type Task[T any] struct {
	core *taskCore[T]
}

func newTask[T any](core *taskCore[T]) *Task[T] {
	return &Task[T]{core: core}
}

// State returns the Task's current lifecycle state.
func (t *Task[T]) State() TaskState {
	return t.core.getState()
}

// IsCompleted reports whether the Task has settled, in any of its three
// terminal states.
func (t *Task[T]) IsCompleted() bool {
	return t.State() != StatePending
}

// IsFaulted reports whether the Task settled with an error.
func (t *Task[T]) IsFaulted() bool {
	return t.State() == StateFailure
}

// IsCancelled reports whether the Task was cancelled.
func (t *Task[T]) IsCancelled() bool {
	return t.State() == StateCancelled
}

// IsSuccessful reports whether the Task settled with a result.
func (t *Task[T]) IsSuccessful() bool {
	return t.State() == StateSuccess
}

// Result returns the Task's result. It is only meaningful once
// IsSuccessful returns true; the zero value of T is returned otherwise.
func (t *Task[T]) Result() T {
	_, v, _ := t.core.snapshot()
	return v
}

// Error returns the Task's error. It is only non-nil once IsFaulted
// returns true.
func (t *Task[T]) Error() error {
	_, _, err := t.core.snapshot()
	return err
}

// markObserved is called by continuation attachment and WaitUntilCompleted,
// so an eventually-failed Task that was actually inspected doesn't get
// logged as an unhandled failure.
func (t *Task[T]) markObserved() {
	t.core.markObserved()
}
