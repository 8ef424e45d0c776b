package asynctask

// TaskCompletionSource is the exclusive write-side handle paired with a
// Task[T]. Exactly one of SetResult, SetError or Cancel (or their Try
// variants) may take effect; subsequent calls are rejected.
//
// Grounded on eventloop/promise.go's NewChainedPromise, which returns a
// read-only Promise alongside separate Resolve/Reject closures; rendered
// here as a struct rather than closures, since Go generics need a named
// type to carry T across SetResult and SetError.
type TaskCompletionSource[T any] struct {
	task *Task[T]
}

// NewCompletionSource creates a TaskCompletionSource and its paired,
// initially-Pending Task.
func NewCompletionSource[T any]() *TaskCompletionSource[T] {
	core := newTaskCore[T]()
	if defaultScheduler().cfg.debugMode {
		core.creationStack = captureCreationStack()
	}
	trackUnhandledFailure(core)
	return &TaskCompletionSource[T]{task: newTask(core)}
}

// Task returns the read-only Task this source settles.
func (s *TaskCompletionSource[T]) Task() *Task[T] {
	return s.task
}

// SetResult settles the Task successfully with v. It panics with
// ErrAlreadyCompleted if the Task has already settled.
func (s *TaskCompletionSource[T]) SetResult(v T) {
	if !s.TrySetResult(v) {
		logAlreadyCompleted(`SetResult`)
		panic(ErrAlreadyCompleted)
	}
}

// SetError settles the Task with err. It panics with ErrAlreadyCompleted
// if the Task has already settled.
func (s *TaskCompletionSource[T]) SetError(err error) {
	if !s.TrySetError(err) {
		logAlreadyCompleted(`SetError`)
		panic(ErrAlreadyCompleted)
	}
}

// Cancel settles the Task as cancelled. It panics with
// ErrAlreadyCompleted if the Task has already settled.
func (s *TaskCompletionSource[T]) Cancel() {
	if !s.TryCancel() {
		logAlreadyCompleted(`Cancel`)
		panic(ErrAlreadyCompleted)
	}
}

// TrySetResult attempts to settle the Task successfully with v,
// returning false without effect if it has already settled.
func (s *TaskCompletionSource[T]) TrySetResult(v T) bool {
	drained, ok := s.task.core.trySettle(StateSuccess, v, nil)
	if !ok {
		return false
	}
	runAll(drained)
	return true
}

// TrySetError attempts to settle the Task with err, returning false
// without effect if it has already settled.
func (s *TaskCompletionSource[T]) TrySetError(err error) bool {
	var zero T
	drained, ok := s.task.core.trySettle(StateFailure, zero, err)
	if !ok {
		return false
	}
	runAll(drained)
	return true
}

// TryCancel attempts to settle the Task as cancelled, returning false
// without effect if it has already settled.
func (s *TaskCompletionSource[T]) TryCancel() bool {
	var zero T
	drained, ok := s.task.core.trySettle(StateCancelled, zero, nil)
	if !ok {
		return false
	}
	runAll(drained)
	return true
}

// Completed returns an already-successful Task wrapping v.
func Completed[T any](v T) *Task[T] {
	core := newTaskCore[T]()
	core.state = StateSuccess
	core.result = v
	close(core.done)
	return newTask(core)
}

// Failed returns an already-failed Task wrapping err.
func Failed[T any](err error) *Task[T] {
	core := newTaskCore[T]()
	core.state = StateFailure
	core.err = err
	close(core.done)
	return newTask(core)
}

// CancelledTask returns an already-cancelled Task.
func CancelledTask[T any]() *Task[T] {
	core := newTaskCore[T]()
	core.state = StateCancelled
	close(core.done)
	return newTask(core)
}
