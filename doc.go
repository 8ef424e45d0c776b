// Package asynctask implements a single-assignment future/promise style
// task composition primitive, in the lineage of Bolts/BFTask: a Task[T]
// represents a unit of work that will eventually produce a value of type
// T, or fail, or be cancelled, exactly once.
//
// A Task[T] is created either synchronously, via Completed/Failed/
// CancelledTask, or via a TaskCompletionSource[T], whose SetResult/
// SetError/Cancel methods settle the paired Task exactly once. Callers
// observe a Task by attaching continuations (ContinueWith,
// ContinueWithTask, ContinueOnSuccessWith, ContinueOnSuccessWithTask) or
// by blocking on WaitUntilCompleted. Continuations run on an Executor,
// which controls where (goroutine pool, main thread, an application's
// own queue) the continuation body runs.
//
// Composition across multiple tasks is via WhenAll, WhenAllResult,
// WhenAllSettled and WhenAny. WithDelay, WithDelayContext and
// WithDelayRat produce a Task that settles after some duration.
//
// Usage:
//
//	tcs := asynctask.NewCompletionSource[int]()
//	go func() {
//		tcs.SetResult(42)
//	}()
//	result := asynctask.ContinueOnSuccessWith(tcs.Task(), asynctask.Immediate, func(v int) (string, error) {
//		return fmt.Sprintf("got %d", v), nil
//	})
//	result.WaitUntilCompleted()
//
// Executors never preempt a running continuation, there is no
// prioritization between pending continuations, no parent/child
// structured lifetime between tasks, and no cross-executor ordering
// guarantee beyond what an individual Executor provides.
package asynctask
