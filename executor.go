package asynctask

// Executor runs a closure, at some point, on some goroutine. It is the
// Go rendering of Bolts' Executor: the thing a continuation is attached
// to decides only where the continuation's body runs, never when the
// Task it's attached to settles.
//
// Implementations must not panic; Execute is expected to either run
// closure or arrange for it to run, and return.
type Executor interface {
	Execute(closure func())
}

// ExecutorFunc adapts a plain func(func()) to an Executor.
type ExecutorFunc func(closure func())

func (f ExecutorFunc) Execute(closure func()) { f(closure) }

// Immediate runs closure synchronously, on the calling goroutine. This
// is the cheapest Executor.
var Immediate Executor = ExecutorFunc(func(closure func()) {
	closure()
})

// Default runs closure synchronously, on the calling goroutine, while
// that goroutine is nested beneath fewer than a bounded number of
// Default-run closures; once the bound is reached, it hands closure to a
// background worker goroutine instead. This collapses chains of
// trivially-resolved continuations (e.g. a loop of
// ContinueWith(t, Default, ...) calls against already-completed Tasks)
// into synchronous calls, without letting them grow the stack without
// limit.
//
// The per-goroutine recursion bound is tracked via getGoroutineID,
// grounded on eventloop/loop.go's isLoopThread/getGoroutineID pair -
// there is no public API for goroutine identity, so this parses
// runtime.Stack output the same way the teacher does.
var Default Executor = ExecutorFunc(func(closure func()) {
	s := defaultScheduler()
	gid := getGoroutineID()
	depth := s.depthFor(gid)

	if *depth >= s.cfg.recursionMax {
		s.submit(closure)
		return
	}

	*depth++
	defer func() { *depth-- }()
	closure()
})

// MainThreadDispatcher submits a closure to be run on an application's
// main/UI thread. Implementations are platform-specific; this package
// has no opinion on how that's achieved.
type MainThreadDispatcher interface {
	// DispatchOnMain arranges for fn to run on the main thread.
	DispatchOnMain(fn func())
}

// NewMainThreadExecutor adapts a MainThreadDispatcher into an Executor.
func NewMainThreadExecutor(d MainThreadDispatcher) Executor {
	return ExecutorFunc(func(closure func()) {
		d.DispatchOnMain(closure)
	})
}

// QueueHandle models an application-level serial or concurrent queue
// (e.g. a wrapped dispatch_queue_t, or a channel-backed worker queue)
// that closures can be enqueued onto.
type QueueHandle interface {
	// Enqueue schedules fn for execution on the queue.
	Enqueue(fn func())
}

// NewQueueExecutor adapts a QueueHandle into an Executor.
func NewQueueExecutor(q QueueHandle) Executor {
	return ExecutorFunc(func(closure func()) {
		q.Enqueue(closure)
	})
}

// OperationQueueHandle models an application-level operation queue,
// where each submitted closure is wrapped as an independent unit of work
// (e.g. NSOperationQueue), as opposed to QueueHandle's plain enqueue.
type OperationQueueHandle interface {
	// AddOperation schedules fn as a new operation.
	AddOperation(fn func())
}

// NewOperationQueueExecutor adapts an OperationQueueHandle into an
// Executor.
func NewOperationQueueExecutor(q OperationQueueHandle) Executor {
	return ExecutorFunc(func(closure func()) {
		q.AddOperation(closure)
	})
}

// NewClosureExecutor adapts a trampoline func(func()) directly into an
// Executor - the degenerate case where the caller already has exactly
// the shape Executor wants.
func NewClosureExecutor(trampoline func(func())) Executor {
	return ExecutorFunc(trampoline)
}
