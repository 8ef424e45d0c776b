package asynctask

import (
	"context"

	microbatch "github.com/joeycumines/go-microbatch"
)

// NewBatchingQueueExecutor returns an Executor that coalesces many
// Execute(closure) calls into microbatches, before handing each batch to
// queue as a single enqueued closure that runs every batched closure in
// turn. Useful when queue has a per-enqueue cost worth amortizing (e.g.
// a remote work queue, or a handle with lock contention), the way
// microbatch's own callers reduce round trips.
//
// config may be nil, for microbatch's documented defaults.
func NewBatchingQueueExecutor(queue QueueHandle, config *microbatch.BatcherConfig) Executor {
	batcher := microbatch.NewBatcher[func()](config, func(ctx context.Context, jobs []func()) error {
		queue.Enqueue(func() {
			for _, job := range jobs {
				job()
			}
		})
		return nil
	})

	return ExecutorFunc(func(closure func()) {
		result, err := batcher.Submit(context.Background(), closure)
		if err != nil {
			// the batcher is shutting down or ctx was cancelled: run
			// inline rather than silently drop the closure.
			closure()
			return
		}
		_ = result // fire-and-forget: Executor has no result channel to report batch errors on
	})
}
