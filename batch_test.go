package asynctask

import (
	"sync"
	"testing"
	"time"

	microbatch "github.com/joeycumines/go-microbatch"
)

func TestBatchingQueueExecutorRunsClosures(t *testing.T) {
	var (
		mu  sync.Mutex
		ran []int
	)

	ex := NewBatchingQueueExecutor(queueHandleFunc(func(fn func()) {
		fn()
	}), &microbatch.BatcherConfig{MaxSize: 3, FlushInterval: 20 * time.Millisecond})

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		i := i
		wg.Add(1)
		ex.Execute(func() {
			mu.Lock()
			ran = append(ran, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(ran) != 3 {
		t.Fatalf("expected all 3 closures to run, got %d", len(ran))
	}
}

type queueHandleFunc func(fn func())

func (f queueHandleFunc) Enqueue(fn func()) { f(fn) }
