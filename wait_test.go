package asynctask

import (
	"context"
	"testing"
	"time"

	longpoll "github.com/joeycumines/go-longpoll"
)

func TestWaitForNReturnsOnceNSettle(t *testing.T) {
	sources := make([]*TaskCompletionSource[int], 5)
	tasks := make([]*Task[int], 5)
	for i := range sources {
		sources[i] = NewCompletionSource[int]()
		tasks[i] = sources[i].Task()
	}

	go func() {
		time.Sleep(5 * time.Millisecond)
		sources[0].SetResult(1)
		sources[1].SetResult(2)
		sources[2].SetResult(3)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	results, err := WaitForN(ctx, tasks, 3, &longpoll.ChannelConfig{PartialTimeout: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) < 3 {
		t.Fatalf("expected at least 3 settled tasks, got %d", len(results))
	}
}

func TestWaitForNContextCancellation(t *testing.T) {
	tasks := []*Task[int]{NewCompletionSource[int]().Task()}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := WaitForN(ctx, tasks, 1, nil)
	if err == nil {
		t.Fatal("expected an error once ctx is done before n tasks settle")
	}
}
