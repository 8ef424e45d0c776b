package asynctask

import (
	"context"
	"errors"

	longpoll "github.com/joeycumines/go-longpoll"
)

// WaitUntilCompleted blocks the calling goroutine until t settles.
func (t *Task[T]) WaitUntilCompleted() {
	<-t.core.done
	t.markObserved()
}

// ErrPartialWaitForN is returned by WaitForN alongside a non-nil, but
// short (fewer than n), result slice, when cfg's PartialTimeout elapses
// before n tasks settle.
var ErrPartialWaitForN = errors.New(`asynctask: WaitForN: partial timeout reached before n tasks settled`)

// WaitForN blocks until at least n of tasks have settled (in any of
// their own terminal states), or cfg's constraints are otherwise
// satisfied, returning the tasks that settled, in settlement order.
//
// Generalizes WhenAny/WaitUntilCompleted into "block until N of M
// settle, with a partial timeout", by reusing longpoll.Channel's
// min/max/partial-timeout constraint model against a channel fed by
// each task's own settle notification.
//
// cfg may be nil, for longpoll's documented defaults; cfg.MinSize is
// always overridden to n. Returns ctx's error if ctx is done first.
func WaitForN[T any](ctx context.Context, tasks []*Task[T], n int, cfg *longpoll.ChannelConfig) ([]*Task[T], error) {
	settled := make(chan *Task[T], len(tasks))
	for _, t := range tasks {
		attachSettleObserver(t, func() {
			settled <- t
		})
	}

	effective := longpoll.ChannelConfig{MaxSize: len(tasks), MinSize: n}
	if cfg != nil {
		effective.PartialTimeout = cfg.PartialTimeout
		if cfg.MaxSize != 0 {
			effective.MaxSize = cfg.MaxSize
		}
	}

	var result []*Task[T]
	err := longpoll.Channel(ctx, &effective, settled, func(t *Task[T]) error {
		result = append(result, t)
		return nil
	})

	if err == nil && len(result) < n {
		return result, ErrPartialWaitForN
	}
	return result, err
}
