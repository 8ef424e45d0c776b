package asynctask

import (
	"errors"
	"testing"
)

func TestWhenAllSucceedsWhenAllSucceed(t *testing.T) {
	tasks := []*Task[int]{Completed(1), Completed(2), Completed(3)}
	all := WhenAll(tasks)
	if !all.IsSuccessful() {
		t.Fatalf("expected success, got %v (%v)", all.State(), all.Error())
	}
}

func TestWhenAllEmptySucceedsImmediately(t *testing.T) {
	all := WhenAll[int](nil)
	if !all.IsSuccessful() {
		t.Fatalf("expected an empty WhenAll to succeed immediately, got %v", all.State())
	}
}

func TestWhenAllFailurePrecedesCancellation(t *testing.T) {
	errWant := errors.New("one failed")
	tasks := []*Task[int]{
		Completed(1),
		Failed[int](errWant),
		CancelledTask[int](),
	}
	all := WhenAll(tasks)
	if !all.IsFaulted() {
		t.Fatalf("expected failure to take precedence over cancellation, got %v", all.State())
	}
	var agg *AggregateError
	if !errors.As(all.Error(), &agg) {
		t.Fatalf("expected *AggregateError, got %T", all.Error())
	}
	if len(agg.Errors) != 1 || agg.Errors[0] != errWant {
		t.Fatalf("expected aggregate of [%v], got %v", errWant, agg.Errors)
	}
}

func TestWhenAllCancelledWhenNoneFailed(t *testing.T) {
	tasks := []*Task[int]{Completed(1), CancelledTask[int]()}
	all := WhenAll(tasks)
	if !all.IsCancelled() {
		t.Fatalf("expected cancellation, got %v", all.State())
	}
}

func TestWhenAllResultCarriesResultsInOrder(t *testing.T) {
	tasks := []*Task[int]{Completed(10), Completed(20), Completed(30)}
	all := WhenAllResult(tasks)
	if !all.IsSuccessful() {
		t.Fatalf("expected success, got %v", all.State())
	}
	got := all.Result()
	want := []int{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestWhenAllSettledAlwaysSucceeds(t *testing.T) {
	tasks := []*Task[int]{Completed(1), Failed[int](errors.New("x")), CancelledTask[int]()}
	settled := WhenAllSettled(tasks)
	if !settled.IsSuccessful() {
		t.Fatalf("expected WhenAllSettled to always succeed, got %v", settled.State())
	}
	results := settled.Result()
	if len(results) != 3 {
		t.Fatalf("expected 3 settled tasks, got %d", len(results))
	}
	if !results[0].IsSuccessful() || !results[1].IsFaulted() || !results[2].IsCancelled() {
		t.Fatalf("expected settled tasks to preserve individual states, got %v %v %v",
			results[0].State(), results[1].State(), results[2].State())
	}
}

func TestWhenAnySettlesWithFirstSettledTask(t *testing.T) {
	pending := NewCompletionSource[int]()
	already := Completed(99)

	any := WhenAny([]*Task[int]{pending.Task(), already})
	if !any.IsSuccessful() {
		t.Fatalf("expected WhenAny to settle immediately given an already-settled task, got %v", any.State())
	}
	if any.Result() != already {
		t.Fatal("expected WhenAny to settle with the already-completed task")
	}
}

func TestWhenAnyEmptyFails(t *testing.T) {
	any := WhenAny[int](nil)
	if !any.IsFaulted() {
		t.Fatalf("expected empty WhenAny to fail, got %v", any.State())
	}
	if !errors.Is(any.Error(), ErrNoTasksProvided) {
		t.Fatalf("expected ErrNoTasksProvided, got %v", any.Error())
	}
}
