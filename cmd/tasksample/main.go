// Command tasksample demonstrates composing a handful of Tasks: a
// TaskCompletionSource settled from a goroutine, chained with
// ContinueOnSuccessWith and awaited via WhenAll, plus a delayed Task
// that is waited on separately.
package main

import (
	"fmt"

	asynctask "github.com/joeycumines/go-asynctask"
)

func main() {
	tcs := asynctask.NewCompletionSource[int]()
	go func() {
		tcs.SetResult(21)
	}()

	doubled := asynctask.ContinueOnSuccessWith(tcs.Task(), asynctask.Default, func(v int) (int, error) {
		return v * 2, nil
	})

	delay := asynctask.WithDelay(0.001)

	joined := asynctask.WhenAll([]*asynctask.Task[int]{doubled})
	joined.WaitUntilCompleted()
	delay.WaitUntilCompleted()

	fmt.Printf("doubled result: %d\n", doubled.Result())
}
