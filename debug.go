package asynctask

import (
	"runtime"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

// captureCreationStack records the calling goroutine's stack, for later
// use by Task[T].CreationStackTrace. Grounded on
// eventloop/promise.go's ChainedPromise.creationStack/formatCreationStack,
// gated the same way (only active in debug mode) since capturing a full
// stack on every Task allocation is not free.
func captureCreationStack() []uintptr {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

// CreationStackTrace returns a formatted stack trace captured when the
// Task was created, if WithDebugMode was enabled via Configure at the
// time. Returns an empty string otherwise.
func (t *Task[T]) CreationStackTrace() string {
	t.core.mu.Lock()
	pcs := t.core.creationStack
	t.core.mu.Unlock()
	if len(pcs) == 0 {
		return ``
	}
	frames := runtime.CallersFrames(pcs)
	var out []byte
	for {
		frame, more := frames.Next()
		out = append(out, frame.Function...)
		out = append(out, '\n')
		out = append(out, '\t')
		out = appendInt(out, frame.Line)
		out = append(out, '\n')
		if !more {
			break
		}
	}
	return string(out)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[i:]...)
}

// DebugJSON renders a debug-only JSON snapshot of the Task's state and,
// if it has one, its error message, string-encoded with jsonenc (the
// same encoder stumpy uses internally). The result is not included.
func (t *Task[T]) DebugJSON() string {
	state, _, err := t.core.snapshot()

	var buf []byte
	buf = append(buf, '{')

	buf = append(buf, `"state":"`...)
	buf = append(buf, state.String()...)
	buf = append(buf, '"')

	if err != nil {
		buf = append(buf, `,"error":`...)
		buf = jsonenc.AppendString(buf, err.Error())
	}

	buf = append(buf, '}')
	return string(buf)
}
