package asynctask

import catrate "github.com/joeycumines/go-catrate"

// schedulerConfig holds the resolved configuration for the package-level
// background scheduler backing the Default executor.
type schedulerConfig struct {
	workers           int
	rateLimiter       *catrate.Limiter
	rateLimitCategory any
	debugMode         bool
	recursionMax      int
}

// SchedulerOption configures the background scheduler, via Configure.
// Mirrors eventloop's LoopOption functional-options pattern.
type SchedulerOption interface {
	applyScheduler(c *schedulerConfig)
}

type schedulerOptionFunc func(c *schedulerConfig)

func (f schedulerOptionFunc) applyScheduler(c *schedulerConfig) { f(c) }

// WithWorkers sets the number of background worker goroutines used by
// the Default executor, once the per-goroutine recursion bound is exceeded.
// Non-positive values are ignored.
func WithWorkers(n int) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		if n > 0 {
			c.workers = n
		}
	})
}

// WithRateLimit gates background dispatch through limiter, using the
// provided category for every closure submitted to the Default
// executor's background path. A nil limiter disables admission control (the
// default).
func WithRateLimit(limiter *catrate.Limiter, category any) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		if limiter != nil {
			c.rateLimiter = limiter
			c.rateLimitCategory = category
		}
	})
}

// WithDebugMode enables creation-stack capture (Task[T].CreationStackTrace)
// for every Task created through NewCompletionSource (which the
// continuations and combinators also use) while enabled. Tasks made by
// Completed, Failed or CancelledTask capture no stack. Off by default,
// since capturing a stack trace on every Task allocation is not free.
func WithDebugMode(enabled bool) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		c.debugMode = enabled
	})
}

// WithMaxRecursionDepth overrides the per-goroutine synchronous
// recursion bound the Default executor uses before falling back to the
// background worker pool. Non-positive values are ignored.
func WithMaxRecursionDepth(n int) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		if n > 0 {
			c.recursionMax = n
		}
	})
}

func resolveSchedulerOptions(opts []SchedulerOption) *schedulerConfig {
	c := &schedulerConfig{
		workers:      defaultWorkerCount,
		recursionMax: defaultRecursionMax,
	}
	for _, o := range opts {
		if o != nil {
			o.applyScheduler(c)
		}
	}
	return c
}
