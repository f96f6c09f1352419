package taskpool

import (
	"context"
	"time"
)

const (
	// DefaultCapacity is the number of concurrent executions used when
	// Options.Capacity is not set.
	DefaultCapacity = 10

	defaultAttempts     = 3
	defaultInitialRetry = 0 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second

	// submitBufRatio sizes the completion channel relative to capacity
	// so finishing workers rarely block on the scheduler.
	submitBufRatio = 2
)

// Options configure a task Pool.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Capacity is the maximum number of concurrently running
	// executions. Resize changes it at runtime.
	Capacity int

	// DefaultTimeout bounds a single attempt of any task that does not
	// set its own Timeout. Zero disables the check. Timeouts are
	// detected after the attempt completes, never by interruption.
	DefaultTimeout time.Duration

	// Retry is the default per-task retry policy. Task.Retry overrides
	// individual fields.
	Retry RetryPolicy

	// AutoShutdown makes the pool finalize itself once it has run at
	// least one task and becomes fully idle, without an explicit
	// Shutdown call.
	AutoShutdown bool

	// MaxPending caps the queue length. Zero means unbounded; when the
	// cap is reached Execute returns ErrQueueFull.
	MaxPending int

	// Metrics receives queueing and execution activity. Nil selects
	// NoopMetrics.
	Metrics MetricsPolicy

	// Ctx is the pool's base context, used for logger extraction and
	// passed to executor runs. It is not canceled by Shutdown or Kill.
	Ctx context.Context
}

func (o *Options) FillDefaults() {
	if o.Capacity <= 0 {
		o.Capacity = DefaultCapacity
	}
	if o.Retry.Attempts <= 0 {
		o.Retry.Attempts = defaultAttempts
	}
	if o.Retry.Initial < 0 {
		o.Retry.Initial = defaultInitialRetry
	}
	if o.Retry.Max <= 0 {
		o.Retry.Max = defaultMaxRetry
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
