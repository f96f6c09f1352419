package taskpool

import (
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
)

// Task is a single unit of work submitted to the pool.
//
// ID is the task's identity, used for cancellation matching. An empty
// ID is replaced with a generated UUID at submit time. Payload is
// handed to the executor unchanged.
type Task[T any] struct {
	ID      string
	Payload T

	// Timeout bounds one attempt. Zero means "use the pool default";
	// a zero pool default disables the check entirely.
	Timeout time.Duration

	// Retry overrides the pool's default retry policy. Non-zero fields
	// of the pointed-to policy take effect, zero fields keep defaults.
	Retry *RetryPolicy
}

// backoffSource yields successive retry delays.
type backoffSource interface {
	Next() time.Duration
}

// workItem is a Task bound to its pool-side bookkeeping: the attempt
// counter, the pending backoff delay for the next attempt, and the
// caller's future. A workItem lives in exactly one place at a time:
// the queue, the active set, or nowhere once its future settles.
type workItem[T, R any] struct {
	task Task[T]
	fut  *Future[R]

	// attempt is the number of failed tries so far. Only grows.
	attempt int

	// delay is slept by the worker before re-running a retried item.
	delay time.Duration

	// startedAt is set when the item is dispatched to a worker.
	startedAt time.Time

	bo backoffSource
}

// timeout resolves the effective per-attempt limit for this item.
func (it *workItem[T, R]) timeout(def time.Duration) time.Duration {
	if it.task.Timeout > 0 {
		return it.task.Timeout
	}
	return def
}

// nextDelay advances the item's backoff sequence. Items without a
// configured initial delay are retried immediately.
func (it *workItem[T, R]) nextDelay(pol RetryPolicy) time.Duration {
	if pol.Initial <= 0 {
		return 0
	}
	if it.bo == nil {
		it.bo = boff.New(pol.Initial, pol.Max, time.Now().UnixNano())
	}
	return it.bo.Next()
}

// completion is the result of one attempt, delivered by the worker
// goroutine back into the scheduler's serialized command stream.
type completion[T, R any] struct {
	it      *workItem[T, R]
	res     R
	err     error
	elapsed time.Duration
}
