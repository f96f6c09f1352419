// Package taskpool provides a bounded task pool with futures,
// identity-based cancellation, retry budgets, and post-hoc timeout
// detection.
//
// Architecture overview
//
// The pool is composed of three loosely coupled layers:
//
//   1. Queueing (taskQueue)
//      An ordered holding area for not-yet-dispatched work. Fresh
//      submissions append at the back; retried items re-enter at the
//      front so they run again before anything submitted after their
//      failure.
//
//   2. Scheduling (scheduler goroutine)
//      A single logical owner of all mutable pool state. It blocks
//      until woken by a submit, completion, cancel, resize, or
//      lifecycle signal, then reconciles: while the active count is
//      below capacity, it pops the queue front and starts an
//      execution. No mutex guards the queue or flags; all mutation is
//      serialized through the owner's command stream.
//
//   3. Execution (Executor collaborator)
//      Each dispatched task runs in its own goroutine against the
//      user-supplied Executor and reports success or failure exactly
//      once. Up to capacity executions run in parallel; the scheduler
//      never blocks on a result.
//
// Task lifecycle
//
// A task is born on Execute, waits in the queue, is dispatched into an
// execution when a slot frees, and ends terminal: its future resolves
// with the result, or rejects once the retry budget is spent. A failed
// attempt with budget remaining is requeued at the front and never
// surfaces to the caller.
//
// Timeouts are detection-only. An attempt always runs to its natural
// completion or failure; only then is elapsed time compared against
// the limit, and an overrun outcome (even a success) is converted to a
// timeout failure before retry routing. A slow task is never
// interrupted mid-flight.
//
// Shutdown modes
//
// Shutdown stops intake and lets queued and active work drain.
// Kill stops intake and discards the queue: abandoned futures settle
// with ErrPoolKilled, while already-dispatched executions still run
// out and are counted. Resize changes the capacity bound at the next
// reconciliation without disturbing running executions.
//
// Metrics
//
// Activity is reported through the MetricsPolicy interface. Atomic
// counters (AtomicMetrics), a no-op sink (NoopMetrics), and a
// Prometheus-backed implementation (PromMetrics) are provided.
package taskpool
