package taskpool

import "errors"

var (
	// ErrPoolInactive is returned by Execute once intake has stopped,
	// either after Shutdown/Kill or after an auto-shutdown.
	ErrPoolInactive = errors.New("taskpool: pool is not accepting tasks")

	// ErrPoolKilled settles the futures of queued tasks discarded by Kill.
	ErrPoolKilled = errors.New("taskpool: pool killed")

	// ErrTaskCanceled settles the future of a queued task removed by Cancel.
	ErrTaskCanceled = errors.New("taskpool: task canceled")

	// ErrRetriesExhausted wraps the last execution failure once the
	// task's attempt budget is spent. The underlying failure remains
	// reachable through errors.Is / errors.As.
	ErrRetriesExhausted = errors.New("taskpool: retries exhausted")

	// ErrTaskTimeout marks an attempt whose elapsed time exceeded the
	// configured limit. Detection is post-hoc: the attempt always runs
	// to its natural completion first.
	ErrTaskTimeout = errors.New("taskpool: task exceeded timeout")

	// ErrTaskPanic marks an attempt that panicked inside the executor.
	ErrTaskPanic = errors.New("taskpool: task panicked")

	// ErrQueueFull is returned by Execute when MaxPending is set and the
	// queue is at its limit.
	ErrQueueFull = errors.New("taskpool: queue is full")

	// ErrNilExecutor is returned by New when no executor is supplied.
	ErrNilExecutor = errors.New("taskpool: executor is nil")
)
