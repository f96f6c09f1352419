package taskpool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/google/uuid"
)

// Pool is a bounded task pool. Submitted tasks queue up while all
// execution slots are busy and are dispatched FIFO to the executor as
// slots free up. Per-task timeout and retry policy are enforced by the
// scheduler; see the package documentation for the exact semantics.
type Pool[T, R any] struct {
	exec Executor[T, R]
	opts Options

	submitCh chan *workItem[T, R]
	compCh   chan completion[T, R]
	cancelCh chan cancelReq
	resizeCh chan int

	stopCh chan struct{} // closed once intake stops
	killCh chan struct{} // closed once the queue is to be discarded
	doneCh chan struct{} // closed once the pool fully terminates

	stopOnce sync.Once
	killOnce sync.Once
	doneOnce sync.Once

	wg sync.WaitGroup // running execution goroutines

	succeeded atomic.Uint64
	failed    atomic.Uint64
	queued    atomic.Int64
	active    atomic.Int32

	// OnTaskError, if set before the first Execute, is invoked for
	// every terminally-rejected task. OnInternalError receives
	// non-task failures inside the pool itself.
	OnTaskError     func(id string, err error)
	OnInternalError func(err error)
}

type cancelReq struct {
	id   string
	resp chan int
}

// New creates a pool running tasks on exec and starts its scheduler.
// Zero-value options are filled with defaults; see Options.
func New[T, R any](exec Executor[T, R], opts Options) (*Pool[T, R], error) {
	if exec == nil {
		return nil, ErrNilExecutor
	}
	opts.FillDefaults()

	p := &Pool[T, R]{
		exec:     exec,
		opts:     opts,
		submitCh: make(chan *workItem[T, R]),
		compCh:   make(chan completion[T, R], opts.Capacity*submitBufRatio),
		cancelCh: make(chan cancelReq),
		resizeCh: make(chan int),
		stopCh:   make(chan struct{}),
		killCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go p.scheduler()
	return p, nil
}

// Execute submits a task and returns its future.
//
// After Shutdown or Kill it fails with ErrPoolInactive and nothing is
// queued. A submission racing with shutdown may instead return a
// future already rejected with ErrPoolInactive. An empty Task.ID is
// replaced with a generated UUID, readable via Future.TaskID.
func (p *Pool[T, R]) Execute(t Task[T]) (*Future[R], error) {
	select {
	case <-p.stopCh:
		return nil, ErrPoolInactive
	default:
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if p.opts.MaxPending > 0 && int(p.queued.Load()) >= p.opts.MaxPending {
		return nil, fmt.Errorf("task %s: %w", t.ID, ErrQueueFull)
	}

	it := &workItem[T, R]{task: t, fut: newFuture[R](t.ID)}
	select {
	case p.submitCh <- it:
		lg.FromContext(p.opts.Ctx).Info("task submitted", lg.String("task_id", t.ID))
		return it.fut, nil
	case <-p.stopCh:
		return nil, ErrPoolInactive
	}
}

// Cancel removes all queued tasks whose ID matches and returns the
// count removed. Their futures settle with ErrTaskCanceled. Already
// dispatched executions are unaffected and still run to completion.
func (p *Pool[T, R]) Cancel(id string) int {
	req := cancelReq{id: id, resp: make(chan int, 1)}
	select {
	case p.cancelCh <- req:
		return <-req.resp
	case <-p.doneCh:
		return 0
	}
}

// Resize changes the capacity bound. The new bound is observed at the
// scheduler's next reconciliation; shrinking never disturbs running
// executions, it only holds back new dispatches.
func (p *Pool[T, R]) Resize(n int) {
	if n <= 0 {
		return
	}
	select {
	case p.resizeCh <- n:
	case <-p.doneCh:
	}
}

// Shutdown stops intake and waits until queued and active work has
// drained, or until ctx expires. Subsequent Execute calls fail with
// ErrPoolInactive. Safe to call more than once.
func (p *Pool[T, R]) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		lg.FromContext(p.opts.Ctx).Info("pool shutting down")
		close(p.stopCh)
	})
	select {
	case <-p.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop is Shutdown without a deadline.
func (p *Pool[T, R]) Stop() { _ = p.Shutdown(context.Background()) }

// Kill stops intake and discards the queue at the next reconciliation;
// abandoned futures settle with ErrPoolKilled. Executions already
// dispatched are not aborted: they run to their own completion or
// failure and are still accounted in the counters. Kill does not wait;
// observe Done for full termination.
func (p *Pool[T, R]) Kill() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.killOnce.Do(func() {
		lg.FromContext(p.opts.Ctx).Info("pool killed")
		close(p.killCh)
	})
}

// Done returns a channel closed once the pool has fully terminated:
// intake stopped, queue empty, and no active executions.
func (p *Pool[T, R]) Done() <-chan struct{} { return p.doneCh }

// SuccessCount reports tasks whose future resolved.
func (p *Pool[T, R]) SuccessCount() uint64 { return p.succeeded.Load() }

// ErrorCount reports tasks rejected after exhausting their retry
// budget. Retried failures and kill/cancel abandonments not included.
func (p *Pool[T, R]) ErrorCount() uint64 { return p.failed.Load() }

// ActiveWorkers reports the number of currently running executions.
func (p *Pool[T, R]) ActiveWorkers() int32 { return p.active.Load() }

// QueueLength reports the number of tasks waiting for a slot.
func (p *Pool[T, R]) QueueLength() int { return int(p.queued.Load()) }
