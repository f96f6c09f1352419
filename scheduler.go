package taskpool

import (
	"fmt"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
)

// scheduler is the single logical owner of all pool state: the queue,
// the active count, the capacity bound, and the accepting/draining
// flags. Every mutation enters through its serialized command stream,
// which preserves the atomicity of "check capacity, then dispatch" and
// "decrement budget, then requeue". The loop is event-driven: it
// blocks until woken by a submit, a completion, a cancel, a resize, or
// a lifecycle signal, then reconciles once.
//
// The scheduler never blocks on a task's result. Executions run in
// their own goroutines and deliver completions back over compCh.
func (p *Pool[T, R]) scheduler() {
	defer func() {
		if r := recover(); r != nil {
			p.reportInternalError(fmt.Errorf("taskpool: scheduler panic: %v", r))
			p.finalize()
		}
	}()

	q := newTaskQueue[T, R]()
	capacity := p.opts.Capacity
	activeN := 0
	accepting := true
	draining := false
	submitted := false

	// Lifecycle channels are nil-ed out once observed so a closed
	// channel does not spin the select.
	stop := p.stopCh
	kill := p.killCh

	for {
		// Reconcile: fill free slots from the queue front.
		for activeN < capacity {
			it, ok := q.pop()
			if !ok {
				break
			}
			activeN++
			p.setActive(activeN)
			p.setQueued(q.len())
			p.startExecution(it)
		}

		if draining {
			p.discard(q)
		}

		if !accepting && q.len() == 0 && activeN == 0 {
			p.finalize()
			return
		}

		if p.opts.AutoShutdown && accepting && submitted && q.len() == 0 && activeN == 0 {
			p.stopOnce.Do(func() { close(p.stopCh) })
			p.finalize()
			return
		}

		select {
		case it := <-p.submitCh:
			if !accepting {
				it.fut.reject(fmt.Errorf("task %s: %w", it.task.ID, ErrPoolInactive))
				continue
			}
			submitted = true
			q.push(it)
			p.setQueued(q.len())

		case c := <-p.compCh:
			activeN--
			p.setActive(activeN)
			p.finish(q, c, draining)
			p.setQueued(q.len())

		case req := <-p.cancelCh:
			removed := q.remove(req.id)
			for _, it := range removed {
				p.opts.Metrics.IncCanceled()
				it.fut.reject(fmt.Errorf("task %s: %w", it.task.ID, ErrTaskCanceled))
			}
			p.setQueued(q.len())
			req.resp <- len(removed)

		case n := <-p.resizeCh:
			if n > 0 {
				capacity = n
			}

		case <-stop:
			accepting = false
			stop = nil

		case <-kill:
			accepting = false
			draining = true
			kill = nil
		}
	}
}

// startExecution binds a work item to a fresh execution goroutine.
// A retried item first sleeps its backoff delay; the attempt clock
// starts only after the delay.
func (p *Pool[T, R]) startExecution(it *workItem[T, R]) {
	it.startedAt = time.Now()
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if it.delay > 0 {
			timer := time.NewTimer(it.delay)
			select {
			case <-timer.C:
			case <-p.opts.Ctx.Done():
				timer.Stop()
			}
		}
		start := time.Now()
		res, err := p.runTask(it)
		p.compCh <- completion[T, R]{it: it, res: res, err: err, elapsed: time.Since(start)}
	}()
}

// finish routes one attempt's outcome: timeout conversion first, then
// resolve, requeue, or terminal rejection.
func (p *Pool[T, R]) finish(q *taskQueue[T, R], c completion[T, R], draining bool) {
	it := c.it
	err := c.err
	logger := lg.FromContext(p.opts.Ctx)
	p.opts.Metrics.ObserveAttempt(c.elapsed)

	// Post-hoc timeout detection: the attempt already ran to natural
	// completion; a late success is still a timeout failure.
	if limit := it.timeout(p.opts.DefaultTimeout); limit > 0 && c.elapsed > limit {
		err = fmt.Errorf("%w: ran %s, limit %s", ErrTaskTimeout, c.elapsed.Round(time.Millisecond), limit)
	}

	if err == nil {
		p.succeeded.Add(1)
		p.opts.Metrics.IncSucceeded()
		logger.Info("task finished",
			lg.String("task_id", it.task.ID),
			lg.String("took", time.Since(it.startedAt).String()),
		)
		it.fut.resolve(c.res)
		return
	}

	pol := p.opts.Retry.merge(it.task.Retry)
	if !draining && it.attempt+1 < pol.Attempts {
		it.attempt++
		it.delay = it.nextDelay(pol)
		q.pushFront(it)
		p.opts.Metrics.IncRetried()
		logger.Warn("task attempt failed; requeued",
			lg.String("task_id", it.task.ID),
			lg.Int("attempt", it.attempt),
			lg.Any("error", err),
		)
		return
	}

	p.failed.Add(1)
	p.opts.Metrics.IncFailed()
	terminal := fmt.Errorf("task %s: %w after %d attempts: %w", it.task.ID, ErrRetriesExhausted, it.attempt+1, err)
	if draining && it.attempt+1 < pol.Attempts {
		// Budget was left, but a killed pool never requeues.
		terminal = fmt.Errorf("task %s: %w: %w", it.task.ID, ErrPoolKilled, err)
	}
	logger.Error("task failed",
		lg.String("task_id", it.task.ID),
		lg.Int("attempts", it.attempt+1),
		lg.Any("error", err),
	)
	p.reportTaskError(it.task.ID, terminal)
	it.fut.reject(terminal)
}

// discard empties the queue after a kill. Abandoned items are rejected
// with ErrPoolKilled rather than left unsettled; they do not touch the
// success or error counters.
func (p *Pool[T, R]) discard(q *taskQueue[T, R]) {
	items := q.drain()
	if len(items) == 0 {
		return
	}
	for _, it := range items {
		p.opts.Metrics.IncCanceled()
		it.fut.reject(fmt.Errorf("task %s: %w", it.task.ID, ErrPoolKilled))
	}
	p.setQueued(0)
	lg.FromContext(p.opts.Ctx).Info("queue discarded", lg.Int("abandoned", len(items)))
}

func (p *Pool[T, R]) setQueued(n int) {
	p.queued.Store(int64(n))
	p.opts.Metrics.SetQueued(n)
}

func (p *Pool[T, R]) setActive(n int) {
	p.active.Store(int32(n))
	p.opts.Metrics.SetActive(n)
}

// finalize waits out any straggling execution goroutines and marks the
// pool fully terminated.
func (p *Pool[T, R]) finalize() {
	p.doneOnce.Do(func() {
		p.wg.Wait()
		close(p.doneCh)
	})
}
