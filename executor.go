package taskpool

import (
	"context"
	"fmt"
)

// Executor runs a task in an isolated concurrent context and reports
// its outcome exactly once. The pool launches one goroutine per
// dispatched task and tears it down after the result is delivered,
// regardless of outcome; implementations only need to be safe for
// concurrent Run calls.
//
// Run must respect the post-hoc timeout model: the pool never
// interrupts a running attempt, it measures elapsed time after Run
// returns. ctx is the pool's base context, passed through for the
// executor's own plumbing (loggers, clients); it is not canceled by
// Kill or Shutdown.
type Executor[T, R any] interface {
	Run(ctx context.Context, id string, payload T) (R, error)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc[T, R any] func(ctx context.Context, id string, payload T) (R, error)

func (f ExecutorFunc[T, R]) Run(ctx context.Context, id string, payload T) (R, error) {
	return f(ctx, id, payload)
}

// runTask invokes the executor with panic recovery, so a panicking
// task settles its future instead of killing the worker goroutine.
func (p *Pool[T, R]) runTask(it *workItem[T, R]) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()
	return p.exec.Run(p.opts.Ctx, it.task.ID, it.task.Payload)
}
