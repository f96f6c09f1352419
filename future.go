package taskpool

import "context"

// Future is the caller's handle on a submitted task's terminal outcome.
//
// A future settles exactly once: with the task's result, or with an
// error once the retry budget is spent (or the task is canceled,
// killed, or rejected). Retried failures never surface here.
type Future[R any] struct {
	id   string
	done chan struct{}
	res  R
	err  error
}

func newFuture[R any](id string) *Future[R] {
	return &Future[R]{id: id, done: make(chan struct{})}
}

// TaskID returns the identity of the submitted task, including a
// pool-assigned one. It is the handle for Cancel.
func (f *Future[R]) TaskID() string { return f.id }

// resolve and reject are called only by the scheduler goroutine, at
// most once per future. Result fields are written before done closes.
func (f *Future[R]) resolve(res R) {
	f.res = res
	close(f.done)
}

func (f *Future[R]) reject(err error) {
	f.err = err
	close(f.done)
}

// Done returns a channel closed when the future settles.
func (f *Future[R]) Done() <-chan struct{} { return f.done }

// Result blocks until the future settles and returns its outcome.
func (f *Future[R]) Result() (R, error) {
	<-f.done
	return f.res, f.err
}

// Wait is Result bounded by ctx.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
