package taskpool_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	tp "github.com/Andrej220/go-utils/taskpool"
)

// echoExec returns the payload unchanged.
func echoExec() tp.ExecutorFunc[int, int] {
	return func(_ context.Context, _ string, v int) (int, error) {
		return v, nil
	}
}

// blockingExec holds every run until release is closed.
func blockingExec(release <-chan struct{}) tp.ExecutorFunc[int, int] {
	return func(_ context.Context, _ string, v int) (int, error) {
		<-release
		return v, nil
	}
}

func newTestPool(t *testing.T, exec tp.ExecutorFunc[int, int], opts tp.Options) *tp.Pool[int, int] {
	t.Helper()

	p, err := tp.New[int, int](exec, opts)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	return p
}

func awaitResult(t *testing.T, fut *tp.Future[int], timeout time.Duration) (int, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := fut.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("future did not settle in time")
	}
	return res, err
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}
