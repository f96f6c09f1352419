package taskpool

import (
	"sync/atomic"
	"time"
)

// MetricsPolicy defines hooks used by the pool to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncSucceeded increments the terminally-resolved tasks counter.
	IncSucceeded()

	// IncFailed increments the terminally-rejected tasks counter.
	// Retried failures are not counted here.
	IncFailed()

	// IncRetried increments the requeued-attempts counter.
	IncRetried()

	// IncCanceled counts tasks removed from the queue by Cancel or Kill.
	IncCanceled()

	// SetQueued records the current queue length.
	SetQueued(n int)

	// SetActive records the current number of running executions.
	SetActive(n int)

	// ObserveAttempt records the elapsed wall time of one attempt.
	ObserveAttempt(d time.Duration)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	succeeded atomic.Uint64
	failed    atomic.Uint64
	retried   atomic.Uint64
	canceled  atomic.Uint64
	queued    atomic.Int64
	active    atomic.Int64
}

// Succeeded returns the total number of terminally-resolved tasks.
func (m *AtomicMetrics) Succeeded() uint64 { return m.succeeded.Load() }

// Failed returns the total number of terminally-rejected tasks.
func (m *AtomicMetrics) Failed() uint64 { return m.failed.Load() }

// Retried returns the total number of requeued attempts.
func (m *AtomicMetrics) Retried() uint64 { return m.retried.Load() }

// Canceled returns the total number of canceled or discarded tasks.
func (m *AtomicMetrics) Canceled() uint64 { return m.canceled.Load() }

// Queued returns the current queue length.
func (m *AtomicMetrics) Queued() int64 { return m.queued.Load() }

// Active returns the current number of running executions.
func (m *AtomicMetrics) Active() int64 { return m.active.Load() }

func (m *AtomicMetrics) IncSucceeded()                  { m.succeeded.Add(1) }
func (m *AtomicMetrics) IncFailed()                     { m.failed.Add(1) }
func (m *AtomicMetrics) IncRetried()                    { m.retried.Add(1) }
func (m *AtomicMetrics) IncCanceled()                   { m.canceled.Add(1) }
func (m *AtomicMetrics) SetQueued(n int)                { m.queued.Store(int64(n)) }
func (m *AtomicMetrics) SetActive(n int)                { m.active.Store(int64(n)) }
func (m *AtomicMetrics) ObserveAttempt(_ time.Duration) {}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSucceeded()                  {}
func (m *NoopMetrics) IncFailed()                     {}
func (m *NoopMetrics) IncRetried()                    {}
func (m *NoopMetrics) IncCanceled()                   {}
func (m *NoopMetrics) SetQueued(n int)                {}
func (m *NoopMetrics) SetActive(n int)                {}
func (m *NoopMetrics) ObserveAttempt(_ time.Duration) {}
