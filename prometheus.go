package taskpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromMetrics is a MetricsPolicy implementation backed by Prometheus
// collectors. Collectors are registered on the given Registerer at
// construction time, so multiple pools need distinct namespaces.
type PromMetrics struct {
	succeeded  prometheus.Counter
	failed     prometheus.Counter
	retried    prometheus.Counter
	canceled   prometheus.Counter
	queued     prometheus.Gauge
	active     prometheus.Gauge
	attemptDur prometheus.Histogram
}

// NewPromMetrics builds and registers the pool's collectors.
// namespace prefixes every metric name; it must be unique per pool
// within one registry.
func NewPromMetrics(namespace string, reg prometheus.Registerer) *PromMetrics {
	m := &PromMetrics{
		succeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_succeeded_total",
			Help:      "Total number of tasks whose future resolved.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_failed_total",
			Help:      "Total number of tasks rejected after exhausting their retry budget.",
		}),
		retried: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_retries_total",
			Help:      "Total number of failed attempts requeued for retry.",
		}),
		canceled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_canceled_total",
			Help:      "Total number of queued tasks removed by Cancel or discarded by Kill.",
		}),
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks_queued",
			Help:      "Number of tasks currently waiting for a free execution slot.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks_active",
			Help:      "Number of currently running executions.",
		}),
		attemptDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_attempt_seconds",
			Help:      "Wall time of a single task attempt, in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.succeeded,
		m.failed,
		m.retried,
		m.canceled,
		m.queued,
		m.active,
		m.attemptDur,
	)
	return m
}

func (m *PromMetrics) IncSucceeded()  { m.succeeded.Inc() }
func (m *PromMetrics) IncFailed()     { m.failed.Inc() }
func (m *PromMetrics) IncRetried()    { m.retried.Inc() }
func (m *PromMetrics) IncCanceled()   { m.canceled.Inc() }
func (m *PromMetrics) SetQueued(n int) { m.queued.Set(float64(n)) }
func (m *PromMetrics) SetActive(n int) { m.active.Set(float64(n)) }

func (m *PromMetrics) ObserveAttempt(d time.Duration) {
	m.attemptDur.Observe(d.Seconds())
}
