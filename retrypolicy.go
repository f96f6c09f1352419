package taskpool

import (
	"time"
)

// RetryPolicy describes how many times and how often a task should be tried.
// Zero values are treated as "use pool defaults".
type RetryPolicy struct {
	// Attempts is the maximum total number of tries for a task,
	// including the first one. A task submitted with Attempts = n is
	// run at most n times before its future is rejected.
	Attempts int

	// Initial is the first backoff delay applied before a re-attempt.
	// Zero means retries are re-dispatched immediately.
	Initial time.Duration

	// Max is the cap for the backoff delay.
	Max time.Duration
}

// GetDefaultRP returns a pointer to the default retry policy used by the pool.
// Useful in tests or when constructing a pool with the same defaults.
func GetDefaultRP() *RetryPolicy {
	rp := RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
	return &rp
}

// merge overlays non-zero fields of an override onto a base policy.
func (pol RetryPolicy) merge(override *RetryPolicy) RetryPolicy {
	if override == nil {
		return pol
	}
	if override.Attempts > 0 {
		pol.Attempts = override.Attempts
	}
	if override.Initial > 0 {
		pol.Initial = override.Initial
	}
	if override.Max > 0 {
		pol.Max = override.Max
	}
	return pol
}
