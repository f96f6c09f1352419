package taskpool

// reportTaskError reports a terminal task failure.
//
// Terminal failures are exhausted-budget rejections; recovered
// (retried) failures are not reported. If no handler is registered,
// the error is silently ignored.
func (p *Pool[T, R]) reportTaskError(id string, err error) {
	if p.OnTaskError != nil {
		p.OnTaskError(id, err)
	}
}

// reportInternalError reports a non-task failure inside the pool
// itself, such as an unexpected runtime condition. No task error is
// ever fatal to the pool.
func (p *Pool[T, R]) reportInternalError(err error) {
	if p.OnInternalError != nil {
		p.OnInternalError(err)
	}
}
