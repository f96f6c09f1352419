package taskpool

// taskQueue is the ordered holding area for not-yet-dispatched work.
//
// It is owned exclusively by the scheduler goroutine and is not safe
// for concurrent use. FIFO for fresh submissions; retried items are
// re-inserted at the front so they are attempted again before anything
// submitted after their failure.
type taskQueue[T, R any] struct {
	items []*workItem[T, R]
}

func newTaskQueue[T, R any]() *taskQueue[T, R] {
	return &taskQueue[T, R]{}
}

func (q *taskQueue[T, R]) len() int { return len(q.items) }

// push appends an item at the back.
func (q *taskQueue[T, R]) push(it *workItem[T, R]) {
	q.items = append(q.items, it)
}

// pushFront prepends an item. Used only for retry re-dispatch.
func (q *taskQueue[T, R]) pushFront(it *workItem[T, R]) {
	q.items = append(q.items, nil)
	copy(q.items[1:], q.items)
	q.items[0] = it
}

// pop removes and returns the front item, or false when empty.
func (q *taskQueue[T, R]) pop() (*workItem[T, R], bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	it := q.items[0]
	q.items[0] = nil // release the reference
	q.items = q.items[1:]
	return it, true
}

// remove deletes all queued items whose task ID matches and returns
// them. Dispatched items are out of reach here: cancellation is
// queue-only.
func (q *taskQueue[T, R]) remove(id string) []*workItem[T, R] {
	var removed []*workItem[T, R]
	kept := q.items[:0]
	for _, it := range q.items {
		if it.task.ID == id {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
	return removed
}

// drain empties the queue and returns everything that was pending.
func (q *taskQueue[T, R]) drain() []*workItem[T, R] {
	items := q.items
	q.items = nil
	return items
}
