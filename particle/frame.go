package particle

// FrameQueue is a Scheduler which holds the requested callbacks until Run
// is called. Hosts without a native refresh primitive call Run from their
// own timer, tests call it directly.
type FrameQueue struct {
	pending []func()
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Run.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Run invokes the callbacks queued so far. Callbacks requested while
// running are kept for the next call.
func (q *FrameQueue) Run() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
