package session

import "sync"

// triggerQueue counts accepted triggers that still need a compilation.
// ready holds at most one wake-up token, so pushes never block.
type triggerQueue struct {
	mu      sync.Mutex
	pending int
	ready   chan struct{}
}

func newTriggerQueue() *triggerQueue {
	return &triggerQueue{ready: make(chan struct{}, 1)}
}

func (q *triggerQueue) push() {
	q.mu.Lock()
	q.pending++
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// take consumes one pending trigger and reports whether there was one.
func (q *triggerQueue) take() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.pending == 0 {
		return false
	}
	q.pending--
	return true
}

// drop discards all pending triggers and returns how many there were.
func (q *triggerQueue) drop() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.pending
	q.pending = 0
	return n
}
