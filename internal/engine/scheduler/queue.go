package scheduler

import (
	"sync"

	"github.com/edwingeng/deque"
)

// LogQueue buffers unit log lines for the reporter.
// Any number of producers, one consumer.
type LogQueue struct {
	mu    sync.Mutex
	items deque.Deque
}

// NewLogQueue returns an empty queue.
func NewLogQueue() *LogQueue {
	return &LogQueue{items: deque.NewDeque()}
}

// Push appends msg.
func (q *LogQueue) Push(msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items.PushBack(msg)
}

// Drain removes and returns every queued message in arrival order.
func (q *LogQueue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Empty() {
		return nil
	}

	out := make([]string, 0, q.items.Len())
	for !q.items.Empty() {
		out = append(out, q.items.Front().(string))
		q.items.PopFront()
	}
	return out
}
