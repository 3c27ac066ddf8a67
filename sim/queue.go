// Implements the ProcessQueue, the bounded FIFO used for the ready, auxiliary
// and I/O queues. Priority between queues belongs to the dispatch policy.

package sim

import (
	"fmt"
	"strings"
)

// ProcessQueue is a bounded FIFO of process IDs, ordered by insertion.
type ProcessQueue struct {
	name     string
	capacity int
	queue    []ProcessID
}

// NewProcessQueue creates an empty queue holding at most capacity entries.
func NewProcessQueue(name string, capacity int) *ProcessQueue {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewProcessQueue: capacity must be positive, got %d", capacity))
	}
	return &ProcessQueue{
		name:     name,
		capacity: capacity,
		queue:    make([]ProcessID, 0, capacity),
	}
}

// Enqueue adds a process to the back of the queue.
func (pq *ProcessQueue) Enqueue(id ProcessID) error {
	if len(pq.queue) >= pq.capacity {
		return fmt.Errorf("%s: enqueue %d at capacity %d: %w", pq.name, id, pq.capacity, ErrQueueOverflow)
	}
	pq.queue = append(pq.queue, id)
	return nil
}

// Dequeue removes and returns the process at the front of the queue.
func (pq *ProcessQueue) Dequeue() (ProcessID, error) {
	return pq.RemoveAt(0)
}

// RemoveAt removes and returns the entry at position i, preserving the
// relative order of the rest.
func (pq *ProcessQueue) RemoveAt(i int) (ProcessID, error) {
	if len(pq.queue) == 0 {
		return 0, fmt.Errorf("%s: %w", pq.name, ErrQueueUnderflow)
	}
	if i < 0 || i >= len(pq.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range for %s (len %d)", i, pq.name, len(pq.queue)))
	}
	id := pq.queue[i]
	pq.queue = append(pq.queue[:i], pq.queue[i+1:]...)
	return id, nil
}

// Peek returns the front entry without removing it.
func (pq *ProcessQueue) Peek() (ProcessID, bool) {
	if len(pq.queue) == 0 {
		return 0, false
	}
	return pq.queue[0], true
}

// Len returns the number of queued processes.
func (pq *ProcessQueue) Len() int {
	return len(pq.queue)
}

// Cap returns the queue capacity.
func (pq *ProcessQueue) Cap() int {
	return pq.capacity
}

// Name returns the queue's label.
func (pq *ProcessQueue) Name() string {
	return pq.name
}

// Items returns the queue contents in FIFO order.
// The returned slice is the queue's internal storage -- callers
// MUST NOT append to or reslice it.
func (pq *ProcessQueue) Items() []ProcessID {
	return pq.queue
}

func (pq *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range pq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
