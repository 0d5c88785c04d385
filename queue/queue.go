// Package queue implements a fixed-capacity FIFO queue of vertex indices
// over a circular buffer. Enqueue and Dequeue never reallocate; a full
// queue rejects insertion and an empty queue rejects extraction, both via
// the shared graphward error kinds.
package queue

import (
	"fmt"

	"github.com/graphward/graphward"
)

// Queue is a bounded FIFO over a ring buffer. The zero value is not
// usable; construct with New.
type Queue struct {
	data  []int
	front int
	count int
}

// New constructs a Queue holding at most capacity values.
// Returns graphward.ErrInvalidArgument if capacity <= 0.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: queue capacity must be positive, got %d",
			graphward.ErrInvalidArgument, capacity)
	}

	return &Queue{data: make([]int, capacity)}, nil
}

// Enqueue appends v at the rear.
// Returns graphward.ErrCapacityExceeded when the queue is full.
// Complexity: O(1).
func (q *Queue) Enqueue(v int) error {
	if q.count == len(q.data) {
		return fmt.Errorf("%w: queue is full (capacity %d)",
			graphward.ErrCapacityExceeded, len(q.data))
	}
	q.data[(q.front+q.count)%len(q.data)] = v
	q.count++

	return nil
}

// Dequeue removes and returns the front value, strictly FIFO.
// Returns graphward.ErrEmptyCollection when the queue is empty.
// Complexity: O(1).
func (q *Queue) Dequeue() (int, error) {
	if q.count == 0 {
		return 0, fmt.Errorf("%w: queue is empty", graphward.ErrEmptyCollection)
	}
	v := q.data[q.front]
	q.front = (q.front + 1) % len(q.data)
	q.count--

	return v, nil
}

// Empty reports whether the queue holds no values.
func (q *Queue) Empty() bool { return q.count == 0 }

// Len reports the number of values currently queued.
func (q *Queue) Len() int { return q.count }
