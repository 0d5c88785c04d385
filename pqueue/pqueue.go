// Package pqueue implements a fixed-capacity binary min-heap keyed by an
// explicit priority. It deliberately supports the "lazy decrease-key"
// discipline used by Dijkstra and Prim: relaxing a vertex reinserts it
// with its improved priority instead of updating the old entry in place,
// so ExtractMin may surface stale entries the caller is expected to skip
// via its own visited/inMST bookkeeping.
//
// The heap is array-backed and never reallocates. Sift-up and sift-down
// compare priorities with strict less-than, so ties keep no particular
// order (the heap is not stable).
package pqueue

import (
	"fmt"

	"github.com/graphward/graphward"
)

// element is one heap slot: a caller value ordered by priority.
type element struct {
	value    int
	priority int64
}

// Queue is a bounded min-heap of (value, priority) pairs. Duplicate
// values with different priorities may coexist. The zero value is not
// usable; construct with New.
type Queue struct {
	heap []element
	size int
}

// New constructs a Queue holding at most capacity elements.
// Returns graphward.ErrInvalidArgument if capacity <= 0.
func New(capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: priority queue capacity must be positive, got %d",
			graphward.ErrInvalidArgument, capacity)
	}

	return &Queue{heap: make([]element, capacity)}, nil
}

// Insert adds value with the given priority, appending at the end and
// sifting up while strictly smaller than its parent.
// Returns graphward.ErrCapacityExceeded when the heap is full.
// Complexity: O(log n).
func (q *Queue) Insert(value int, priority int64) error {
	if q.size == len(q.heap) {
		return fmt.Errorf("%w: priority queue is full (capacity %d)",
			graphward.ErrCapacityExceeded, len(q.heap))
	}
	q.heap[q.size] = element{value: value, priority: priority}
	q.siftUp(q.size)
	q.size++

	return nil
}

// ExtractMin removes and returns the value with the minimum priority.
// The last element replaces the root and sifts down toward the smaller
// child while that child is strictly smaller.
// Returns graphward.ErrEmptyCollection when the heap is empty.
// Complexity: O(log n).
func (q *Queue) ExtractMin() (int, error) {
	if q.size == 0 {
		return 0, fmt.Errorf("%w: priority queue is empty", graphward.ErrEmptyCollection)
	}
	min := q.heap[0].value
	q.size--
	q.heap[0] = q.heap[q.size]
	q.siftDown(0)

	return min, nil
}

// Empty reports whether the heap holds no elements.
func (q *Queue) Empty() bool { return q.size == 0 }

// Len reports the number of elements currently stored.
func (q *Queue) Len() int { return q.size }

// siftUp restores the heap order above slot i after insertion.
func (q *Queue) siftUp(i int) {
	for i > 0 && q.heap[i].priority < q.heap[(i-1)/2].priority {
		q.heap[i], q.heap[(i-1)/2] = q.heap[(i-1)/2], q.heap[i]
		i = (i - 1) / 2
	}
}

// siftDown restores the heap order below slot i after extraction.
func (q *Queue) siftDown(i int) {
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < q.size && q.heap[left].priority < q.heap[smallest].priority {
			smallest = left
		}
		if right < q.size && q.heap[right].priority < q.heap[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.heap[i], q.heap[smallest] = q.heap[smallest], q.heap[i]
		i = smallest
	}
}
