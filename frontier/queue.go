// Package frontier - slice-backed FIFO container.
package frontier

// queueCompactMin is the minimum number of drained slots before Pop
// compacts the backing slice. Below this, copying costs more than the
// memory it reclaims.
const queueCompactMin = 32

// Queue is a first-in, first-out Frontier backed by a growable slice
// with a moving head index. Drained slots are reclaimed in bulk once
// they dominate the backing array, keeping Pop amortized O(1) without
// per-call reallocation.
// The zero value is an empty queue ready to use; NewQueue reads better
// at call sites.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty FIFO frontier.
//
// Complexity: O(1).
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: nil, head: 0}
}

// Push appends item to the back of the queue.
//
// Complexity: amortized O(1).
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the oldest item in the queue.
// Returns ErrEmpty when the queue holds no items.
//
// Complexity: amortized O(1).
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.head == len(q.items) {
		return zero, ErrEmpty
	}
	item := q.items[q.head]
	q.items[q.head] = zero // release the slot for the GC
	q.head++

	// Compact once the drained prefix outweighs the live suffix.
	if q.head >= queueCompactMin && q.head > len(q.items)-q.head {
		n := copy(q.items, q.items[q.head:])
		clearTail(q.items, n)
		q.items = q.items[:n]
		q.head = 0
	}

	return item, nil
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.head == len(q.items) }

// Len returns the number of items waiting in the queue.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// clearTail zeroes items[n:] so compaction does not pin stale references.
func clearTail[T any](items []T, n int) {
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
}
