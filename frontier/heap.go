// Package frontier - binary-heap priority container.
package frontier

import "container/heap"

// Heap is a priority Frontier: Pop returns the least item under the
// ordering supplied at construction. Ties are broken arbitrarily, so
// callers needing stable tie-breaks must encode them in the ordering.
// The zero value is NOT ready to use; call NewHeap.
type Heap[T any] struct {
	inner ordered[T]
}

// NewHeap returns an empty priority frontier ordered by less.
// Panics if less is nil; the ordering is the heap's reason to exist.
//
// Complexity: O(1).
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic(panicNilLess)
	}

	return &Heap[T]{inner: ordered[T]{items: nil, less: less}}
}

// Push adds item to the heap.
//
// Complexity: O(log n).
func (h *Heap[T]) Push(item T) {
	heap.Push(&h.inner, item)
}

// Pop removes and returns the least item under the heap's ordering.
// Returns ErrEmpty when the heap holds no items.
//
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	if h.inner.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(&h.inner).(T), nil
}

// Empty reports whether the heap holds no items.
func (h *Heap[T]) Empty() bool { return h.inner.Len() == 0 }

// Len returns the number of items on the heap.
func (h *Heap[T]) Len() int { return h.inner.Len() }

// ordered adapts a slice plus an ordering to heap.Interface.
// container/heap owns the sift-up/sift-down mechanics; ordered only
// supplies storage and comparison.
type ordered[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (o *ordered[T]) Len() int { return len(o.items) }

func (o *ordered[T]) Less(i, j int) bool { return o.less(o.items[i], o.items[j]) }

func (o *ordered[T]) Swap(i, j int) { o.items[i], o.items[j] = o.items[j], o.items[i] }

// Push appends x; called only by container/heap.
func (o *ordered[T]) Push(x any) {
	o.items = append(o.items, x.(T))
}

// Pop removes and returns the last element; called only by container/heap
// after it has swapped the minimum into the final slot.
func (o *ordered[T]) Pop() any {
	last := len(o.items) - 1
	item := o.items[last]
	var zero T
	o.items[last] = zero // release the slot for the GC
	o.items = o.items[:last]

	return item
}
