// Package frontier - slice-backed LIFO container.
package frontier

// Stack is a last-in, first-out Frontier backed by a growable slice.
// The zero value is an empty stack ready to use; NewStack reads better
// at call sites.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty LIFO frontier.
//
// Complexity: O(1).
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{items: nil}
}

// Push appends item to the top of the stack.
//
// Complexity: amortized O(1).
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
// Returns ErrEmpty when the stack holds no items.
//
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	top := len(s.items) - 1
	item := s.items[top]
	s.items[top] = zero // release the slot for the GC
	s.items = s.items[:top]

	return item, nil
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }
