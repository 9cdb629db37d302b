// Package frontier - shared contract and error definitions for the
// search containers (Stack, Queue, Heap).
package frontier

import "errors"

// Sentinel errors for frontier operations.
var (
	// ErrEmpty is returned by Pop when the container holds no items.
	ErrEmpty = errors.New("frontier: pop from empty container")
)

// panicNilLess is the message used when NewHeap receives a nil ordering.
// Constructors validate and panic on programmer error; runtime operations
// return sentinel errors only.
const panicNilLess = "frontier: NewHeap(nil ordering)"

// Frontier is the uniform contract every search container satisfies.
// The removal order is the container's entire personality: LIFO for
// Stack, FIFO for Queue, least-first for Heap.
//
// Implementations are not safe for concurrent use.
type Frontier[T any] interface {
	// Push adds item to the container.
	Push(item T)

	// Pop removes and returns the next item according to the container's
	// discipline. Returns ErrEmpty when no items remain.
	Pop() (T, error)

	// Empty reports whether the container holds no items.
	Empty() bool

	// Len returns the number of items currently held.
	Len() int
}
