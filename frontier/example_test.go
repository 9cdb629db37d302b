package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/frontier"
)

// ExampleStack shows LIFO removal: the last state pushed is explored first.
func ExampleStack() {
	s := frontier.NewStack[string]()
	s.Push("shallow")
	s.Push("deeper")
	s.Push("deepest")

	for !s.Empty() {
		item, _ := s.Pop()
		fmt.Println(item)
	}
	// Output:
	// deepest
	// deeper
	// shallow
}

// ExampleQueue shows FIFO removal: states leave in discovery order.
func ExampleQueue() {
	q := frontier.NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	for !q.Empty() {
		item, _ := q.Pop()
		fmt.Println(item)
	}
	// Output:
	// 1
	// 2
	// 3
}

// ExampleHeap shows least-first removal under a caller-supplied ordering.
func ExampleHeap() {
	h := frontier.NewHeap[float64](func(a, b float64) bool { return a < b })
	h.Push(2.5)
	h.Push(0.5)
	h.Push(1.5)

	for !h.Empty() {
		item, _ := h.Pop()
		fmt.Println(item)
	}
	// Output:
	// 0.5
	// 1.5
	// 2.5
}
