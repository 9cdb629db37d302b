// Package frontier provides the generic containers that drive state-space
// search: a LIFO stack, a FIFO queue and a priority heap, all behind one
// minimal Frontier interface.
//
// What is a frontier?
//
//	During a search, the frontier holds every discovered-but-unexpanded
//	state. The order in which items leave the frontier is the only thing
//	that distinguishes depth-first from breadth-first from best-first
//	search; the surrounding loop is identical. Swapping the container
//	swaps the algorithm.
//
// Containers
//
//	Stack — last-in, first-out; yields depth-first exploration.
//	Queue — first-in, first-out; yields breadth-first exploration.
//	Heap  — least-item-first under a caller-supplied ordering; yields
//	        best-first exploration (A*, uniform-cost, greedy).
//
// All three are generic over the element type, grow without bound, and
// are NOT safe for concurrent use; callers own the synchronization.
//
// Errors
//
//   - ErrEmpty — Pop was called on a container with no items.
//
// Complexity
//
//	Stack and Queue: O(1) amortized per Push/Pop.
//	Heap: O(log n) per Push/Pop.
//
// See package search for the engines built on top of these containers.
package frontier
