// Package search - provenance nodes and path reconstruction.
package search

// Node records the discovery of one state along one particular route.
// Parent links chain back to the start, so any node an engine returns
// carries its full path implicitly. Nodes are written once at discovery
// and never mutated afterwards; treat them as read-only.
type Node[S comparable] struct {
	// State is the discovered state.
	State S

	// Parent is the node State was discovered from; nil for the root.
	Parent *Node[S]

	// Cost is the accumulated path cost from the start to State.
	// Uninformed engines track no costs and leave it at zero.
	Cost float64

	// Heuristic is the estimated cost remaining from State to a goal,
	// captured when the node was created. Zero in uninformed engines.
	Heuristic float64
}

// Priority is the ordering key for cost-guided frontiers: accumulated
// cost plus the heuristic estimate (f = g + h).
func (n *Node[S]) Priority() float64 {
	return n.Cost + n.Heuristic
}

// Depth returns the number of moves between the start node and n.
// The root has depth 0; a nil node reports 0.
//
// Complexity: O(path length).
func (n *Node[S]) Depth() int {
	d := 0
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		d++
	}

	return d
}

// Path reconstructs the start→n state sequence by walking parent links.
// The first element is the start state, the last is n.State; for a root
// node the two coincide and the path has length 1.
// Returns ErrNilNode when n is nil (no search produced it).
//
// Complexity: O(path length) time and space.
func (n *Node[S]) Path() ([]S, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	// 1) Measure the chain once so the result is sized exactly.
	length := 0
	for cur := n; cur != nil; cur = cur.Parent {
		length++
	}

	// 2) Fill back to front; no reversal pass needed.
	states := make([]S, length)
	i := length - 1
	for cur := n; cur != nil; cur = cur.Parent {
		states[i] = cur.State
		i--
	}

	return states, nil
}
