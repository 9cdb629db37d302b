// Package search - cost-guided engines: A* and uniform-cost, plus
// their stepwise driver.
package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/statespace/frontier"
)

// AStar explores the space rooted at start in ascending f = g + h
// order and returns the first goal node popped, or ErrNoPath when the
// reachable space holds no goal. With an admissible heuristic (one
// that never overestimates) the returned path is cheapest.
//
// Moves cost one unit each unless WithEdgeCost supplies a price.
//
// Complexity: O((V + E) log V) time over the reachable space, O(V) memory.
func AStar[S comparable](start S, goal GoalTest[S], next Successors[S], h Heuristic[S], opts ...Option[S]) (*Node[S], error) {
	st, err := NewAStarStepper(start, goal, next, h, opts...)
	if err != nil {
		return nil, err
	}

	return run(st.Step)
}

// UniformCost is AStar with a zero heuristic: pure cheapest-first
// exploration of the implicit graph. Pair it with WithEdgeCost to
// search weighted spaces without inventing estimates.
func UniformCost[S comparable](start S, goal GoalTest[S], next Successors[S], opts ...Option[S]) (*Node[S], error) {
	return AStar(start, goal, next, zeroHeuristic[S], opts...)
}

// zeroHeuristic estimates nothing; it turns AStar into Dijkstra-style
// cheapest-first search.
func zeroHeuristic[S comparable](S) float64 { return 0 }

// AStarStepper drives a cost-guided search one expansion at a time.
// The frontier is always a priority heap ordered by Node.Priority;
// unlike NewStepper there is no container choice to make here.
//
// Single-use and single-goroutine, like Stepper.
type AStarStepper[S comparable] struct {
	frontier *frontier.Heap[*Node[S]]
	goal     GoalTest[S]
	next     Successors[S]
	h        Heuristic[S]
	opts     Options[S]

	best       map[S]float64 // cheapest known path cost per state
	expansions int
	final      *StepResult[S] // sticky terminal result
}

// NewAStarStepper validates the collaborators, probes the heuristic at
// the start state and seeds the frontier at cost zero.
//
// Returns ErrNilGoalTest, ErrNilSuccessors, ErrNilHeuristic,
// ErrInvalidHeuristic or ErrOptionViolation on bad input.
func NewAStarStepper[S comparable](start S, goal GoalTest[S], next Successors[S], h Heuristic[S], opts ...Option[S]) (*AStarStepper[S], error) {
	// 1) Validate everything before touching mutable state.
	if goal == nil {
		return nil, ErrNilGoalTest
	}
	if next == nil {
		return nil, ErrNilSuccessors
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Probe the heuristic once so a broken estimator fails the
	//    construction, not the thousandth expansion.
	startH, err := checkHeuristic(start, h(start))
	if err != nil {
		return nil, err
	}

	// 3) Seed the frontier with the root at cost zero.
	st := &AStarStepper[S]{
		frontier: frontier.NewHeap[*Node[S]](lessByPriority[S]),
		goal:     goal,
		next:     next,
		h:        h,
		opts:     o,
		best:     map[S]float64{start: 0},
	}
	st.frontier.Push(&Node[S]{State: start, Heuristic: startH})

	return st, nil
}

// lessByPriority orders nodes by f = g + h ascending.
func lessByPriority[S comparable](a, b *Node[S]) bool {
	return a.Priority() < b.Priority()
}

// Step pops the cheapest open node, tests it against the goal and,
// when it is not a goal, relaxes its successors. Stale frontier
// entries (nodes superseded by a cheaper discovery of the same state)
// are discarded without counting as expansions or goal tests.
//
// Returns ErrExpansionLimit once the WithMaxExpansions budget is
// spent, ErrInvalidHeuristic or ErrInvalidEdgeCost when a callback
// misbehaves mid-search.
func (st *AStarStepper[S]) Step() (StepResult[S], error) {
	// 0) A finished search stays finished.
	if st.final != nil {
		return *st.final, nil
	}

	// 1) Drain stale entries until a live node or an empty frontier.
	node, ok := st.popLive()
	if !ok {
		return st.finish(StepResult[S]{Status: StepExhausted}), nil
	}

	// 2) Goal test happens at pop time: the first goal popped is the
	//    cheapest reachable one under an admissible heuristic.
	if st.goal(node.State) {
		return st.finish(StepResult[S]{Status: StepSucceeded, Goal: node}), nil
	}

	// 3) Enforce the budget before paying for successor generation.
	if st.opts.MaxExpansions > 0 && st.expansions >= st.opts.MaxExpansions {
		return StepResult[S]{}, fmt.Errorf("%w: limit %d", ErrExpansionLimit, st.opts.MaxExpansions)
	}
	st.expansions++

	// 4) Relax each successor: push only on first discovery or a
	//    strictly cheaper route.
	for _, child := range st.next(node.State) {
		stepCost := unitCost
		if st.opts.Edge != nil {
			w, err := checkEdgeCost(node.State, child, st.opts.Edge(node.State, child))
			if err != nil {
				return StepResult[S]{}, err
			}
			stepCost = w
		}
		newCost := node.Cost + stepCost

		if known, seen := st.best[child]; seen && newCost >= known {
			continue // existing route is at least as cheap
		}
		childH, err := checkHeuristic(child, st.h(child))
		if err != nil {
			return StepResult[S]{}, err
		}
		st.best[child] = newCost
		st.frontier.Push(&Node[S]{State: child, Parent: node, Cost: newCost, Heuristic: childH})
	}

	return StepResult[S]{Status: StepContinuing, Expanded: node.State}, nil
}

// popLive pops until it finds a node whose cost still matches the best
// known cost for its state. Reports false when the frontier drains.
// Stale entries exist because relaxation pushes a fresh node instead
// of re-keying the old one inside the heap.
func (st *AStarStepper[S]) popLive() (*Node[S], bool) {
	for !st.frontier.Empty() {
		node, err := st.frontier.Pop()
		if err != nil {
			return nil, false
		}
		if node.Cost > st.best[node.State] {
			continue // superseded by a cheaper route
		}

		return node, true
	}

	return nil, false
}

// finish records res as the sticky terminal result and returns it.
func (st *AStarStepper[S]) finish(res StepResult[S]) StepResult[S] {
	st.final = &res

	return res
}

// BestCosts returns a copy of the cheapest known path cost for every
// state discovered so far.
func (st *AStarStepper[S]) BestCosts() map[S]float64 {
	out := make(map[S]float64, len(st.best))
	for s, c := range st.best {
		out[s] = c
	}

	return out
}

// Expansions returns how many states have had successors generated.
// Stale pops, goal hits and exhaustion checks do not count.
func (st *AStarStepper[S]) Expansions() int { return st.expansions }

// FrontierLen returns the number of entries currently waiting in the
// frontier, stale ones included.
func (st *AStarStepper[S]) FrontierLen() int { return st.frontier.Len() }

// checkHeuristic rejects estimates that would corrupt the ordering:
// NaN, ±Inf or negative values.
func checkHeuristic[S comparable](state S, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: h(%v)=%v", ErrInvalidHeuristic, state, v)
	}

	return v, nil
}

// checkEdgeCost rejects move prices that would corrupt the ordering:
// NaN, ±Inf or negative values.
func checkEdgeCost[S comparable](from, to S, w float64) (float64, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, fmt.Errorf("%w: cost(%v→%v)=%v", ErrInvalidEdgeCost, from, to, w)
	}

	return w, nil
}
