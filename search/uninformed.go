// Package search - uninformed engines: depth-first and breadth-first
// traversal plus the stepwise driver they share.
package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/frontier"
)

// DepthFirst explores the space rooted at start in last-in, first-out
// order and returns the first goal node discovered, or ErrNoPath when
// the reachable space holds no goal. The path found is valid but not
// guaranteed shortest.
//
// The returned node carries provenance: call Path on it for the full
// start→goal route.
//
// Complexity: O(V + E) time over the reachable space, O(V) memory.
func DepthFirst[S comparable](start S, goal GoalTest[S], next Successors[S], opts ...Option[S]) (*Node[S], error) {
	st, err := NewStepper(frontier.NewStack[*Node[S]](), start, goal, next, opts...)
	if err != nil {
		return nil, err
	}

	return run(st.Step)
}

// BreadthFirst explores the space rooted at start in first-in,
// first-out order and returns a goal node reached by the fewest moves,
// or ErrNoPath when the reachable space holds no goal.
//
// Complexity: O(V + E) time over the reachable space, O(V) memory.
func BreadthFirst[S comparable](start S, goal GoalTest[S], next Successors[S], opts ...Option[S]) (*Node[S], error) {
	st, err := NewStepper(frontier.NewQueue[*Node[S]](), start, goal, next, opts...)
	if err != nil {
		return nil, err
	}

	return run(st.Step)
}

// run drives a stepper to a terminal status and translates it into the
// one-shot engine contract: goal node on success, ErrNoPath on
// exhaustion, first error otherwise.
func run[S comparable](step func() (StepResult[S], error)) (*Node[S], error) {
	for {
		res, err := step()
		if err != nil {
			return nil, err
		}
		switch res.Status {
		case StepSucceeded:
			return res.Goal, nil
		case StepExhausted:
			return nil, ErrNoPath
		}
	}
}

// Stepper drives an uninformed search one expansion at a time. Callers
// own the loop: invoke Step until it reports StepSucceeded or
// StepExhausted, inspecting Explored, Expansions and FrontierLen
// between calls. Construct with NewStepper; the zero value is unusable.
//
// A Stepper is single-use. Once a terminal status is reached, every
// further Step returns that same result. Not safe for concurrent use.
type Stepper[S comparable] struct {
	frontier frontier.Frontier[*Node[S]]
	goal     GoalTest[S]
	next     Successors[S]
	opts     Options[S]

	explored   map[S]struct{}
	expansions int
	final      *StepResult[S] // sticky terminal result
}

// NewStepper validates the collaborators and seeds f with the start
// state. The frontier discipline decides the algorithm: a Stack yields
// depth-first order, a Queue breadth-first; any Frontier is accepted.
//
// Returns ErrNilFrontier, ErrNilGoalTest, ErrNilSuccessors or
// ErrOptionViolation on bad input.
func NewStepper[S comparable](f frontier.Frontier[*Node[S]], start S, goal GoalTest[S], next Successors[S], opts ...Option[S]) (*Stepper[S], error) {
	// 1) Validate everything before touching mutable state.
	if f == nil {
		return nil, ErrNilFrontier
	}
	if goal == nil {
		return nil, ErrNilGoalTest
	}
	if next == nil {
		return nil, ErrNilSuccessors
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Seed the frontier with the root and mark the start discovered.
	st := &Stepper[S]{
		frontier: f,
		goal:     goal,
		next:     next,
		opts:     o,
		explored: map[S]struct{}{start: {}},
	}
	f.Push(&Node[S]{State: start})

	return st, nil
}

// Step pops one state, tests it against the goal and, when it is not a
// goal, generates its successors. Exactly one state leaves the frontier
// per call; each successor enters the frontier at most once over the
// whole search.
//
// Returns ErrExpansionLimit once the WithMaxExpansions budget is spent.
func (st *Stepper[S]) Step() (StepResult[S], error) {
	// 0) A finished search stays finished.
	if st.final != nil {
		return *st.final, nil
	}

	// 1) An empty frontier means the reachable space is exhausted.
	if st.frontier.Empty() {
		return st.finish(StepResult[S]{Status: StepExhausted}), nil
	}

	// 2) Pop the next candidate according to the frontier discipline.
	node, err := st.frontier.Pop()
	if err != nil {
		return StepResult[S]{}, err
	}

	// 3) Goal test happens at pop time, before any expansion work, so
	//    a start that already satisfies the goal expands nothing.
	if st.goal(node.State) {
		return st.finish(StepResult[S]{Status: StepSucceeded, Goal: node}), nil
	}

	// 4) Enforce the budget before paying for successor generation.
	if st.opts.MaxExpansions > 0 && st.expansions >= st.opts.MaxExpansions {
		return StepResult[S]{}, fmt.Errorf("%w: limit %d", ErrExpansionLimit, st.opts.MaxExpansions)
	}
	st.expansions++

	// 5) Discover successors; anything seen before is skipped, so
	//    cycles and shared substructure cannot loop the search.
	for _, child := range st.next(node.State) {
		if _, seen := st.explored[child]; seen {
			continue
		}
		st.explored[child] = struct{}{}
		st.frontier.Push(&Node[S]{State: child, Parent: node})
	}

	return StepResult[S]{Status: StepContinuing, Expanded: node.State}, nil
}

// finish records res as the sticky terminal result and returns it.
func (st *Stepper[S]) finish(res StepResult[S]) StepResult[S] {
	st.final = &res

	return res
}

// Explored returns a copy of every state discovered so far, in no
// particular order.
func (st *Stepper[S]) Explored() []S {
	out := make([]S, 0, len(st.explored))
	for s := range st.explored {
		out = append(out, s)
	}

	return out
}

// Expansions returns how many states have had successors generated.
// Goal hits and exhaustion checks do not count.
func (st *Stepper[S]) Expansions() int { return st.expansions }

// FrontierLen returns the number of discovered-but-unexpanded states
// currently waiting in the frontier.
func (st *Stepper[S]) FrontierLen() int { return st.frontier.Len() }
