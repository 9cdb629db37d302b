// Package search - callback contracts, tunable options and error
// definitions shared by every engine.
package search

import (
	"errors"
	"fmt"
)

// unitCost is the price of one move when no WithEdgeCost is supplied.
const unitCost = 1.0

// Sentinel errors for search execution.
var (
	// ErrNoPath reports that the reachable state space was exhausted
	// without satisfying the goal test. It is a negative answer, not a
	// malfunction: branch on it, do not treat it as a crash.
	ErrNoPath = errors.New("search: no path to a goal state")

	// ErrNilSuccessors is returned when the successors callback is nil.
	ErrNilSuccessors = errors.New("search: successors function is nil")

	// ErrNilGoalTest is returned when the goal-test callback is nil.
	ErrNilGoalTest = errors.New("search: goal test is nil")

	// ErrNilHeuristic is returned by cost-guided constructors when the
	// heuristic callback is nil.
	ErrNilHeuristic = errors.New("search: heuristic function is nil")

	// ErrNilFrontier is returned by NewStepper when the frontier is nil.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrNilNode is returned by Path when invoked on a nil node.
	ErrNilNode = errors.New("search: node is nil")

	// ErrInvalidHeuristic is returned when a heuristic yields a negative,
	// NaN or infinite estimate. Such values silently corrupt the
	// priority ordering, so they are rejected loudly instead.
	ErrInvalidHeuristic = errors.New("search: heuristic must be finite and non-negative")

	// ErrInvalidEdgeCost is returned when an edge-cost callback yields a
	// negative, NaN or infinite cost.
	ErrInvalidEdgeCost = errors.New("search: edge cost must be finite and non-negative")

	// ErrExpansionLimit is returned when the budget set by
	// WithMaxExpansions is spent before a goal is found.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Successors enumerates the states reachable from state in one move.
// Engines preserve the returned order exactly, so a deterministic
// callback makes the whole search deterministic. Returning a nil or
// empty slice is legal and marks a dead end.
type Successors[S comparable] func(state S) []S

// GoalTest reports whether state is an acceptable answer. Multiple
// goal states are fine; engines stop at the first one popped.
type GoalTest[S comparable] func(state S) bool

// Heuristic estimates the cost remaining from state to the nearest
// goal. Estimates must be finite and non-negative; estimates that
// never exceed the true remaining cost (admissible) make AStar return
// cheapest paths.
type Heuristic[S comparable] func(state S) float64

// EdgeCost prices the move between two adjacent states. Costs must be
// finite and non-negative; zero-cost moves are allowed.
type EdgeCost[S comparable] func(from, to S) float64

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. a negative expansion budget), the
// violation is recorded internally and surfaced as ErrOptionViolation
// when the engine is constructed.
type Option[S comparable] func(*Options[S])

// Options holds the tunable parameters shared by all engines.
type Options[S comparable] struct {
	// Edge prices each traversed move in cost-guided engines.
	// nil means every move costs one unit. Uninformed engines track no
	// costs and ignore it.
	Edge EdgeCost[S]

	// MaxExpansions, if > 0, caps how many states may be expanded
	// before the engine gives up with ErrExpansionLimit.
	// A value of 0 explicitly disables the budget.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - unit edge cost (Edge == nil)
//   - no expansion budget (MaxExpansions == 0)
//   - error slot clear.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{Edge: nil, MaxExpansions: 0, err: nil}
}

// WithEdgeCost prices moves in cost-guided engines (AStar, UniformCost
// and NewAStarStepper). Passing nil restores the unit-cost default.
func WithEdgeCost[S comparable](fn EdgeCost[S]) Option[S] {
	return func(o *Options[S]) {
		o.Edge = fn
	}
}

// WithMaxExpansions caps the number of state expansions.
//
//	n > 0:  expand at most n states, then fail with ErrExpansionLimit
//	n == 0: explicit no budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// applyOptions folds opts over the defaults and surfaces any recorded
// violation.
func applyOptions[S comparable](opts []Option[S]) (Options[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// StepStatus classifies the outcome of a single Step call.
type StepStatus uint8

const (
	// StepContinuing means one state was expanded and the search can
	// proceed; StepResult.Expanded names the state.
	StepContinuing StepStatus = iota

	// StepSucceeded means the popped state satisfied the goal test;
	// StepResult.Goal carries the terminal node.
	StepSucceeded

	// StepExhausted means the frontier drained without reaching a goal;
	// the reachable space holds no solution.
	StepExhausted
)

// StepResult reports what a single Step accomplished.
type StepResult[S comparable] struct {
	// Status classifies the outcome.
	Status StepStatus

	// Expanded is the state whose successors were generated this call.
	// Meaningful only when Status == StepContinuing.
	Expanded S

	// Goal is the node that satisfied the goal test.
	// Non-nil only when Status == StepSucceeded.
	Goal *Node[S]
}
