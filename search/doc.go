// Package search implements generic graph search over implicit state
// spaces: depth-first, breadth-first and A*, all sharing one expansion
// skeleton parameterized by a frontier container.
//
// What is an implicit state space?
//
//	A graph that is never materialized. The caller supplies small
//	callbacks: Successors (which states follow this one), GoalTest
//	(is this state an answer) and, for cost-guided search, a Heuristic
//	(how far to the nearest answer). The engine discovers only the
//	region it actually needs. States can be maze cells, puzzle
//	configurations, version vectors, anything comparable.
//
// How the engines relate
//
//	Every engine runs the same loop: pop a state from the frontier,
//	test it against the goal, expand its successors, repeat. The
//	frontier discipline is the whole difference:
//
//	  DepthFirst   — LIFO stack; dives deep, finds some path fast.
//	  BreadthFirst — FIFO queue; finds a fewest-moves path.
//	  AStar        — priority heap on f = g + h; finds a cheapest path
//	                 when the heuristic never overestimates.
//	  UniformCost  — AStar with h ≡ 0; cheapest path, no estimates.
//
// Results and provenance
//
//	Engines return a *Node: the goal state plus parent links back to
//	the start. Node.Path rebuilds the full route; Node.Cost holds the
//	accumulated path cost in cost-guided searches. A nil node never
//	escapes an engine: absence of a path is the sentinel ErrNoPath,
//	which is an answer ("unreachable"), not a malfunction.
//
// Stepping instead of running
//
//	NewStepper and NewAStarStepper expose the same engines one
//	expansion at a time. Drivers (visualizers, budgeted planners,
//	interactive debuggers) own the loop, inspect Explored, BestCosts
//	and FrontierLen between calls, and stop whenever they like. The
//	one-shot engines are thin wrappers over these steppers, so both
//	surfaces share one behavior.
//
// Determinism
//
//	Successor order is preserved exactly as returned by the callback,
//	and containers break no ties on their own, so identical inputs
//	yield identical expansion traces and identical paths.
//
// Errors
//
//   - ErrNoPath           — reachable space exhausted, goal not found
//   - ErrNilSuccessors    — successors callback missing
//   - ErrNilGoalTest      — goal-test callback missing
//   - ErrNilHeuristic     — heuristic callback missing (cost-guided)
//   - ErrNilFrontier      — frontier missing (NewStepper)
//   - ErrNilNode          — Path called on a nil node
//   - ErrInvalidHeuristic — heuristic produced NaN, ±Inf or a negative
//   - ErrInvalidEdgeCost  — edge cost produced NaN, ±Inf or a negative
//   - ErrExpansionLimit   — WithMaxExpansions budget spent
//   - ErrOptionViolation  — malformed functional option
//
// Concurrency: engines and steppers are single-goroutine objects.
// Run concurrent searches by constructing one engine per goroutine;
// they share nothing.
//
// See package frontier for the containers and package maze for a
// ready-made grid-world adapter.
package search
