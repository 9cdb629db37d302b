// Package maze - distance heuristics for cost-guided search over the
// grid. Both factories close over the goal and return plain functions,
// which the search package's Heuristic type accepts directly.
package maze

import "math"

// ManhattanDistance returns the taxicab distance to goal: |Δrow| +
// |Δcolumn|. Under the 4-directional unit-cost movement Successors
// offers it never overestimates, so A* paths stay cheapest.
func ManhattanDistance(goal Location) func(Location) float64 {
	return func(loc Location) float64 {
		dr := loc.Row - goal.Row
		if dr < 0 {
			dr = -dr
		}
		dc := loc.Column - goal.Column
		if dc < 0 {
			dc = -dc
		}

		return float64(dr + dc)
	}
}

// EuclideanDistance returns the straight-line distance to goal. Also
// admissible on 4-directional grids, but looser than Manhattan, so it
// typically guides A* through more expansions.
func EuclideanDistance(goal Location) func(Location) float64 {
	return func(loc Location) float64 {
		return math.Hypot(float64(loc.Row-goal.Row), float64(loc.Column-goal.Column))
	}
}
