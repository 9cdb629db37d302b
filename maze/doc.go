// Package maze provides a ready-made grid-world domain for the search
// engines: rectangular grids with blocked squares, a start, a goal,
// admissible distance heuristics and a YAML scenario format.
//
// What is it for?
//
//	The search package wants three callbacks: successors, goal test
//	and (for A*) a heuristic. A Maze supplies all three for the classic
//	"escape the grid" problem:
//
//	  m, _ := maze.New(10, 10, maze.Location{}, maze.Location{Row: 9, Column: 9},
//	      maze.WithSparseness(0.2), maze.WithSeed(42))
//	  node, err := search.AStar(m.Start(), m.GoalTest, m.Successors,
//	      maze.ManhattanDistance(m.Goal()))
//
//	Movement is 4-directional (down, up, right, left, in that fixed
//	order) with implicit unit cost. Squares are either open floor or
//	blocked rock; the start and goal squares are always kept open.
//
// Determinism
//
//	Random fills draw from an explicit RNG (WithRand / WithSeed); when
//	none is given, a fixed default seed is used, so every unseeded
//	construction yields the same grid. Successor order is fixed, so
//	searches over a given maze are fully reproducible.
//
// Scenarios
//
//	Encode/Decode (and ReadFile/WriteFile) persist a maze as a small
//	YAML document of glyph rows ('S', 'G', 'X' and spaces), easy to
//	edit by hand and diff in reviews. Path markers ('*') in stored
//	solutions reload as open floor.
//
// Errors
//
//   - ErrBadDimensions — non-positive row or column count
//   - ErrBadSparseness — blocking probability outside [0,1]
//   - ErrOutOfBounds   — start, goal or explicit wall outside the grid
//   - ErrBadScenario   — malformed scenario document
//
// The package has no dependency on the engines; it only produces
// callbacks they accept. See cmd/mazesolve for an end-to-end driver.
package maze
