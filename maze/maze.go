// Package maze - grid construction and the search-adapter surface.
package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// Maze is an immutable rectangular grid world. Construction owns its
// storage outright, so a Maze never changes underneath a running
// search; its accessor methods are safe for concurrent readers.
type Maze struct {
	rows    int
	columns int
	start   Location
	goal    Location
	grid    [][]Cell // grid[row][column]
}

// New builds a rows×columns maze. Squares are blocked independently
// with the configured sparseness, explicit WithBlocked walls are laid
// on top, and the start and goal squares are carved clear last, so
// they can never be rock.
//
// Returns ErrBadDimensions, ErrOutOfBounds, ErrBadSparseness (via a
// recorded option violation) on bad input.
//
// Complexity: O(rows × columns).
func New(rows, columns int, start, goal Location, opts ...Option) (*Maze, error) {
	// 1) Fold options and surface any recorded violation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate the geometry before allocating anything.
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, rows, columns)
	}
	m := &Maze{rows: rows, columns: columns, start: start, goal: goal}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !m.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal)
	}

	// 3) Random fill: one Bernoulli draw per square, row-major order,
	//    so a fixed seed reproduces the exact same quarry.
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	m.grid = make([][]Cell, rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, columns)
		for c := range m.grid[r] {
			m.grid[r][c] = CellEmpty
			if rng.Float64() < o.Sparseness {
				m.grid[r][c] = CellBlocked
			}
		}
	}

	// 4) Explicit walls, then the endpoints win over everything.
	for _, loc := range o.Blocked {
		if !m.InBounds(loc) {
			return nil, fmt.Errorf("%w: blocked %s", ErrOutOfBounds, loc)
		}
		m.grid[loc.Row][loc.Column] = CellBlocked
	}
	m.grid[start.Row][start.Column] = CellStart
	m.grid[goal.Row][goal.Column] = CellGoal

	return m, nil
}

// Rows returns the grid height.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the grid width.
func (m *Maze) Columns() int { return m.columns }

// Start returns the entry square.
func (m *Maze) Start() Location { return m.start }

// Goal returns the target square.
func (m *Maze) Goal() Location { return m.goal }

// InBounds reports whether loc addresses a square inside the grid.
func (m *Maze) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < m.rows &&
		loc.Column >= 0 && loc.Column < m.columns
}

// Blocked reports whether loc is impassable. Squares outside the grid
// count as blocked, which lets movement code ask one question instead
// of two.
func (m *Maze) Blocked(loc Location) bool {
	if !m.InBounds(loc) {
		return true
	}

	return m.grid[loc.Row][loc.Column] == CellBlocked
}

// Successors lists the orthogonally adjacent open squares in a fixed
// order: down, up, right, left. The order is part of the contract;
// depth-first drivers rely on it for reproducible routes. The method
// value m.Successors satisfies the search package's callback shape.
func (m *Maze) Successors(loc Location) []Location {
	out := make([]Location, 0, 4)
	for _, next := range [4]Location{
		{Row: loc.Row + 1, Column: loc.Column},
		{Row: loc.Row - 1, Column: loc.Column},
		{Row: loc.Row, Column: loc.Column + 1},
		{Row: loc.Row, Column: loc.Column - 1},
	} {
		if !m.Blocked(next) {
			out = append(out, next)
		}
	}

	return out
}

// GoalTest reports whether loc is the goal square.
func (m *Maze) GoalTest(loc Location) bool { return loc == m.goal }

// String renders the grid row by row, one glyph per square, each row
// ending in a newline.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.columns + 1))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.columns; c++ {
			b.WriteByte(byte(m.grid[r][c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Solved renders the grid with the given route painted as CellPath
// squares. Start and goal glyphs win over the marker; locations outside
// the grid are ignored. The maze itself is not modified.
func (m *Maze) Solved(path []Location) string {
	onPath := make(map[Location]struct{}, len(path))
	for _, loc := range path {
		if m.InBounds(loc) {
			onPath[loc] = struct{}{}
		}
	}

	var b strings.Builder
	b.Grow(m.rows * (m.columns + 1))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.columns; c++ {
			glyph := m.grid[r][c]
			if _, ok := onPath[Location{Row: r, Column: c}]; ok && glyph == CellEmpty {
				glyph = CellPath
			}
			b.WriteByte(byte(glyph))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
