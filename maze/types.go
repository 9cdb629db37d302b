// Package maze - cell and location types, tunable options and error
// definitions for grid construction.
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Grid defaults for the classic playground maze.
const (
	// DefaultRows is the conventional grid height.
	DefaultRows = 10

	// DefaultColumns is the conventional grid width.
	DefaultColumns = 10

	// DefaultSparseness blocks roughly one square in five.
	DefaultSparseness = 0.2
)

// defaultSeed feeds the fallback RNG when no WithRand/WithSeed option is
// supplied; fixed so unseeded constructions stay reproducible.
const defaultSeed int64 = 1

// Valid sparseness domain.
const (
	sparsenessMin = 0.0
	sparsenessMax = 1.0
)

// Cell is the glyph stored in one grid square. The byte values double
// as the rendered and persisted representation.
type Cell byte

const (
	// CellEmpty is open floor.
	CellEmpty Cell = ' '

	// CellBlocked is impassable rock.
	CellBlocked Cell = 'X'

	// CellStart marks the entry square.
	CellStart Cell = 'S'

	// CellGoal marks the target square.
	CellGoal Cell = 'G'

	// CellPath marks a solution square in a Solved rendering.
	CellPath Cell = '*'
)

// Location addresses one square: Row counts down from the top-left
// origin, Column counts right. The zero value is the origin.
type Location struct {
	Row    int
	Column int
}

// String renders "(row,column)" for logs and error context.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Column)
}

// Sentinel errors for maze construction and scenario decoding.
var (
	// ErrBadDimensions is returned when rows or columns are < 1.
	ErrBadDimensions = errors.New("maze: rows and columns must be positive")

	// ErrBadSparseness is returned when the blocking probability lies
	// outside [0,1].
	ErrBadSparseness = errors.New("maze: sparseness must lie in [0,1]")

	// ErrOutOfBounds is returned when a start, goal or explicit wall
	// location falls outside the grid.
	ErrOutOfBounds = errors.New("maze: location outside the grid")

	// ErrBadScenario is returned by Decode for malformed documents.
	ErrBadScenario = errors.New("maze: malformed scenario")
)

// Option customizes construction via functional arguments. An invalid
// value (e.g. sparseness above 1) is recorded internally and surfaced
// by New.
type Option func(*Options)

// Options holds the tunable construction parameters.
type Options struct {
	// Sparseness is the independent probability that a square starts
	// blocked: 0 gives an open field, 1 a solid quarry.
	Sparseness float64

	// Rand drives the random fill. nil selects the fixed default
	// stream, keeping unseeded mazes reproducible.
	Rand *rand.Rand

	// Blocked lists squares to wall explicitly, applied after the
	// random fill. The start and goal squares are carved clear last.
	Blocked []Location

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Sparseness = DefaultSparseness
//   - fixed-seed RNG (Rand == nil)
//   - no explicit walls
//   - error slot clear.
func DefaultOptions() Options {
	return Options{Sparseness: DefaultSparseness, Rand: nil, Blocked: nil, err: nil}
}

// WithSparseness sets the independent blocking probability per square.
//
//	0 ≤ p ≤ 1: valid
//	otherwise (including NaN): invalid option → ErrBadSparseness
func WithSparseness(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < sparsenessMin || p > sparsenessMax {
			o.err = fmt.Errorf("%w: got %v", ErrBadSparseness, p)
			return
		}
		o.Sparseness = p
	}
}

// WithRand provides an explicit RNG for the random fill. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}

	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed derives a deterministic RNG from seed. A zero seed selects
// the library's default stream.
func WithSeed(seed int64) Option {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(s))
	}
}

// WithBlocked walls the given squares on top of the random fill.
// Squares outside the grid fail construction with ErrOutOfBounds.
// Walling the start or goal square has no effect: endpoints are always
// carved clear.
func WithBlocked(locs ...Location) Option {
	return func(o *Options) {
		o.Blocked = append(o.Blocked, locs...)
	}
}
