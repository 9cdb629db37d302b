// Package maze - the YAML scenario format: persist a grid, load it
// back, hand-edit it in a text editor.
package maze

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioFileMode is the permission set for written scenario files.
const scenarioFileMode = 0o644

// scenarioDoc is the on-disk shape: one string of glyphs per grid row.
type scenarioDoc struct {
	Rows []string `yaml:"rows"`
}

// Encode renders m as a YAML scenario document.
func Encode(m *Maze) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil maze", ErrBadScenario)
	}

	doc := scenarioDoc{Rows: make([]string, m.rows)}
	for r := 0; r < m.rows; r++ {
		doc.Rows[r] = string(m.grid[r])
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}

	return out, nil
}

// Decode parses a YAML scenario document into a validated Maze.
// Every row must have the same width, the grid must contain exactly
// one start and one goal, and only the Cell glyphs are legal. Path
// markers from a stored solution reload as open floor.
//
// Returns ErrBadScenario, wrapped with detail, on any violation.
func Decode(data []byte) (*Maze, error) {
	var doc scenarioDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}

	// 1) Geometry first: non-empty, rectangular.
	if len(doc.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadScenario)
	}
	rows, columns := len(doc.Rows), len(doc.Rows[0])
	if columns == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrBadScenario)
	}

	// 2) Walk the glyphs, locate the endpoints, reject anything odd.
	m := &Maze{rows: rows, columns: columns, grid: make([][]Cell, rows)}
	var haveStart, haveGoal bool
	for r, line := range doc.Rows {
		if len(line) != columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrBadScenario, r, len(line), columns)
		}
		m.grid[r] = make([]Cell, columns)
		for c := 0; c < columns; c++ {
			cell := Cell(line[c])
			switch cell {
			case CellEmpty, CellBlocked:
				// open floor or rock, kept as is
			case CellPath:
				cell = CellEmpty // stored solutions reload as floor
			case CellStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at %s",
						ErrBadScenario, Location{Row: r, Column: c})
				}
				haveStart = true
				m.start = Location{Row: r, Column: c}
			case CellGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at %s",
						ErrBadScenario, Location{Row: r, Column: c})
				}
				haveGoal = true
				m.goal = Location{Row: r, Column: c}
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at %s",
					ErrBadScenario, line[c], Location{Row: r, Column: c})
			}
			m.grid[r][c] = cell
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: missing start glyph %q", ErrBadScenario, byte(CellStart))
	}
	if !haveGoal {
		return nil, fmt.Errorf("%w: missing goal glyph %q", ErrBadScenario, byte(CellGoal))
	}

	return m, nil
}

// ReadFile loads and decodes the scenario at path.
func ReadFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read scenario: %w", err)
	}

	return Decode(data)
}

// WriteFile encodes m and writes it to path, creating or truncating
// the file.
func WriteFile(path string, m *Maze) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, scenarioFileMode); err != nil {
		return fmt.Errorf("maze: write scenario: %w", err)
	}

	return nil
}
