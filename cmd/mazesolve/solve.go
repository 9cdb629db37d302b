package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

const (
	algoDFS   = "dfs"
	algoBFS   = "bfs"
	algoUCS   = "ucs"
	algoAStar = "astar"
	algoAll   = "all"

	heuristicManhattan = "manhattan"
	heuristicEuclidean = "euclidean"
)

var (
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Run one search engine, or race all of them, through a maze",
		Long: `Solve searches a maze from its start square to its goal square.

The maze comes from a YAML scenario file (--file) or is generated on
the spot from --rows, --columns, --sparseness and --seed. Generated
mazes run corner to corner. Each engine reports its route length,
cost, node expansions and wall time; the solved grid is printed with
the route painted in.`,
	}

	solveFile       = solveCmd.Flags().StringP("file", "f", "", "Solve the scenario at this path instead of generating one")
	solveRows       = solveCmd.Flags().Int("rows", maze.DefaultRows, "Generated maze height")
	solveColumns    = solveCmd.Flags().Int("columns", maze.DefaultColumns, "Generated maze width")
	solveSparseness = solveCmd.Flags().Float64("sparseness", maze.DefaultSparseness, "Chance that a generated square is rock")
	solveSeed       = solveCmd.Flags().Int64("seed", 0, "Generator seed, 0 means the fixed default stream")
	solveAlgo       = solveCmd.Flags().String("algo", algoAStar, "Engine to run: dfs, bfs, ucs, astar or all")
	solveHeuristic  = solveCmd.Flags().String("heuristic", heuristicManhattan, "A* distance estimate: manhattan or euclidean")
	solveNoRender   = solveCmd.Flags().Bool("no-render", false, "Skip printing the solved grid")
)

func init() {
	// RunE is wired here rather than in the literal: runSolve reads the
	// flag variables, whose initializers refer back to solveCmd.
	solveCmd.RunE = runSolve
	rootCmd.AddCommand(solveCmd)
}

// engine is the stepping surface shared by the uninformed and the
// best-first steppers.
type engine interface {
	Step() (search.StepResult[maze.Location], error)
	Expansions() int
}

func runSolve(cmd *cobra.Command, args []string) error {
	m, err := solveMaze()
	if err != nil {
		return err
	}
	log.Info().
		Int("rows", m.Rows()).
		Int("columns", m.Columns()).
		Stringer("start", m.Start()).
		Stringer("goal", m.Goal()).
		Msg("maze ready")

	engines, err := engineList(*solveAlgo)
	if err != nil {
		return err
	}

	var unsolved int
	for _, name := range engines {
		path, err := raceEngine(name, m)
		if errors.Is(err, search.ErrNoPath) {
			unsolved++
			continue
		}
		if err != nil {
			return err
		}
		if !*solveNoRender {
			fmt.Print(m.Solved(path))
		}
	}
	if unsolved > 0 {
		return fmt.Errorf("no route from %s to %s", m.Start(), m.Goal())
	}

	return nil
}

// solveMaze loads the scenario named by --file, or generates a fresh
// corner-to-corner maze.
func solveMaze() (*maze.Maze, error) {
	if *solveFile != "" {
		return maze.ReadFile(*solveFile)
	}

	return maze.New(*solveRows, *solveColumns,
		maze.Location{}, maze.Location{Row: *solveRows - 1, Column: *solveColumns - 1},
		maze.WithSparseness(*solveSparseness), maze.WithSeed(*solveSeed))
}

// raceEngine drives one engine to termination and logs its statistics.
func raceEngine(name string, m *maze.Maze) ([]maze.Location, error) {
	eng, err := buildEngine(name, m)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	goalNode, err := drive(eng)
	elapsed := time.Since(started)

	if errors.Is(err, search.ErrNoPath) {
		log.Warn().
			Str("engine", name).
			Int("expansions", eng.Expansions()).
			Dur("elapsed", elapsed).
			Msg("no route")

		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	path, err := goalNode.Path()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	log.Info().
		Str("engine", name).
		Int("moves", len(path)-1).
		Float64("cost", goalNode.Cost).
		Int("expansions", eng.Expansions()).
		Dur("elapsed", elapsed).
		Msg("route found")

	return path, nil
}

// buildEngine wires the named engine to the maze's callbacks.
func buildEngine(name string, m *maze.Maze) (engine, error) {
	switch name {
	case algoDFS:
		return search.NewStepper(frontier.NewStack[*search.Node[maze.Location]](), m.Start(), m.GoalTest, m.Successors)
	case algoBFS:
		return search.NewStepper(frontier.NewQueue[*search.Node[maze.Location]](), m.Start(), m.GoalTest, m.Successors)
	case algoUCS:
		return search.NewAStarStepper(m.Start(), m.GoalTest, m.Successors,
			func(maze.Location) float64 { return 0 })
	case algoAStar:
		h, err := pickHeuristic(*solveHeuristic, m.Goal())
		if err != nil {
			return nil, err
		}

		return search.NewAStarStepper(m.Start(), m.GoalTest, m.Successors, h)
	default:
		return nil, fmt.Errorf("unknown engine %q, want dfs, bfs, ucs, astar or all", name)
	}
}

// drive steps eng until it finds the goal or proves there is none.
func drive(eng engine) (*search.Node[maze.Location], error) {
	for {
		res, err := eng.Step()
		if err != nil {
			return nil, err
		}
		switch res.Status {
		case search.StepSucceeded:
			return res.Goal, nil
		case search.StepExhausted:
			return nil, search.ErrNoPath
		}
	}
}

func engineList(algo string) ([]string, error) {
	name := strings.ToLower(algo)
	switch name {
	case algoAll:
		return []string{algoDFS, algoBFS, algoUCS, algoAStar}, nil
	case algoDFS, algoBFS, algoUCS, algoAStar:
		return []string{name}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q, want dfs, bfs, ucs, astar or all", algo)
	}
}

func pickHeuristic(name string, goal maze.Location) (search.Heuristic[maze.Location], error) {
	switch strings.ToLower(name) {
	case heuristicManhattan:
		return maze.ManhattanDistance(goal), nil
	case heuristicEuclidean:
		return maze.EuclideanDistance(goal), nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q, want manhattan or euclidean", name)
	}
}
