package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

// openTen is the canonical 10×10 field with no rock, corner to corner.
func openTen(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New(10, 10, maze.Location{}, maze.Location{Row: 9, Column: 9},
		maze.WithSparseness(0))
	require.NoError(t, err)

	return m
}

// requireWalkable asserts path is a legal maze route from start to goal:
// begins at start, ends at goal, every hop orthogonal and open.
func requireWalkable(t *testing.T, m *maze.Maze, path []maze.Location) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0])
	require.Equal(t, m.Goal(), path[len(path)-1])
	for i, loc := range path {
		require.False(t, m.Blocked(loc), "path crosses rock at %s", loc)
		if i == 0 {
			continue
		}
		dr := loc.Row - path[i-1].Row
		dc := loc.Column - path[i-1].Column
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		require.Equal(t, 1, dr+dc, "hop %d is not a unit move", i)
	}
}

func TestOpenGrid_BreadthFirstShortest(t *testing.T) {
	m := openTen(t)

	node, err := search.BreadthFirst(m.Start(), m.GoalTest, m.Successors)
	require.NoError(t, err)

	path, err := node.Path()
	require.NoError(t, err)
	requireWalkable(t, m, path)
	assert.Len(t, path, 19, "corner to corner is 18 unit moves, 19 states")
}

func TestOpenGrid_AStarMatchesBreadthFirst(t *testing.T) {
	m := openTen(t)

	node, err := search.AStar(m.Start(), m.GoalTest, m.Successors,
		maze.ManhattanDistance(m.Goal()))
	require.NoError(t, err)

	path, err := node.Path()
	require.NoError(t, err)
	requireWalkable(t, m, path)
	assert.Len(t, path, 19)
	assert.InDelta(t, 18.0, node.Cost, 1e-12)
}

func TestOpenGrid_EuclideanAlsoOptimal(t *testing.T) {
	m := openTen(t)

	node, err := search.AStar(m.Start(), m.GoalTest, m.Successors,
		maze.EuclideanDistance(m.Goal()))
	require.NoError(t, err)
	assert.InDelta(t, 18.0, node.Cost, 1e-12)
}

func TestOpenGrid_DepthFirstFindsSomeRoute(t *testing.T) {
	m := openTen(t)

	node, err := search.DepthFirst(m.Start(), m.GoalTest, m.Successors)
	require.NoError(t, err)

	path, err := node.Path()
	require.NoError(t, err)
	requireWalkable(t, m, path)
	assert.GreaterOrEqual(t, len(path), 19, "no route beats the straight corner run")
}

// A* guided by Manhattan distance can never work harder than blind
// breadth-first on the same unit-cost grid.
func TestOpenGrid_AStarExpandsNoMoreThanBFS(t *testing.T) {
	m := openTen(t)

	bfs, err := search.NewStepper(
		frontier.NewQueue[*search.Node[maze.Location]](),
		m.Start(), m.GoalTest, m.Successors)
	require.NoError(t, err)
	for {
		res, err := bfs.Step()
		require.NoError(t, err)
		if res.Status != search.StepContinuing {
			break
		}
	}

	astar, err := search.NewAStarStepper(m.Start(), m.GoalTest, m.Successors,
		maze.ManhattanDistance(m.Goal()))
	require.NoError(t, err)
	for {
		res, err := astar.Step()
		require.NoError(t, err)
		if res.Status != search.StepContinuing {
			break
		}
	}

	assert.LessOrEqual(t, astar.Expansions(), bfs.Expansions())
}

// A solid wall across the grid leaves no way through: every engine must
// come back with the explicit negative answer.
func TestBlockedWall_NoPathAnywhere(t *testing.T) {
	wall := make([]maze.Location, 0, 5)
	for r := 0; r < 5; r++ {
		wall = append(wall, maze.Location{Row: r, Column: 2})
	}
	m, err := maze.New(5, 5, maze.Location{}, maze.Location{Row: 4, Column: 4},
		maze.WithSparseness(0), maze.WithBlocked(wall...))
	require.NoError(t, err)

	_, err = search.DepthFirst(m.Start(), m.GoalTest, m.Successors)
	require.ErrorIs(t, err, search.ErrNoPath)

	_, err = search.BreadthFirst(m.Start(), m.GoalTest, m.Successors)
	require.ErrorIs(t, err, search.ErrNoPath)

	_, err = search.AStar(m.Start(), m.GoalTest, m.Successors,
		maze.ManhattanDistance(m.Goal()))
	require.ErrorIs(t, err, search.ErrNoPath)
}

func TestSingleSquare_StartIsGoal(t *testing.T) {
	m, err := maze.New(1, 1, maze.Location{}, maze.Location{})
	require.NoError(t, err)

	st, err := search.NewStepper(
		frontier.NewQueue[*search.Node[maze.Location]](),
		m.Start(), m.GoalTest, m.Successors)
	require.NoError(t, err)

	res, err := st.Step()
	require.NoError(t, err)
	require.Equal(t, search.StepSucceeded, res.Status)

	path, err := res.Goal.Path()
	require.NoError(t, err)
	assert.Equal(t, []maze.Location{{}}, path)
	assert.Zero(t, st.Expansions())
}

// Walls force a detour: the shortest route is longer than the Manhattan
// distance, and BFS and A* agree on its length.
func TestDetour_BFSAndAStarAgree(t *testing.T) {
	// A 5×5 grid with the goal pocketed behind a C-shaped wall whose
	// only entrance faces away from the start.
	walls := []maze.Location{
		{Row: 1, Column: 1}, {Row: 1, Column: 2}, {Row: 1, Column: 3},
		{Row: 2, Column: 1}, {Row: 2, Column: 3},
		{Row: 3, Column: 1}, {Row: 3, Column: 3},
	}
	m, err := maze.New(5, 5, maze.Location{}, maze.Location{Row: 2, Column: 2},
		maze.WithSparseness(0), maze.WithBlocked(walls...))
	require.NoError(t, err)

	fromBFS, err := search.BreadthFirst(m.Start(), m.GoalTest, m.Successors)
	require.NoError(t, err)
	fromAStar, err := search.AStar(m.Start(), m.GoalTest, m.Successors,
		maze.ManhattanDistance(m.Goal()))
	require.NoError(t, err)

	bfsPath, err := fromBFS.Path()
	require.NoError(t, err)
	astarPath, err := fromAStar.Path()
	require.NoError(t, err)

	requireWalkable(t, m, bfsPath)
	requireWalkable(t, m, astarPath)
	require.Len(t, bfsPath, len(astarPath))
	assert.Greater(t, len(bfsPath), 5, "the wall must force a detour past the Manhattan distance")
}

// Re-running a search over the same maze yields the same cost; the maze
// is immutable, the engines share nothing between runs.
func TestMazeSearch_Idempotent(t *testing.T) {
	m, err := maze.New(10, 10, maze.Location{}, maze.Location{Row: 9, Column: 9},
		maze.WithSeed(42))
	require.NoError(t, err)

	first, errFirst := search.AStar(m.Start(), m.GoalTest, m.Successors,
		maze.ManhattanDistance(m.Goal()))
	second, errSecond := search.AStar(m.Start(), m.GoalTest, m.Successors,
		maze.ManhattanDistance(m.Goal()))

	if errFirst != nil {
		require.ErrorIs(t, errFirst, search.ErrNoPath)
		require.ErrorIs(t, errSecond, search.ErrNoPath)
		return
	}
	require.NoError(t, errSecond)
	assert.InDelta(t, first.Cost, second.Cost, 1e-12)
}
