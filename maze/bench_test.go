package maze_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

var benchMazes = []int{16, 64}

// benchMaze builds an unobstructed n×n corner-to-corner grid. Open
// floor keeps every run solvable, so the benches measure search, not
// generator luck.
func benchMaze(b *testing.B, n int) *maze.Maze {
	b.Helper()
	m, err := maze.New(n, n, maze.Location{}, maze.Location{Row: n - 1, Column: n - 1},
		maze.WithSparseness(0))
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkNew(b *testing.B) {
	for _, n := range benchMazes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := maze.New(n, n, maze.Location{}, maze.Location{Row: n - 1, Column: n - 1},
					maze.WithSeed(int64(n)))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBreadthFirst_Maze(b *testing.B) {
	for _, n := range benchMazes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMaze(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := search.BreadthFirst(m.Start(), m.GoalTest, m.Successors); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAStar_Maze(b *testing.B) {
	for _, n := range benchMazes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMaze(b, n)
			h := maze.ManhattanDistance(m.Goal())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := search.AStar(m.Start(), m.GoalTest, m.Successors, h); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
