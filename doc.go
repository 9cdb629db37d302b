// Package statespace is your in-memory toolkit for searching implicit
// state spaces — graphs that are never materialized, only described by
// a successor function and a goal test.
//
// 🚀 What is statespace?
//
//	A small, generic search engine that brings together:
//		• Frontier containers: stack (LIFO), queue (FIFO), priority heap
//		• Uninformed traversals: depth-first, breadth-first
//		• Cost-guided search: A* with pluggable heuristics, uniform-cost
//		• Provenance nodes: every result carries its full discovery path
//		• Stepwise drivers: expand one state at a time, inspect progress
//		• Maze playground: grid worlds, heuristics, YAML scenarios
//
// ✨ Why choose statespace?
//
//   - State-agnostic – any comparable type can be a state; no graph type,
//     no adjacency structure, no registration required
//   - Rock-solid guarantees – sentinel errors, eager validation, in-code docs
//   - Deterministic – successor order is preserved; same inputs, same path
//   - Extensible – swap the frontier, the edge-cost model or the heuristic
//     without touching the engine
//
// Under the hood, everything is organized under three subpackages:
//
//	frontier/ — generic LIFO/FIFO/priority containers behind one interface
//	search/   — engines (DFS, BFS, A*), search nodes, steppers, path rebuild
//	maze/     — grid-world adapter: generation, heuristics, YAML scenarios
//
// Quick ASCII example:
//
//	S . . X .
//	. X . X .
//	. X . . G
//
//	a 3×5 maze; breadth-first finds the shortest route from S to G,
//	A* finds the same route while expanding fewer cells.
//
// Dive into the package docs for full examples and the cmd/mazesolve
// binary for an end-to-end driver.
//
//	go get github.com/katalvlaran/statespace
package statespace
