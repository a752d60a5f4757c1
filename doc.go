// Package lvlpath is a small generic toolkit for shortest-path work on
// labeled graphs, with a grid-to-graph layer for maps, mazes and state
// machines laid over a 2D board.
//
// 🚀 What is inside?
//
//	heap/      — Indexed[K,P]: binary heap with O(log n) priority updates
//	core/      — Graph[L]: labeled adjacency list, float64 costs, Inf sentinel
//	dijkstra/  — single/multi-source Dijkstra, target search, per-source Memo
//	matrix/    — Dense matrix, in-place Floyd–Warshall, AllPairs[L]
//	bfs/       — FIFO traversal, reachable set, fewest-hop paths
//	gridgraph/ — Grid[T] → Graph[Point]; run-limited state graphs, pipe
//	             loops, expansion costs, island bridging
//	builder/   — deterministic topologies (cycle, path, complete, grid,
//	             random sparse) for tests and benchmarks
//
// Any comparable Go value can be a vertex label. Composite search state is a
// struct (see gridgraph.State), never a formatted string.
//
// Quick example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	g := core.NewGraph[string]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "D", 1)
//	g.AddEdge("A", "C", 4)
//	g.AddEdge("C", "D", 1)
//	res, _ := dijkstra.Dijkstra(g, []string{"A"})
//	res.Dist["C"] // 3
//
// Graphs are not safe for concurrent mutation; treat them as read-only while
// a query runs. Algorithms log through go.uber.org/zap when given a logger
// and stay silent otherwise.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
