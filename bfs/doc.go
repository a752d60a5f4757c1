// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - BFS returns a Result: Order, Depth, Parent, plus Visited, Reachable
//     and PathTo helpers.
//   - Reachable(g, source) is the plain reachable-set query; it never
//     fails and treats an unknown source as an isolated vertex.
//
// Determinism
//
//	Neighbors are expanded in arc insertion order, so the visit sequence
//	is reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn): skip arcs for which fn(cur, nbr) == false.
//   - WithOnVisit(fn):        hook on dequeue; returning an error aborts.
//   - WithLogger(l):          zap debug tracing.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
//   - Wrapped OnVisit errors; the partial Result is still returned.
package bfs
