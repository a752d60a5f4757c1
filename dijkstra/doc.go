// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative arc costs, driven by an indexed heap with
// decrease-key.
//
// Overview:
//
//   - Single-source and multi-source: every label in sources starts at 0.
//   - The loop stops as soon as the closest unfinalized vertex is at +Inf;
//     remaining vertices are unreachable and keep +Inf.
//   - Finalized vertices are never relaxed again, which is only correct for
//     non-negative costs; a pre-scan rejects negative arcs (ErrNegativeWeight).
//
// API reference:
//
//	func Dijkstra[L comparable](g *core.Graph[L], sources []L, opts ...Option) (*Result[L], error)
//	func Nearest[L comparable](g *core.Graph[L], sources []L, accept func(L) bool, opts ...Option) (L, float64, error)
//	func NewMemo[L comparable](g *core.Graph[L], size int, opts ...Option) (*Memo[L], error)
//
// Options:
//
//   - WithReturnPath():        populate Result.Prev for PathTo.
//   - WithMaxDistance(d):      skip candidates farther than d.
//   - WithTarget(accept):      stop once an accepted vertex is finalized.
//   - WithLogger(*zap.Logger): debug tracing.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNoSource, ErrVertexNotFound: invalid input.
//   - ErrNegativeWeight: wraps the list of every negative arc.
//   - ErrNoPath / ErrPathNotRecorded: from Result.PathTo and Nearest.
//
// Thread safety:
//
//   - Dijkstra reads the graph only; the graph must not be mutated during a
//     run. Memo is not safe for concurrent use.
package dijkstra
