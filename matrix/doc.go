// Package matrix provides a dense float64 matrix and the Floyd–Warshall
// all-pairs shortest-path closure over it.
//
// Two entry points:
//
//	func FloydWarshall(d *Dense) error
//	func AllPairs[L comparable](g *core.Graph[L], opts ...Option) (*Distances[L], error)
//
// FloydWarshall works on raw matrices where +Inf means "no arc"; AllPairs
// builds that matrix from a graph and keeps the label ↔ index mapping.
//
// Diagonal policy:
//
// The closure never writes zeros on the diagonal by itself. dist(v,v) is
// the cheapest cycle through v, or +Inf when v lies on no cycle. Use
// WithZeroDiagonal (or set the diagonal manually before FloydWarshall) for
// the conventional dist(v,v) = 0. A negative diagonal entry after the
// closure is reported as ErrNegativeCycle.
//
// Loop order is fixed (k → i → j) and only strict improvements are
// written, so results are deterministic.
package matrix
