package dijkstra

import (
	"fmt"
	"math"
)

// Result holds the outcome of one Dijkstra run. It is owned by the caller
// and independent of the graph's lifetime.
type Result[L comparable] struct {
	// Dist maps every vertex to its distance from the nearest source
	// (+Inf when unreachable or beyond MaxDistance).
	Dist map[L]float64

	// Prev maps every reached non-source vertex to its predecessor on one
	// shortest path. Nil unless WithReturnPath was given.
	Prev map[L]L

	// Sources lists the distinct sources in vertex order.
	Sources []L

	// Settled counts finalized vertices.
	Settled int

	// Target is the accepted vertex when WithTarget stopped the run.
	Target      L
	TargetFound bool

	sources map[L]struct{}
}

// Distance returns the distance to v, or +Inf for unknown or unreached v.
func (r *Result[L]) Distance(v L) float64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}
	return math.Inf(1)
}

// Reached reports whether v has a finite distance.
func (r *Result[L]) Reached(v L) bool {
	return !math.IsInf(r.Distance(v), 1)
}

// Finite returns only the vertices with a finite distance.
func (r *Result[L]) Finite() map[L]float64 {
	out := make(map[L]float64, len(r.Dist))
	for v, d := range r.Dist {
		if !math.IsInf(d, 1) {
			out[v] = d
		}
	}
	return out
}

// Farthest returns a reached vertex with the greatest finite distance.
// ok is false when nothing was reached. Ties are broken arbitrarily.
func (r *Result[L]) Farthest() (v L, d float64, ok bool) {
	d = math.Inf(-1)
	for u, du := range r.Dist {
		if math.IsInf(du, 1) {
			continue
		}
		if du > d {
			v, d, ok = u, du, true
		}
	}
	if !ok {
		d = math.Inf(1)
	}
	return v, d, ok
}

// PathTo reconstructs the vertex sequence from a source to dst.
// Returns ErrPathNotRecorded without WithReturnPath, ErrNoPath when dst
// was not reached.
func (r *Result[L]) PathTo(dst L) ([]L, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if !r.Reached(dst) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dst)
	}

	path := []L{dst}
	for cur := dst; ; {
		if _, isSource := r.sources[cur]; isSource {
			break
		}
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrNoPath, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
