// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative arc costs.
//
// Every vertex is seeded into an indexed min-heap (sources at 0, the rest at
// +Inf). The loop extracts the closest unfinalized vertex, stops as soon as
// that distance is +Inf, and relaxes the arcs to unfinalized successors with
// an in-place decrease-key (heap.Indexed.UpdatePriority). No stale entries
// ever sit in the heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package dijkstra

import (
	"fmt"
	"math"

	cerrors "cloudeng.io/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/heap"
)

// Stop reasons reported in debug logs.
const (
	stopExhausted   = "exhausted"
	stopUnreachable = "unreachable"
	stopTarget      = "target"
)

// Dijkstra computes shortest distances from the nearest of the given
// sources to every vertex of g.
//
// Returns:
//
//   - *Result: Dist holds every vertex (+Inf when unreachable); Prev is set
//     only with WithReturnPath.
//   - err: ErrNilGraph, ErrNoSource, ErrVertexNotFound, ErrNegativeWeight
//     or ErrNaNWeight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil.
//  2. sources must be non-empty and every source must be a vertex of g.
//  3. No arc of g may have a negative or NaN cost (all offenders are
//     reported).
//
// The graph is never modified.
func Dijkstra[L comparable](g *core.Graph[L], sources []L, opts ...Option) (*Result[L], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, s)
		}
	}
	if err := checkNonNegative(g); err != nil {
		return nil, err
	}

	var accept func(L) bool
	if cfg.target != nil {
		fn, ok := cfg.target.(func(L) bool)
		if !ok {
			return nil, fmt.Errorf("dijkstra: target predicate has type %T, want func(%T) bool", cfg.target, *new(L))
		}
		accept = fn
	}

	r, err := newRunner(g, cfg, sources, accept)
	if err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// Nearest returns the first vertex accepted by accept in order of
// increasing distance from sources, together with that distance.
// It is the "minimum cost to any goal state" query used on state graphs,
// where many labels share the same grid cell.
// Returns ErrNoPath when no accepted vertex is reachable.
func Nearest[L comparable](g *core.Graph[L], sources []L, accept func(L) bool, opts ...Option) (L, float64, error) {
	var zero L
	if accept == nil {
		return zero, math.Inf(1), fmt.Errorf("dijkstra: Nearest: nil predicate")
	}
	opts = append(opts[:len(opts):len(opts)], WithTarget(accept))
	res, err := Dijkstra(g, sources, opts...)
	if err != nil {
		return zero, math.Inf(1), err
	}
	if !res.TargetFound {
		return zero, math.Inf(1), ErrNoPath
	}

	return res.Target, res.Dist[res.Target], nil
}

// checkNonNegative scans every arc once and reports all negative and NaN
// costs. The result matches ErrNegativeWeight and/or ErrNaNWeight.
func checkNonNegative[L comparable](g *core.Graph[L]) error {
	errs := &cerrors.M{}
	for _, e := range g.Edges() {
		switch {
		case math.IsNaN(e.Cost):
			errs.Append(fmt.Errorf("%w: edge %v→%v", ErrNaNWeight, e.From, e.To))
		case e.Cost < 0:
			errs.Append(fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Cost))
		}
	}
	return errs.Err()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[L comparable] struct {
	g         *core.Graph[L]
	options   Options
	accept    func(L) bool
	pq        *heap.Indexed[L, float64]
	finalized map[L]bool
	res       *Result[L]
	log       *zap.Logger
}

// newRunner seeds distances and the heap in O(V).
func newRunner[L comparable](g *core.Graph[L], cfg Options, sources []L, accept func(L) bool) (*runner[L], error) {
	vertices := g.Vertices()
	n := len(vertices)

	src := make(map[L]struct{}, len(sources))
	for _, s := range sources {
		src[s] = struct{}{}
	}

	res := &Result[L]{
		Dist:    make(map[L]float64, n),
		Sources: make([]L, 0, len(src)),
		sources: src,
	}
	if cfg.ReturnPath {
		res.Prev = make(map[L]L, n)
	}

	items := make([]heap.Item[L, float64], n)
	for i, v := range vertices {
		d := math.Inf(1)
		if _, ok := src[v]; ok {
			d = 0
			res.Sources = append(res.Sources, v)
		}
		res.Dist[v] = d
		items[i] = heap.Item[L, float64]{Key: v, Priority: d}
	}

	pq, err := heap.New(items, func(a, b float64) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("dijkstra: seeding heap: %w", err)
	}

	return &runner[L]{
		g:         g,
		options:   cfg,
		accept:    accept,
		pq:        pq,
		finalized: make(map[L]bool, n),
		res:       res,
		log:       cfg.Logger,
	}, nil
}

// process repeatedly finalizes the closest vertex and relaxes its arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - The closest remaining vertex is at +Inf (the rest is unreachable).
//   - A target vertex has been finalized.
func (r *runner[L]) process() error {
	r.log.Debug("dijkstra: start",
		zap.Int("vertices", r.g.VertexCount()),
		zap.Int("arcs", r.g.EdgeCount()),
		zap.Int("sources", len(r.res.Sources)),
	)

	reason := stopExhausted
	for !r.pq.IsEmpty() {
		u, d, err := r.pq.ExtractTop()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if math.IsInf(d, 1) {
			reason = stopUnreachable
			break
		}

		r.finalized[u] = true
		r.res.Settled++

		if r.accept != nil && r.accept(u) {
			r.res.Target = u
			r.res.TargetFound = true
			reason = stopTarget
			break
		}

		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	r.log.Debug("dijkstra: done",
		zap.Int("settled", r.res.Settled),
		zap.Int("pending", r.pq.Len()),
		zap.String("stop", reason),
	)

	return nil
}

// relax improves tentative distances of u's unfinalized successors.
// Assumes dist[u] == d is final.
func (r *runner[L]) relax(u L, d float64) error {
	for _, v := range r.g.Neighbors(u) {
		if r.finalized[v] {
			continue
		}

		cand := d + r.g.Cost(u, v)
		if cand > r.options.MaxDistance {
			continue
		}
		// strict improvement only; ties keep the first predecessor found
		if cand >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = cand
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		if err := r.pq.UpdatePriority(v, cand); err != nil {
			return fmt.Errorf("dijkstra: relaxing %v→%v: %w", u, v, err)
		}
	}

	return nil
}
