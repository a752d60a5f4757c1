// SPDX-License-Identifier: MIT
// Package: matrix
//
// allpairs.go - labeled all-pairs distances over a core.Graph.

package matrix

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlpath/core"
)

// Distances is the all-pairs distance table of a graph, indexed by label.
type Distances[L comparable] struct {
	labels []L
	index  map[L]int
	mat    *Dense
}

// AllPairs builds the n×n table from g.Cost (so +Inf where there is no arc)
// in vertex order, then closes it with FloydWarshall.
//
// The diagonal starts at g.Cost(v, v): +Inf unless v has a self-loop. Pass
// WithZeroDiagonal to seed it with min(0, cost(v,v)) instead.
//
// Errors: ErrNilGraph, or ErrNegativeCycle (wrapped) together with the
// relaxed table.
func AllPairs[L comparable](g *core.Graph[L], opts ...Option) (*Distances[L], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	labels := g.Vertices()
	n := len(labels)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	mat.Fill(math.Inf(1))

	index := make(map[L]int, n)
	for i, v := range labels {
		index[v] = i
	}
	for _, e := range g.Edges() {
		mat.data[index[e.From]*n+index[e.To]] = e.Cost
	}
	if cfg.ZeroDiagonal {
		for i := 0; i < n; i++ {
			if mat.data[i*n+i] > 0 {
				mat.data[i*n+i] = 0
			}
		}
	}

	cfg.Logger.Debug("floydwarshall: start",
		zap.Int("vertices", n),
		zap.Int("arcs", g.EdgeCount()),
		zap.Bool("zero_diagonal", cfg.ZeroDiagonal))

	d := &Distances[L]{labels: labels, index: index, mat: mat}
	if err = FloydWarshall(mat); err != nil {
		cfg.Logger.Debug("floydwarshall: done", zap.Error(err))
		return d, fmt.Errorf("AllPairs: %w", err)
	}
	cfg.Logger.Debug("floydwarshall: done", zap.Int("vertices", n))

	return d, nil
}

// Dist returns the shortest distance a→b, or +Inf when either label is
// unknown or b is unreachable from a.
func (d *Distances[L]) Dist(a, b L) float64 {
	i, ok := d.index[a]
	if !ok {
		return math.Inf(1)
	}
	j, ok := d.index[b]
	if !ok {
		return math.Inf(1)
	}

	return d.mat.data[i*d.mat.c+j]
}

// Index returns the row/column of label v.
func (d *Distances[L]) Index(v L) (int, bool) {
	i, ok := d.index[v]
	return i, ok
}

// Labels returns the labels in row order (a copy).
func (d *Distances[L]) Labels() []L {
	out := make([]L, len(d.labels))
	copy(out, d.labels)
	return out
}

// Matrix returns the underlying table. Mutating it changes Dist results.
func (d *Distances[L]) Matrix() *Dense { return d.mat }
