// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Contract:
//   - BuildGraph creates g, resolves cfg, runs constructors in order.
//   - Constructors label vertices 0..n-1; composing two constructors merges
//     them on shared labels.
//   - Same inputs, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a new core.Graph[int] with graph options gopts,
// resolves the builder configuration from bopts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link inserts u→v following the graph orientation with the next weight.
func link(g *core.Graph[int], cfg builderConfig, u, v int) {
	g.AddEdge(u, v, cfg.weightFn(cfg.rng))
}

// addVertices inserts labels 0..n-1 in ascending order.
func addVertices(g *core.Graph[int], n int) {
	for i := 0; i < n; i++ {
		g.InsertVertex(i)
	}
}
