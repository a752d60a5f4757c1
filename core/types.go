// SPDX-License-Identifier: MIT
// Package: lvlpath/core
//
// types.go: Graph, Edge, GraphOption, sentinel errors and NewGraph.
//
// Lookup policy (uniform across the package):
//   - Forgiving reads: Neighbors / Cost / HasEdge / HasVertex never fail;
//     unknown labels yield an empty slice, Inf or false respectively.
//   - Strict reads: IsAdjacent returns ErrVertexNotFound for an unknown
//     source so that mistyped composite labels surface at the call site.

package core

import (
	"errors"
	"math"
)

// Inf is the distance/cost sentinel for "no edge" and "unreachable".
// It is distinct from a real zero cost.
var Inf = math.Inf(1)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a label never inserted.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a directed arc From→To with its traversal Cost.
// An undirected connection is stored as two arcs.
type Edge[L comparable] struct {
	From L
	To   L
	Cost float64
}

// arc is the ordered pair used as the cost-map key.
type arc[L comparable] struct {
	from, to L
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*config)

type config struct {
	directed bool
}

// WithDirected sets the orientation used by AddEdge
// (true = one arc, false = both arcs). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// Graph is a labeled adjacency-list graph with a scalar cost per arc.
//
// Labels are the sole identity of a vertex: any comparable value works,
// including composite structs that encode grid position plus extra state.
//
// Storage:
//
//	order[i]          first-registration order of vertices
//	adjacency[a]      successors of a, in arc insertion order, duplicate-free
//	costs[(a,b)]      cost of arc a→b; presence means the arc exists
//
// Graph is not safe for concurrent mutation. It is built once and then
// read by shortest-path queries, which never modify it.
type Graph[L comparable] struct {
	directed bool

	order     []L
	adjacency map[L][]L
	costs     map[arc[L]]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[L comparable](opts ...GraphOption) *Graph[L] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[L]{
		directed:  cfg.directed,
		adjacency: make(map[L][]L),
		costs:     make(map[arc[L]]float64),
	}
}
