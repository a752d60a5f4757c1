// File: methods_adjacent.go
// Role: Adjacency queries.

package core

import (
	"fmt"
	"slices"
)

// IsAdjacent reports whether b is a successor of a.
// Unlike the forgiving readers, an unknown a is a contract violation and
// yields ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph[L]) IsAdjacent(a, b L) (bool, error) {
	if _, ok := g.adjacency[a]; !ok {
		return false, fmt.Errorf("%w: %v", ErrVertexNotFound, a)
	}
	return g.HasEdge(a, b), nil
}

// Neighbors returns the successors of a in arc insertion order.
// An unknown a yields an empty slice. The slice is read-only: it shares
// storage with the graph, so element writes corrupt the adjacency list.
// Its capacity is clipped, so appending to it copies instead.
// Complexity: O(1).
func (g *Graph[L]) Neighbors(a L) []L {
	return slices.Clip(g.adjacency[a])
}

// OutDegree returns the number of successors of a (0 for unknown labels).
func (g *Graph[L]) OutDegree(a L) int {
	return len(g.adjacency[a])
}
