// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and a compact statistics snapshot.

package core

// GraphStats is a snapshot of configuration and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	VertexCount     int
	ArcCount        int
	SelfLoops       int
	ZeroCostArcs    int
	NegativeArcs    int
}

// Directed reports the orientation applied by AddEdge.
func (g *Graph[L]) Directed() bool { return g.directed }

// Stats scans the arc catalog once and returns a GraphStats.
// Complexity: O(E).
func (g *Graph[L]) Stats() GraphStats {
	s := GraphStats{
		DirectedDefault: g.directed,
		VertexCount:     len(g.order),
		ArcCount:        len(g.costs),
	}
	for k, c := range g.costs {
		if k.from == k.to {
			s.SelfLoops++
		}
		switch {
		case c == 0:
			s.ZeroCostArcs++
		case c < 0:
			s.NegativeArcs++
		}
	}
	return s
}
