// File: methods_edges.go
// Role: Arc insertion & queries.
//
// Policy:
//   - Inserting an arc registers both endpoints, so the adjacency map never
//     holds a successor that is not itself a vertex.
//   - A second insertion of the same ordered pair overwrites its cost
//     (last write wins) and does not duplicate the successor entry.
//
// Determinism:
//   - Edges() enumerates sources in vertex order, then successors in arc
//     insertion order.

package core

// InsertDirectedEdge records the arc a→b with the given cost.
// Complexity: O(1) amortized.
func (g *Graph[L]) InsertDirectedEdge(a, b L, cost float64) {
	g.InsertVertex(a)
	g.InsertVertex(b)

	key := arc[L]{from: a, to: b}
	if _, exists := g.costs[key]; !exists {
		g.adjacency[a] = append(g.adjacency[a], b)
	}
	g.costs[key] = cost
}

// InsertUndirectedEdge records both arcs a→b and b→a with the same cost.
// Each direction keeps its own last-write-wins cost afterwards.
func (g *Graph[L]) InsertUndirectedEdge(a, b L, cost float64) {
	g.InsertDirectedEdge(a, b, cost)
	if a != b {
		g.InsertDirectedEdge(b, a, cost)
	}
}

// AddEdge inserts a→b using the graph's default orientation (WithDirected).
func (g *Graph[L]) AddEdge(a, b L, cost float64) {
	if g.directed {
		g.InsertDirectedEdge(a, b, cost)
		return
	}
	g.InsertUndirectedEdge(a, b, cost)
}

// HasEdge reports whether the arc a→b exists. Unknown labels yield false.
func (g *Graph[L]) HasEdge(a, b L) bool {
	_, ok := g.costs[arc[L]{from: a, to: b}]
	return ok
}

// Cost returns the cost of a→b, or Inf when there is no such arc.
// It never fails; shortest-path relaxation relies on the Inf sentinel.
// Complexity: O(1).
func (g *Graph[L]) Cost(a, b L) float64 {
	if c, ok := g.costs[arc[L]{from: a, to: b}]; ok {
		return c
	}
	return Inf
}

// Edge returns the arc a→b or ErrEdgeNotFound.
func (g *Graph[L]) Edge(a, b L) (Edge[L], error) {
	c, ok := g.costs[arc[L]{from: a, to: b}]
	if !ok {
		return Edge[L]{}, ErrEdgeNotFound
	}
	return Edge[L]{From: a, To: b, Cost: c}, nil
}

// Edges returns every arc in deterministic order.
// Complexity: O(V+E).
func (g *Graph[L]) Edges() []Edge[L] {
	out := make([]Edge[L], 0, len(g.costs))
	for _, u := range g.order {
		for _, v := range g.adjacency[u] {
			out = append(out, Edge[L]{From: u, To: v, Cost: g.costs[arc[L]{from: u, to: v}]})
		}
	}
	return out
}

// NegativeEdges returns every arc whose cost is below zero.
func (g *Graph[L]) NegativeEdges() []Edge[L] {
	var out []Edge[L]
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			out = append(out, e)
		}
	}
	return out
}

// EdgeCount returns the number of arcs (an undirected edge counts twice,
// a self-loop once).
func (g *Graph[L]) EdgeCount() int { return len(g.costs) }
