// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() returns labels in first-registration order.

package core

// InsertVertex registers label with an empty successor list.
// Idempotent: inserting a present label is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[L]) InsertVertex(label L) {
	if _, ok := g.adjacency[label]; ok {
		return
	}
	g.adjacency[label] = nil
	g.order = append(g.order, label)
}

// HasVertex reports whether label was registered.
// Complexity: O(1).
func (g *Graph[L]) HasVertex(label L) bool {
	_, ok := g.adjacency[label]
	return ok
}

// Vertices returns a copy of all labels in first-registration order.
// Complexity: O(V).
func (g *Graph[L]) Vertices() []L {
	out := make([]L, len(g.order))
	copy(out, g.order)
	return out
}

// VertexCount returns |V|.
func (g *Graph[L]) VertexCount() int { return len(g.order) }
