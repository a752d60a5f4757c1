// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns a deep copy of the graph: orientation flag, vertex order,
// adjacency and costs. Labels are copied by value.
// Complexity: O(V+E).
func (g *Graph[L]) Clone() *Graph[L] {
	clone := NewGraph[L](WithDirected(g.directed))
	for _, v := range g.order {
		clone.InsertVertex(v)
	}
	for _, e := range g.Edges() {
		clone.InsertDirectedEdge(e.From, e.To, e.Cost)
	}
	return clone
}

// CloneEmpty returns a graph with the same vertices and no arcs.
func (g *Graph[L]) CloneEmpty() *Graph[L] {
	clone := NewGraph[L](WithDirected(g.directed))
	for _, v := range g.order {
		clone.InsertVertex(v)
	}
	return clone
}
