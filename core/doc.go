// Package core provides the generic labeled Graph used by every algorithm in
// lvlpath.
//
// A Graph[L] maps each vertex label to its successors and keeps a scalar
// float64 cost per ordered pair of labels:
//
//   - Labels: any comparable type. Prefer small structs for composite state
//     (position + direction + run length) over formatted strings.
//   - Arcs: InsertDirectedEdge / InsertUndirectedEdge / AddEdge. Both
//     endpoints are registered automatically; re-inserting a pair
//     overwrites its cost (last write wins).
//   - Costs: Cost(a,b) returns Inf when there is no arc, never an error.
//
// Lookup policy:
//
//	HasVertex(l)      bool, never fails
//	Neighbors(a)      empty for unknown a
//	Cost(a, b)        Inf for unknown pair
//	IsAdjacent(a, b)  ErrVertexNotFound for unknown a (strict)
//
// Core methods:
//
//	InsertVertex(l)                  // O(1), idempotent
//	InsertDirectedEdge(a,b,cost)     // O(1) amortized
//	InsertUndirectedEdge(a,b,cost)   // two arcs
//	Vertices() []L                   // first-registration order
//	Neighbors(a) []L                 // arc insertion order, read-only view
//	Edges() []Edge[L]                // deterministic
//	Clone() *Graph[L]                // deep copy
//
// Neighbors hands out a view of the adjacency list rather than a copy, so
// relaxation loops allocate nothing. Never write through it; append is safe
// because the view's capacity is clipped.
//
// Graph is not safe for concurrent mutation. Algorithms treat it as an
// immutable snapshot and never modify it.
package core
