// Package builder provides deterministic generators of integer-labeled
// core.Graph fixtures for tests, benchmarks and examples.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): creates the graph, resolves options
//     and applies constructors in order.
//   - Constructors: Cycle(n), Path(n), Complete(n), Grid(rows, cols),
//     RandomSparse(n, p). Vertices are labeled 0..n-1.
//   - Options: WithSeed, WithRand, WithWeightFn.
//   - Weight distributions: DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntWeightFn.
//
// Guarantees:
//
//   - Determinism: equal inputs, seed and constructor order give identical
//     graphs, including insertion order of neighbors.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) and never panic; option
//     constructors panic on nil arguments.
//   - Generated costs are non-negative, so every fixture is a valid
//     Dijkstra input.
package builder
