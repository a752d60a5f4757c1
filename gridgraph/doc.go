// Package gridgraph maps 2D grids onto core.Graph so that the shortest-path
// and traversal packages can run on them.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T; Parse, Runes, Digits and Bools
//     build grids from text lines.
//   - ToGraph derives directed arcs from an EdgeFunc deciding admission and
//     cost per move; DestinationCost charges the value of the cell entered.
//   - StateGraph multiplies cells by heading and run length (State) so that
//     run-length rules (MoveRule) become plain arc admission.
//   - PipeGraph, Loop, FarthestOnLoop and Interior analyse pipe mazes.
//   - ExpansionGraph charges a factor for entering empty rows and columns;
//     PairDistanceSum sums pairwise distances through a dijkstra.Memo.
//   - ConnectedComponents and ExpandIsland find islands of land cells and
//     the cheapest conversion path between two of them.
//
// Every builder enumerates cells row-major and neighbors clockwise from
// North, so graphs are deterministic.
//
// Complexity:
//
//   - ToGraph, PipeGraph, ExpansionGraph: O(W×H×d).
//   - StateGraph: O(W×H×MaxRun) vertices and arcs.
//   - ExpandIsland: O(W×H×log(W×H)).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed input rows.
//   - ErrBadMoveRule, ErrBadFactor: invalid builder parameters.
//   - ErrNoStart, ErrBadStartPipe: pipe maze without a resolvable start.
//   - ErrComponentIndex, ErrNoPath: island queries.
package gridgraph
