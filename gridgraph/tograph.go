package gridgraph

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlpath/core"
)

// Number is any numeric cell type usable as a cost.
type Number interface {
	constraints.Integer | constraints.Float
}

// EdgeFunc decides whether the move from → to is an arc and at what cost.
// Both points are in bounds when it is called.
type EdgeFunc[T any] func(g *Grid[T], from, to Point) (cost float64, ok bool)

// ToGraph converts grid into a directed core.Graph over Points. Every cell
// becomes a vertex; for every cell p and every in-bounds neighbor q under
// conn, the arc p→q is added when edge admits it.
//
// Cells are visited row-major and neighbors clockwise, so the result is
// deterministic. Complexity: O(W×H×d).
func ToGraph[T any](grid *Grid[T], conn Connectivity, edge EdgeFunc[T], opts ...Option) *core.Graph[Point] {
	o := resolve(opts)
	g := core.NewGraph[Point](core.WithDirected(true))
	for _, p := range grid.Points() {
		g.InsertVertex(p)
	}
	for _, p := range grid.Points() {
		for _, q := range grid.Neighbors(p, conn) {
			if cost, ok := edge(grid, p, q); ok {
				g.InsertDirectedEdge(p, q, cost)
			}
		}
	}
	logBuilt(o.Logger, "grid", g)
	return g
}

// DestinationCost admits every move and charges the destination cell value.
func DestinationCost[T Number](g *Grid[T], _, to Point) (float64, bool) {
	v, ok := g.At(to)
	return float64(v), ok
}

// UnitCost admits every move at cost 1.
func UnitCost[T any](_ *Grid[T], _, _ Point) (float64, bool) {
	return 1, true
}

// Passable admits moves into cells accepted by open, at cost 1.
func Passable[T any](open func(T) bool) EdgeFunc[T] {
	return func(g *Grid[T], _, to Point) (float64, bool) {
		v, _ := g.At(to)
		return 1, open(v)
	}
}

func logBuilt[L comparable](log *zap.Logger, kind string, g *core.Graph[L]) {
	log.Debug("gridgraph: built",
		zap.String("kind", kind),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("arcs", g.EdgeCount()))
}
