package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// ExpansionGraph links orthogonal neighbors of grid. A horizontal move into
// an empty column, or a vertical move into an empty row, costs factor; every
// other move costs 1. A row or column is empty when none of its cells is
// true. Returns ErrBadFactor unless factor > 0.
func ExpansionGraph(grid *Grid[bool], factor float64, opts ...Option) (*core.Graph[Point], error) {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return nil, fmt.Errorf("%w: %g", ErrBadFactor, factor)
	}
	emptyRows, emptyCols := emptyLines(grid)

	return ToGraph(grid, Conn4, func(_ *Grid[bool], from, to Point) (float64, bool) {
		if (to.X != from.X && emptyCols[to.X]) || (to.Y != from.Y && emptyRows[to.Y]) {
			return factor, true
		}
		return 1, true
	}, opts...), nil
}

func emptyLines(grid *Grid[bool]) (rows, cols []bool) {
	rows = make([]bool, grid.Height())
	cols = make([]bool, grid.Width())
	for i := range rows {
		rows[i] = true
	}
	for i := range cols {
		cols[i] = true
	}
	for _, p := range grid.Points() {
		if v, _ := grid.At(p); v {
			rows[p.Y] = false
			cols[p.X] = false
		}
	}
	return rows, cols
}

// Marked returns the true cells of grid in row-major order.
func Marked(grid *Grid[bool]) []Point {
	var out []Point
	for _, p := range grid.Points() {
		if v, _ := grid.At(p); v {
			out = append(out, p)
		}
	}
	return out
}

// PairDistanceSum sums the shortest distance of every unordered pair of
// points. Single-source runs are shared through a dijkstra.Memo holding at
// most memoSize sources.
func PairDistanceSum(g *core.Graph[Point], points []Point, memoSize int) (float64, error) {
	memo, err := dijkstra.NewMemo(g, memoSize)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d, err := memo.Distance(points[i], points[j])
			if err != nil {
				return 0, err
			}
			sum += d
		}
	}
	return sum, nil
}
