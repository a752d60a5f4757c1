package gridgraph

import (
	"slices"

	"github.com/katalvlaran/lvlpath/bfs"
)

// ConnectedComponents finds all contiguous regions ("islands") of cells
// accepted by land, under conn connectivity. Components are ordered by
// their first cell in row-major order; cells within a component are in
// row-major order too, so each component starts with its first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func ConnectedComponents[T any](grid *Grid[T], land func(T) bool, conn Connectivity) [][]Point {
	isLand := func(p Point) bool {
		v, ok := grid.At(p)
		return ok && land(v)
	}
	g := ToGraph(grid, conn, func(_ *Grid[T], from, to Point) (float64, bool) {
		return 1, isLand(from) && isLand(to)
	})

	seen := make(map[Point]bool)
	var comps [][]Point
	for _, p := range grid.Points() {
		if seen[p] || !isLand(p) {
			continue
		}
		reach := bfs.Reachable(g, p)
		comp := make([]Point, 0, len(reach))
		for q := range reach {
			seen[q] = true
			comp = append(comp, q)
		}
		slices.SortFunc(comp, rowMajor)
		comps = append(comps, comp)
	}
	return comps
}

func rowMajor(a, b Point) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
