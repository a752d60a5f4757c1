package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/dijkstra"
)

// ExpandIsland finds a minimum-conversion path of non-land cells connecting
// component srcComp to component dstComp, as numbered by
// ConnectedComponents. Entering a land cell costs 0 and entering any other
// cell costs 1, so cost is the number of cells to convert.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source Dijkstra from every srcComp cell, stopping at the first
//     finalized dstComp cell.
//  3. Reconstruct the path (start and end land cells included).
//
// Complexity: O(W·H·log(W·H)).
func ExpandIsland[T any](grid *Grid[T], land func(T) bool, conn Connectivity, srcComp, dstComp int, opts ...Option) (path []Point, cost int, err error) {
	comps := ConnectedComponents(grid, land, conn)
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	dstSet := make(map[Point]bool, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dstSet[p] = true
	}

	g := ToGraph(grid, conn, func(gr *Grid[T], _, to Point) (float64, bool) {
		if v, _ := gr.At(to); land(v) {
			return 0, true
		}
		return 1, true
	}, opts...)

	res, err := dijkstra.Dijkstra(g, comps[srcComp],
		dijkstra.WithReturnPath(),
		dijkstra.WithTarget(func(p Point) bool { return dstSet[p] }),
		dijkstra.WithLogger(resolve(opts).Logger),
	)
	if err != nil {
		return nil, 0, err
	}
	if !res.TargetFound {
		return nil, 0, ErrNoPath
	}
	path, err = res.PathTo(res.Target)
	if err != nil {
		return nil, 0, err
	}
	return path, int(res.Dist[res.Target]), nil
}
