package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlpath/core"
)

type point struct{ X, Y int }

// BenchmarkBuildGrid measures building a 200×200 four-connected grid graph.
func BenchmarkBuildGrid(b *testing.B) {
	const n = 200
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph[point]()
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if x+1 < n {
					g.InsertUndirectedEdge(point{x, y}, point{x + 1, y}, 1)
				}
				if y+1 < n {
					g.InsertUndirectedEdge(point{x, y}, point{x, y + 1}, 1)
				}
			}
		}
	}
}

// BenchmarkCost measures arc cost lookups.
func BenchmarkCost(b *testing.B) {
	g := core.NewGraph[int]()
	for i := 0; i < 1000; i++ {
		g.InsertDirectedEdge(i, i+1, float64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Cost(i%1000, i%1000+1)
	}
}
