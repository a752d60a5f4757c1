// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, small hand-checked graphs, multi-source runs, early stops,
// path reconstruction and agreement with brute-force enumeration.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

var inf = math.Inf(1)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra[string](nil, []string{"A"})
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_NoSource(t *testing.T) {
	g := core.NewGraph[string]()
	g.InsertVertex("A")
	_, err := dijkstra.Dijkstra(g, nil)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph[string]()
	g.InsertVertex("A")
	_, err := dijkstra.Dijkstra(g, []string{"X"})
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightsAllReported(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B", -5)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", -2)

	_, err := dijkstra.Dijkstra(g, []string{"A"})
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
	assert.Contains(t, err.Error(), "C→D")
}

func TestDijkstra_NaNWeightRejected(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("S", "X", math.NaN())
	g.AddEdge("S", "Y", 5)

	_, err := dijkstra.Dijkstra(g, []string{"S"})
	require.ErrorIs(t, err, dijkstra.ErrNaNWeight)
	assert.NotErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "S→X")

	g.AddEdge("Y", "X", -1)
	_, err = dijkstra.Dijkstra(g, []string{"S"})
	require.ErrorIs(t, err, dijkstra.ErrNaNWeight)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
}

func TestDijkstra_TargetTypeMismatch(t *testing.T) {
	g := core.NewGraph[string]()
	g.InsertVertex("A")
	_, err := dijkstra.Dijkstra(g, []string{"A"}, dijkstra.WithTarget(func(int) bool { return true }))
	require.Error(t, err)
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_ConcreteScenario(t *testing.T) {
	// A-B(1), B-C(2), C-D(1), A-D(10): D is reached via A-B-C-D.
	g := core.NewGraph[string]()
	g.InsertUndirectedEdge("A", "B", 1)
	g.InsertUndirectedEdge("B", "C", 2)
	g.InsertUndirectedEdge("C", "D", 1)
	g.InsertUndirectedEdge("A", "D", 10)

	res, err := dijkstra.Dijkstra(g, []string{"A"}, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}, res.Dist)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestDijkstra_FourCycle(t *testing.T) {
	// 0-1(1), 1-2(2), 2-3(3), 3-0(4): dist(0,2) = min(1+2, 4+3) = 3.
	g := core.NewGraph[int]()
	g.InsertUndirectedEdge(0, 1, 1)
	g.InsertUndirectedEdge(1, 2, 2)
	g.InsertUndirectedEdge(2, 3, 3)
	g.InsertUndirectedEdge(3, 0, 4)

	res, err := dijkstra.Dijkstra(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist[2])
	assert.Equal(t, 4.0, res.Dist[3])
	assert.Nil(t, res.Prev, "Prev is nil without WithReturnPath")
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "A", 1)
	g.InsertVertex("Z")

	res, err := dijkstra.Dijkstra(g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist["B"])
	assert.Equal(t, inf, res.Dist["C"])
	assert.Equal(t, inf, res.Dist["Z"])
	assert.False(t, res.Reached("Z"))
	assert.Equal(t, 2, res.Settled, "early stop once the minimum is +Inf")
	assert.Equal(t, map[string]float64{"A": 0, "B": 1}, res.Finite())
}

func TestDijkstra_MultiSource(t *testing.T) {
	// path 0-1-2-3-4-5-6 with unit costs, sources at both ends.
	g := core.NewGraph[int]()
	for i := 0; i < 6; i++ {
		g.InsertUndirectedEdge(i, i+1, 1)
	}

	res, err := dijkstra.Dijkstra(g, []int{0, 6, 0}, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 6}, res.Sources)
	for v, want := range map[int]float64{0: 0, 1: 1, 2: 2, 3: 3, 4: 2, 5: 1, 6: 0} {
		assert.Equalf(t, want, res.Dist[v], "dist[%d]", v)
	}

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5}, path)
}

func TestDijkstra_ZeroCostArcs(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("A", "C", 1)

	res, err := dijkstra.Dijkstra(g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Dist["C"])
}

func TestDijkstra_GraphNotMutated(t *testing.T) {
	g := core.NewGraph[string]()
	g.InsertUndirectedEdge("A", "B", 2)
	g.InsertUndirectedEdge("B", "C", 2)
	before := g.Edges()

	_, err := dijkstra.Dijkstra(g, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 10; i++ {
		g.InsertUndirectedEdge(i, i+1, 1)
	}

	res, err := dijkstra.Dijkstra(g, []int{0}, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist[3])
	assert.Equal(t, inf, res.Dist[4])
	assert.Equal(t, 4, res.Settled)
}

// ------------------------------------------------------------------------
// 3. Paths, targets and aggregates
// ------------------------------------------------------------------------

func TestPathTo_Errors(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.InsertVertex("C")

	res, err := dijkstra.Dijkstra(g, []string{"A"})
	require.NoError(t, err)
	_, err = res.PathTo("B")
	require.ErrorIs(t, err, dijkstra.ErrPathNotRecorded)

	res, err = dijkstra.Dijkstra(g, []string{"A"}, dijkstra.WithReturnPath())
	require.NoError(t, err)
	_, err = res.PathTo("C")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestNearest(t *testing.T) {
	g := core.NewGraph[string]()
	g.InsertUndirectedEdge("start", "a", 5)
	g.InsertUndirectedEdge("start", "b", 1)
	g.InsertUndirectedEdge("b", "goal:1", 7)
	g.InsertUndirectedEdge("a", "goal:2", 1)

	isGoal := func(s string) bool { return len(s) > 5 && s[:5] == "goal:" }
	v, d, err := dijkstra.Nearest(g, []string{"start"}, isGoal)
	require.NoError(t, err)
	assert.Equal(t, "goal:2", v)
	assert.Equal(t, 6.0, d)

	_, _, err = dijkstra.Nearest(g, []string{"start"}, func(string) bool { return false })
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestFarthest(t *testing.T) {
	g := core.NewGraph[int]()
	g.InsertUndirectedEdge(0, 1, 2)
	g.InsertUndirectedEdge(1, 2, 2)
	g.InsertVertex(9)

	res, err := dijkstra.Dijkstra(g, []int{0})
	require.NoError(t, err)
	v, d, ok := res.Farthest()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 4.0, d)
}

func TestDijkstra_LogsDebugFields(t *testing.T) {
	core2, logs := observer.New(zapcore.DebugLevel)
	g := core.NewGraph[string]()
	g.InsertUndirectedEdge("A", "B", 1)
	g.InsertVertex("C")

	_, err := dijkstra.Dijkstra(g, []string{"A"}, dijkstra.WithLogger(zap.New(core2)))
	require.NoError(t, err)

	done := logs.FilterMessage("dijkstra: done").All()
	require.Len(t, done, 1)
	assert.Equal(t, "unreachable", done[0].ContextMap()["stop"])
	assert.EqualValues(t, 2, done[0].ContextMap()["settled"])
}

// ------------------------------------------------------------------------
// 4. Agreement with brute force
// ------------------------------------------------------------------------

// bruteForce enumerates every simple path from src with DFS.
func bruteForce(g *core.Graph[int], src int) map[int]float64 {
	best := map[int]float64{}
	for _, v := range g.Vertices() {
		best[v] = inf
	}
	onPath := map[int]bool{}
	var walk func(u int, d float64)
	walk = func(u int, d float64) {
		if d < best[u] {
			best[u] = d
		}
		onPath[u] = true
		for _, v := range g.Neighbors(u) {
			if !onPath[v] {
				walk(v, d+g.Cost(u, v))
			}
		}
		onPath[u] = false
	}
	walk(src, 0)
	return best
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	weight := func(r *rand.Rand) float64 { return float64(r.Intn(10)) }
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(seed%2 == 0)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(weight)},
			builder.RandomSparse(7, 0.35),
		)
		require.NoError(t, err)

		for _, src := range g.Vertices() {
			res, err := dijkstra.Dijkstra(g, []int{src})
			require.NoError(t, err)
			require.Equalf(t, bruteForce(g, src), res.Dist, "seed=%d src=%d", seed, src)
		}
	}
}
