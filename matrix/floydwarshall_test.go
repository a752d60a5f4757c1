package matrix_test

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
	"github.com/katalvlaran/lvlpath/matrix"
)

var inf = math.Inf(1)

func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestFloydWarshall_Errors(t *testing.T) {
	require.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrBadShape)

	ns, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrDimensionMismatch)
}

// CLRS figure 25.4, with the diagonal seeded to 0.
func TestFloydWarshall_CLRS(t *testing.T) {
	m := denseFrom(t, [][]float64{
		{0, 3, 8, inf, -4},
		{inf, 0, inf, 1, 7},
		{inf, 4, 0, inf, inf},
		{2, inf, -5, 0, inf},
		{inf, inf, inf, 6, 0},
	})
	require.NoError(t, matrix.FloydWarshall(m))

	want := [][]float64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equalf(t, want[i][j], v, "d[%d][%d]", i, j)
		}
	}
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	m := denseFrom(t, [][]float64{
		{inf, 1},
		{-2, inf},
	})
	require.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrNegativeCycle)
}

func TestAllPairs_DiagonalPolicy(t *testing.T) {
	g := core.NewGraph[string]()
	g.InsertUndirectedEdge("A", "B", 3)
	g.InsertVertex("Z")
	g.InsertDirectedEdge("Z", "Z", 2)

	d, err := matrix.AllPairs(g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, d.Dist("A", "A"), "A→B→A")
	assert.Equal(t, 2.0, d.Dist("Z", "Z"), "self-loop")
	assert.Equal(t, 3.0, d.Dist("A", "B"))
	assert.Equal(t, inf, d.Dist("A", "Z"))
	assert.Equal(t, inf, d.Dist("A", "missing"))

	d, err = matrix.AllPairs(g, matrix.WithZeroDiagonal())
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Dist("A", "A"))
	assert.Equal(t, 0.0, d.Dist("Z", "Z"))
}

func TestAllPairs_IndexAndLabels(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	g.AddEdge(10, 20, 1)
	g.AddEdge(20, 30, 1)

	d, err := matrix.AllPairs(g)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, d.Labels())
	i, ok := d.Index(30)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = d.Index(99)
	assert.False(t, ok)

	v, err := d.Matrix().At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, inf, d.Dist(30, 10))
}

func TestAllPairs_NilAndEmpty(t *testing.T) {
	_, err := matrix.AllPairs[string](nil)
	require.ErrorIs(t, err, matrix.ErrNilGraph)

	d, err := matrix.AllPairs(core.NewGraph[string]())
	require.NoError(t, err)
	assert.Empty(t, d.Labels())
}

func TestAllPairs_NegativeCycle(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "A", -2)

	d, err := matrix.AllPairs(g)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)
	require.NotNil(t, d)
}

func TestAllPairs_MatchesDijkstra(t *testing.T) {
	weight := func(r *rand.Rand) float64 { return float64(1 + r.Intn(20)) }
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(seed%2 == 1)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(weight)},
			builder.RandomSparse(12, 0.25),
		)
		require.NoError(t, err)

		d, err := matrix.AllPairs(g, matrix.WithZeroDiagonal())
		require.NoError(t, err)
		for _, src := range g.Vertices() {
			res, err := dijkstra.Dijkstra(g, []int{src})
			require.NoError(t, err)
			for _, dst := range g.Vertices() {
				require.Equalf(t, res.Dist[dst], d.Dist(src, dst), "seed=%d %d→%d", seed, src, dst)
			}
		}
	}
}

func TestAllPairs_Logs(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	g := core.NewGraph[string]()
	g.InsertUndirectedEdge("A", "B", 1)

	_, err := matrix.AllPairs(g, matrix.WithLogger(zap.New(obs)))
	require.NoError(t, err)

	start := logs.FilterMessage("floydwarshall: start").All()
	require.Len(t, start, 1)
	assert.EqualValues(t, 2, start[0].ContextMap()["vertices"])
	assert.Len(t, logs.FilterMessage("floydwarshall: done").All(), 1)
}
