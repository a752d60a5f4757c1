// Package builder_test verifies topology, counts, determinism and error
// reporting of every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		directed bool
		ctor     builder.Constructor
		wantV    int
		wantArcs int
		check    func(t *testing.T, g *core.Graph[int])
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantArcs: 10,
			check: func(t *testing.T, g *core.Graph[int]) {
				assert.True(t, g.HasEdge(4, 0))
				assert.True(t, g.HasEdge(0, 4))
				assert.Equal(t, builder.DefaultEdgeWeight, g.Cost(2, 3))
			},
		},
		{
			name: "Cycle(4) directed", directed: true, ctor: builder.Cycle(4), wantV: 4, wantArcs: 4,
			check: func(t *testing.T, g *core.Graph[int]) {
				assert.True(t, g.HasEdge(3, 0))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantArcs: 6,
			check: func(t *testing.T, g *core.Graph[int]) {
				assert.False(t, g.HasEdge(3, 0))
				assert.Equal(t, 1, g.OutDegree(0))
				assert.Equal(t, 2, g.OutDegree(1))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantArcs: 12,
			check: func(t *testing.T, g *core.Graph[int]) {
				for i := 0; i < 4; i++ {
					assert.False(t, g.HasEdge(i, i), "no self-loops")
					assert.Equal(t, 3, g.OutDegree(i))
				}
			},
		},
		{
			name: "Complete(3) directed", directed: true, ctor: builder.Complete(3), wantV: 3, wantArcs: 6,
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantArcs: 14,
			check: func(t *testing.T, g *core.Graph[int]) {
				// 0 1 2
				// 3 4 5
				assert.True(t, g.HasEdge(1, 4))
				assert.True(t, g.HasEdge(4, 5))
				assert.False(t, g.HasEdge(2, 3), "no wrap-around")
				assert.Equal(t, 3, g.OutDegree(4))
			},
		},
		{
			name: "Grid(2,2) directed", directed: true, ctor: builder.Grid(2, 2), wantV: 4, wantArcs: 8,
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantArcs: 20,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantArcs: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)}, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantArcs, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(p<0)", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse without rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.ctor)
		require.ErrorIsf(t, err, tc.want, tc.name)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge[int] {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g.Edges()
	}

	first := build(42)
	assert.Equal(t, first, build(42))
	assert.NotEmpty(t, first)
	for _, e := range first {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Cost, 1.0)
		assert.LessOrEqual(t, e.Cost, 9.0)
	}
}

func TestBuildGraph_ComposesOnSharedLabels(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasEdge(2, 0))
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(r))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(3, 5)(r)
		assert.True(t, w >= 3 && w < 5)
		n := builder.IntWeightFn(0, 2)(r)
		assert.Contains(t, []float64{0, 1, 2}, n)
	}
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntWeightFn(3, 5)(nil))

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 3) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 3) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
