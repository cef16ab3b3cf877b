package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/primstep/frontier"
	"github.com/katalvlaran/primstep/matrix"
	"github.com/katalvlaran/primstep/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrim_Golden fixes the reference run on the 5-vertex sample from vertex 0.
func TestPrim_Golden(t *testing.T) {
	g := matrix.MustGraph(sampleRows())

	res, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)

	assert.Equal(t, 16.0, res.Total)
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 4, Weight: 5},
		{From: 0, To: 3, Weight: 6},
	}, res.Edges)
	assert.Nil(t, res.Steps, "history must stay off by default")
	assert.Equal(t, prim_kruskal.Stats{Insertions: 8, Extractions: 8, Stale: 3}, res.Stats)
	assert.True(t, res.Spanning(g.Order()))
	assert.NoError(t, res.RequireSpanning(g.Order()))
}

// TestPrim_GoldenHistory fixes every snapshot of the reference run.
func TestPrim_GoldenHistory(t *testing.T) {
	res, err := prim_kruskal.PrimDense(sampleRows(), 0, prim_kruskal.WithHistory())
	require.NoError(t, err)

	c := func(w float64, target, source int) frontier.Candidate {
		return frontier.Candidate{Weight: w, Target: target, Source: source}
	}
	e01 := prim_kruskal.Edge{From: 0, To: 1, Weight: 2}
	e12 := prim_kruskal.Edge{From: 1, To: 2, Weight: 3}
	e14 := prim_kruskal.Edge{From: 1, To: 4, Weight: 5}
	e03 := prim_kruskal.Edge{From: 0, To: 3, Weight: 6}
	full := []prim_kruskal.Edge{e01, e12, e14, e03}

	want := []prim_kruskal.Step{
		{Frontier: []frontier.Candidate{c(0, 0, frontier.NoSource)}, Extracted: c(0, 0, frontier.NoSource), Tree: []prim_kruskal.Edge{}},
		{Frontier: []frontier.Candidate{c(2, 1, 0), c(6, 3, 0)}, Extracted: c(2, 1, 0), Tree: []prim_kruskal.Edge{e01}},
		{Frontier: []frontier.Candidate{c(3, 2, 1), c(5, 4, 1), c(6, 3, 0), c(8, 3, 1)}, Extracted: c(3, 2, 1), Tree: []prim_kruskal.Edge{e01, e12}},
		{Frontier: []frontier.Candidate{c(5, 4, 1), c(6, 3, 0), c(7, 4, 2), c(8, 3, 1)}, Extracted: c(5, 4, 1), Tree: []prim_kruskal.Edge{e01, e12, e14}},
		{Frontier: []frontier.Candidate{c(6, 3, 0), c(7, 4, 2), c(8, 3, 1), c(9, 3, 4)}, Extracted: c(6, 3, 0), Tree: full},
		{Frontier: []frontier.Candidate{c(7, 4, 2), c(8, 3, 1), c(9, 3, 4)}, Extracted: c(7, 4, 2), Stale: true, Tree: full},
		{Frontier: []frontier.Candidate{c(8, 3, 1), c(9, 3, 4)}, Extracted: c(8, 3, 1), Stale: true, Tree: full},
		{Frontier: []frontier.Candidate{c(9, 3, 4)}, Extracted: c(9, 3, 4), Stale: true, Tree: full},
	}
	assert.Equal(t, want, res.Steps)
	assert.Equal(t, full, res.Edges)
}

// TestPrim_HistoryTreesAreCopies ensures snapshots do not alias the result or each other.
func TestPrim_HistoryTreesAreCopies(t *testing.T) {
	res, err := prim_kruskal.PrimDense(sampleRows(), 0, prim_kruskal.WithHistory())
	require.NoError(t, err)

	res.Edges[0].Weight = 100
	assert.Equal(t, 2.0, res.Steps[1].Tree[0].Weight)
	assert.Equal(t, 2.0, res.Steps[7].Tree[0].Weight)

	res.Steps[4].Tree[3].Weight = 100
	assert.Equal(t, 6.0, res.Steps[5].Tree[3].Weight)
}

// TestPrim_SingleVertex covers n = 1.
func TestPrim_SingleVertex(t *testing.T) {
	res, err := prim_kruskal.PrimDense([][]float64{{0}}, 0, prim_kruskal.WithHistory())
	require.NoError(t, err)

	assert.Zero(t, res.Total)
	assert.Empty(t, res.Edges)
	require.Len(t, res.Steps, 1)
	assert.True(t, res.Steps[0].Extracted.IsStart())
	assert.True(t, res.Spanning(1))
}

// TestPrim_Disconnected verifies a partial tree without error.
func TestPrim_Disconnected(t *testing.T) {
	g := matrix.MustGraph(twoComponents())

	fromSmall, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Len(t, fromSmall.Edges, 1)
	assert.Equal(t, 4.0, fromSmall.Total)
	assert.False(t, fromSmall.Spanning(g.Order()))
	assert.ErrorIs(t, fromSmall.RequireSpanning(g.Order()), prim_kruskal.ErrDisconnected)

	fromLarge, err := prim_kruskal.Prim(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 3, To: 2, Weight: 1},
		{From: 3, To: 4, Weight: 2},
	}, fromLarge.Edges)
	assert.Equal(t, 3.0, fromLarge.Total)
}

// TestPrim_Validation covers nil graphs, bad start vertices and malformed matrices.
func TestPrim_Validation(t *testing.T) {
	_, err := prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	g := matrix.MustGraph(sampleRows())
	for _, start := range []int{-1, 5, 100} {
		_, err = prim_kruskal.Prim(g, start)
		assert.ErrorIs(t, err, prim_kruskal.ErrStartOutOfRange, "start=%d", start)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "start=%d", start)
	}

	_, err = prim_kruskal.PrimDense([][]float64{{0, 1}, {1}}, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = prim_kruskal.PrimDense([][]float64{{0, 1}, {2, 0}}, 0)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, err = prim_kruskal.PrimDense([][]float64{{0, -1}, {-1, 0}}, 0)
	assert.ErrorIs(t, err, matrix.ErrNegativeWeight)
	_, err = prim_kruskal.PrimDense(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestPrim_Idempotent runs twice on the same input and on a tie-heavy graph.
func TestPrim_Idempotent(t *testing.T) {
	ties := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	for _, rows := range [][][]float64{sampleRows(), ties} {
		a, err := prim_kruskal.PrimDense(rows, 0, prim_kruskal.WithHistory())
		require.NoError(t, err)
		b, err := prim_kruskal.PrimDense(rows, 0, prim_kruskal.WithHistory())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	// Equal weights fall back to the smaller target: a star around vertex 0.
	res, err := prim_kruskal.PrimDense(ties, 0)
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 0, To: 3, Weight: 1},
	}, res.Edges)
}

// TestPrim_DoesNotMutateInput checks that the caller's rows are untouched.
func TestPrim_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	_, err := prim_kruskal.PrimDense(rows, 2, prim_kruskal.WithHistory())
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), rows)
}

// TestPrim_EveryStartSameTotal: the MST weight does not depend on the root.
func TestPrim_EveryStartSameTotal(t *testing.T) {
	g := matrix.MustGraph(sampleRows())
	for s := 0; s < g.Order(); s++ {
		res, err := prim_kruskal.Prim(g, s)
		require.NoError(t, err)
		assert.Equal(t, 16.0, res.Total, "start=%d", s)
		assert.Len(t, res.Edges, g.Order()-1, "start=%d", s)
		requireForest(t, g, res.Edges)
	}
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "1 - 4 (weight 5)", prim_kruskal.Edge{From: 1, To: 4, Weight: 5}.String())
}
