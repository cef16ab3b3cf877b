package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/primstep/matrix"
	"github.com/katalvlaran/primstep/prim_kruskal"
	"github.com/stretchr/testify/require"
)

// sampleRows is the 5-vertex reference graph; its MST from vertex 0 weighs 16.
func sampleRows() [][]float64 {
	return [][]float64{
		{0, 2, 0, 6, 0},
		{2, 0, 3, 8, 5},
		{0, 3, 0, 0, 7},
		{6, 8, 0, 0, 9},
		{0, 5, 7, 9, 0},
	}
}

// twoComponents is {0,1} ∪ {2,3,4} with no cross edges.
func twoComponents() [][]float64 {
	return [][]float64{
		{0, 4, 0, 0, 0},
		{4, 0, 0, 0, 0},
		{0, 0, 0, 1, 3},
		{0, 0, 1, 0, 2},
		{0, 0, 3, 2, 0},
	}
}

// sumWeights returns Σ e.Weight.
func sumWeights(edges []prim_kruskal.Edge) float64 {
	var s float64
	for _, e := range edges {
		s += e.Weight
	}

	return s
}

// requireForest asserts that edges exist in g with matching weights and form
// no cycle.
func requireForest(t *testing.T, g *matrix.Graph, edges []prim_kruskal.Edge) {
	t.Helper()
	parent := make([]int, g.Order())
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			u = parent[u]
		}
		return u
	}
	for _, e := range edges {
		require.True(t, g.HasEdge(e.From, e.To), "edge %v not in graph", e)
		require.Equal(t, g.Weight(e.From, e.To), e.Weight, "edge %v weight", e)
		ru, rv := find(e.From), find(e.To)
		require.NotEqual(t, ru, rv, "edge %v closes a cycle", e)
		parent[ru] = rv
	}
}

// bruteForceMST enumerates every (n-1)-edge subset and returns the cheapest
// spanning tree weight, or +Inf if none spans. Only for tiny graphs (n ≤ 6).
func bruteForceMST(g *matrix.Graph) float64 {
	n := g.Order()
	if n <= 1 {
		return 0
	}
	type pair struct {
		u, v int
		w    float64
	}
	var all []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				all = append(all, pair{i, j, g.Weight(i, j)})
			}
		}
	}

	best := math.Inf(1)
	chosen := make([]pair, 0, n-1)
	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == n-1 {
			parent := make([]int, n)
			for i := range parent {
				parent[i] = i
			}
			find := func(u int) int {
				for parent[u] != u {
					u = parent[u]
				}
				return u
			}
			var total float64
			for _, p := range chosen {
				ru, rv := find(p.u), find(p.v)
				if ru == rv {
					return
				}
				parent[ru] = rv
				total += p.w
			}
			if total < best {
				best = total
			}
			return
		}
		for k := start; k < len(all); k++ {
			chosen = append(chosen, all[k])
			rec(k + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)

	return best
}
