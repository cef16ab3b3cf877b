// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It produces a minimum spanning forest over a *matrix.Graph and serves as an
// independent cross-check for Prim.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/primstep/matrix"
)

// Kruskal computes a minimum spanning forest of g.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : if g is nil.
//
// Steps:
//  1. Validate g.
//  2. Collect the upper-triangle edges (i < j, weight != 0) in (i, j) order.
//  3. Stable-sort by weight, so equal weights keep (i, j) order.
//  4. Initialize parent[] and rank[] for each vertex.
//  5. For each edge (u,v): if find(u) != find(v), union and accept.
//  6. Stop once n-1 edges were accepted.
//
// The returned Result has From < To for every edge, no Steps and zero Stats.
// A disconnected graph yields a forest; use Result.Spanning to detect it.
//
// Complexity: O(V² + E log E) time, O(V + E) memory.
func Kruskal(g *matrix.Graph) (*Result, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()

	// 2. Collect edges; the diagonal is zero by construction.
	edges := make([]Edge, 0, g.EdgeCount())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdge(i, j) {
				edges = append(edges, Edge{From: i, To: j, Weight: g.Weight(i, j)})
			}
		}
	}

	// 3. Sort by ascending weight; stable keeps deterministic tie-breaking.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4. Disjoint-set over vertex indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v; reports false if already joined.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		// Attach smaller-rank tree under larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}

		return true
	}

	// 5. Greedy acceptance.
	res := &Result{Edges: make([]Edge, 0, n-1)}
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		// 6. Spanning tree complete.
		if len(res.Edges) == n-1 {
			break
		}
	}

	return res, nil
}
