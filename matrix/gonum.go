// SPDX-License-Identifier: MIT
// Package: matrix
//
// gonum.go — export to gonum's graph model.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Gonum returns g as a gonum weighted undirected graph. Node IDs equal vertex
// indices; every vertex is added even when isolated. Self weight is 0 and an
// absent edge reports +Inf, matching gonum's shortest-path conventions.
// Complexity: O(n²).
func (g *Graph) Gonum() *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.n; i++ {
		out.AddNode(simple.Node(i))
	}
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if w := g.w[i*g.n+j]; w != 0 {
				out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: w})
			}
		}
	}

	return out
}
