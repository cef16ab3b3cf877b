// SPDX-License-Identifier: MIT
// Package: matrix
//
// graph.go — immutable adjacency-matrix Graph.
//
// Contract:
//   • NewGraph deep-copies its input after validation; the caller keeps
//     ownership of the original rows.
//   • No method mutates the receiver, so concurrent reads need no locks.
//   • Neighbors are always reported in ascending vertex order.

package matrix

import "fmt"

// Graph is a validated, read-only, undirected weighted adjacency matrix.
type Graph struct {
	n int
	w []float64 // row-major n×n storage
}

// NewGraph validates rows (see ValidateAdjacency) and returns an immutable Graph.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNaNInf, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrAsymmetry (wrapped with validator context).
// Complexity: O(n²) time and memory.
func NewGraph(rows [][]float64) (*Graph, error) {
	if err := ValidateAdjacency(rows); err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}

	n := len(rows)
	g := &Graph{n: n, w: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(g.w[i*n:(i+1)*n], rows[i])
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on invalid input.
// Intended for package-level fixtures and examples only.
func MustGraph(rows [][]float64) *Graph {
	g, err := NewGraph(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Weight returns the weight between i and j (0 when absent).
// Indices are not range-checked beyond the slice bounds; use ValidateVertex
// at API boundaries.
func (g *Graph) Weight(i, j int) float64 { return g.w[i*g.n+j] }

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool { return g.w[i*g.n+j] != 0 }

// Neighbors returns the vertices adjacent to u in ascending order.
// Complexity: O(n).
func (g *Graph) Neighbors(u int) []int {
	row := g.w[u*g.n : (u+1)*g.n]
	out := make([]int, 0, g.n)
	for v, w := range row {
		if w != 0 {
			out = append(out, v)
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	count := 0
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.w[i*g.n+j] != 0 {
				count++
			}
		}
	}

	return count
}

// Rows returns a deep copy of the matrix as a slice of rows.
func (g *Graph) Rows() [][]float64 {
	out := make([][]float64, g.n)
	for i := range out {
		out[i] = make([]float64, g.n)
		copy(out[i], g.w[i*g.n:(i+1)*g.n])
	}

	return out
}
