// Package matrix provides the validated, immutable adjacency-matrix Graph that
// every spanning-tree routine in primstep consumes.
//
// A Graph of order n is an n×n matrix of float64 weights where:
//
//   - Weight(i, j) == 0 means "no edge" between i and j;
//   - the diagonal is always 0 (self-loops are not representable);
//   - Weight(i, j) == Weight(j, i) (undirected);
//   - every weight is finite and non-negative.
//
// NewGraph enforces all of the above up front and returns a sentinel error
// (matched with errors.Is) for the first violation found. After construction
// a Graph is never mutated, so a single instance may be shared by any number
// of goroutines running independent algorithms.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
//
// Interop: Graph.Gonum exports the graph as a gonum simple.WeightedUndirectedGraph
// so that gonum's own algorithms (e.g. path.Prim) can be run on the same input.
package matrix
