// Package prim_kruskal computes Minimum Spanning Trees (MST) over a dense,
// undirected, weighted *matrix.Graph, and records how Prim's algorithm gets there.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why record the steps?
//     Prim's algorithm is the textbook greedy algorithm; replaying it one frontier extraction at a
//     time (see package replay) shows exactly when a candidate is accepted and when it goes stale.
//
// Algorithms Provided
//
//   - Prim(g *matrix.Graph, start int, opts ...Option) (*Result, error)
//
//   - Strategy: grow a single tree from start. Keep every discovered crossing edge in a min-heap
//     frontier (package frontier) ordered by (weight, target, source). Pop the smallest; if its
//     target is already settled it is stale and skipped, otherwise the target is settled and its
//     unsettled neighbours are pushed. Stale entries are never removed eagerly (no decrease-key),
//     which makes the step count equal the number of insertions.
//
//   - Complexity: O(E log E) time, O(V + E) space; history adds one frontier and tree copy per step.
//
//   - Kruskal(g *matrix.Graph) (*Result, error)
//
//   - Strategy: stable-sort all edges by weight, union-find to skip cycle-closing edges.
//
//   - Role: an independent cross-check for Prim's total weight.
//
// Step History
//
//	With WithHistory(), Result.Steps holds one Step per extraction:
//	  Frontier  — frontier contents before the extraction (sorted, extracted candidate included)
//	  Extracted — the popped candidate; Extracted.Source == frontier.NoSource on the first step
//	  Stale     — whether the popped candidate was skipped
//	  Tree      — a copy of the accepted edges after this step
//
// Error Conditions
//
//	- ErrNilGraph        — g == nil.
//	- ErrStartOutOfRange — start ∉ [0, n) (Prim only).
//	- matrix sentinels   — PrimDense validates raw input through matrix.NewGraph.
//
//	A disconnected graph is NOT an error: Prim returns the tree of the start component and Kruskal
//	a spanning forest. Result.Spanning(n) / Result.RequireSpanning(n) (ErrDisconnected) detect it.
//
// Determinism
//
//   - Prim: the frontier's tuple order fixes every tie; neighbours are pushed in ascending index.
//   - Kruskal: edges are collected in (i, j) order and stable-sorted by weight.
//
// Concurrency
//
//	Runs keep all mutable state local. *matrix.Graph is immutable, so a single graph may be shared
//	by concurrent calls without locking.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
