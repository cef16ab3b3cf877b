// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a start vertex over a dense *matrix.Graph using a lazy-deletion frontier.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/primstep/frontier"
	"github.com/katalvlaran/primstep/matrix"
)

// Prim computes the Minimum Spanning Tree of the component of g that contains
// start, optionally recording a Step for every frontier extraction.
//
// Error Conditions:
//   - ErrNilGraph        : if g is nil.
//   - ErrStartOutOfRange : if start ∉ [0, g.Order()).
//
// A disconnected graph is not an error: the result covers the reachable
// component only; compare len(Edges) with n-1 (or call Result.Spanning).
//
// Steps:
//  1. Validate g and start.
//  2. Initialize visited set, frontier = {(0, start, NoSource)}, empty tree, total 0.
//  3. While the frontier is non-empty:
//     a. With history, snapshot the frontier; then extract the minimum (w, t, s).
//     b. If t is already visited, the candidate is stale: record the unchanged tree and continue.
//     c. Mark t visited, add w to total, append (s, t, w) unless s is the sentinel; record the step.
//     d. Insert (g[t][v], v, t) for every unvisited neighbour v, in ascending v.
//  4. Return total, edges, and history.
//
// Stale candidates are kept in the frontier rather than decreased in place, so
// the number of steps equals the number of insertions.
//
// Complexity: O(E log E) time, O(V + E) memory (O(E·V) more with history).
func Prim(g *matrix.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate inputs before touching any state.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if err := matrix.ValidateVertex(n, start); err != nil {
		return nil, fmt.Errorf("Prim: %w: %w", ErrStartOutOfRange, err)
	}

	// Resolve options on top of the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Per-run state; nothing here outlives the call.
	visited := make([]bool, n)
	pq := frontier.New(n)
	res := &Result{Edges: make([]Edge, 0, n-1)}
	if cfg.History {
		res.Steps = make([]Step, 0, n)
	}

	pq.Insert(frontier.Candidate{Weight: 0, Target: start, Source: frontier.NoSource})
	res.Stats.Insertions++

	// 3. Main loop: drain the frontier.
	for !pq.IsEmpty() {
		// 3a. Snapshot before extraction so the extracted candidate is visible in it.
		var snap []frontier.Candidate
		if cfg.History {
			snap = pq.Snapshot()
		}
		c := pq.ExtractMin()
		res.Stats.Extractions++

		// 3b. A stale candidate: its target was settled through a cheaper edge.
		if visited[c.Target] {
			res.Stats.Stale++
			if cfg.History {
				res.Steps = append(res.Steps, Step{Frontier: snap, Extracted: c, Stale: true, Tree: copyEdges(res.Edges)})
			}
			continue
		}

		// 3c. Settle the target.
		visited[c.Target] = true
		res.Total += c.Weight
		if !c.IsStart() {
			res.Edges = append(res.Edges, Edge{From: c.Source, To: c.Target, Weight: c.Weight})
		}
		if cfg.History {
			res.Steps = append(res.Steps, Step{Frontier: snap, Extracted: c, Tree: copyEdges(res.Edges)})
		}

		// 3d. Expand: every unvisited neighbour becomes a candidate.
		u := c.Target
		for v := 0; v < n; v++ {
			if visited[v] || !g.HasEdge(u, v) {
				continue
			}
			pq.Insert(frontier.Candidate{Weight: g.Weight(u, v), Target: v, Source: u})
			res.Stats.Insertions++
		}
	}

	// 4. Done.
	return res, nil
}

// PrimDense validates a raw adjacency matrix with matrix.NewGraph and runs Prim.
// It surfaces the matrix sentinels (ErrNonSquare, ErrAsymmetry, ...) unchanged.
func PrimDense(weights [][]float64, start int, opts ...Option) (*Result, error) {
	g, err := matrix.NewGraph(weights)
	if err != nil {
		return nil, fmt.Errorf("PrimDense: %w", err)
	}

	return Prim(g, start, opts...)
}

// copyEdges returns an independent copy of edges (never nil).
func copyEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out
}
