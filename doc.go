// Package primstep computes minimum spanning trees over small dense graphs
// with Prim's algorithm and records every step so the run can be replayed.
//
// Under the hood, everything is organized under these subpackages:
//
//	frontier/      min-heap of candidate edges with (weight, target, source) ordering
//	matrix/        validated, immutable adjacency-matrix Graph (+ gonum export)
//	prim_kruskal/  Prim with step history; Kruskal as a cross-check
//	replay/        step controller (next / previous / quit) and step captions
//	builder/       deterministic fixtures: complete, path, cycle, star, wheel, G(n,p)
//	graphfile/     TOML / YAML / JSON graph documents
//	cmd/primstep   command-line front end with an optional terminal replay
//
// Quick example:
//
//	res, err := prim_kruskal.PrimDense(weights, 0, prim_kruskal.WithHistory())
//	for i, st := range res.Steps { fmt.Println(replay.Describe(st, i, len(res.Steps))) }
//
//	go get github.com/katalvlaran/primstep
package primstep
