// Package prim_kruskal defines result types, configuration options and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primstep/frontier"
)

// ErrNilGraph indicates that a nil *matrix.Graph was passed in.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrStartOutOfRange indicates that the start vertex is not in [0, n).
var ErrStartOutOfRange = errors.New("prim_kruskal: start vertex out of range")

// ErrDisconnected indicates that the computed tree does not span every vertex.
// Prim and Kruskal never return it themselves; Result.RequireSpanning does.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Edge is one accepted tree edge: the settled endpoint From, the newly settled
// endpoint To, and the edge Weight.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// String renders e as "from - to (weight w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d - %d (weight %g)", e.From, e.To, e.Weight)
}

// Step is the snapshot recorded for one frontier extraction.
//
// Fields:
//
//	Frontier  — frontier contents right before the extraction (Extracted included), ascending.
//	Extracted — the candidate removed in this step.
//	Stale     — true when Extracted.Target had already been settled.
//	Tree      — accepted edges after processing this step (a private copy).
type Step struct {
	Frontier  []frontier.Candidate
	Extracted frontier.Candidate
	Stale     bool
	Tree      []Edge
}

// Stats counts frontier traffic for one run.
type Stats struct {
	Insertions  int // candidates pushed, sentinel included
	Extractions int // candidates popped
	Stale       int // popped candidates whose target was already settled
}

// Result is the outcome of one MST computation.
type Result struct {
	// Total is the sum of Edges[i].Weight.
	Total float64

	// Edges lists accepted edges in acceptance order.
	Edges []Edge

	// Steps is the per-extraction history; nil unless WithHistory was given.
	Steps []Step

	// Stats describes frontier traffic (zero for Kruskal).
	Stats Stats
}

// Spanning reports whether the tree covers all n vertices (len(Edges) == n-1).
func (r *Result) Spanning(n int) bool {
	if n <= 0 {
		return false
	}

	return len(r.Edges) == n-1
}

// RequireSpanning returns ErrDisconnected when the tree does not cover all n vertices.
func (r *Result) RequireSpanning(n int) error {
	if !r.Spanning(n) {
		return fmt.Errorf("%d of %d tree edges: %w", len(r.Edges), n-1, ErrDisconnected)
	}

	return nil
}

// Options configures a Prim run.
//
// Fields:
//
//	History bool — record one Step per frontier extraction.
type Options struct {
	History bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithHistory returns an Option that enables step-history recording.
func WithHistory() Option {
	return func(opts *Options) {
		opts.History = true
	}
}

// DefaultOptions returns Options with history disabled.
func DefaultOptions() Options {
	return Options{History: false}
}
