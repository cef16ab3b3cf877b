// Package frontier implements the priority frontier used by Prim's algorithm:
// a min-ordered multiset of candidate edges crossing the boundary between the
// settled and the unsettled vertices of a growing spanning tree.
//
// Ordering
//
//	Candidates are compared as tuples (Weight, Target, Source). The smallest
//	weight wins; equal weights fall back to the smaller target vertex and then
//	to the smaller source vertex. The order is total over distinct candidates,
//	so extraction sequences are fully deterministic.
//
// Contract
//
//   - Insert(c)    — O(log k); no deduplication, several candidates for the
//     same target may coexist (the lazy-deletion formulation relies on it).
//   - ExtractMin() — O(log k); panics on an empty frontier (check IsEmpty first).
//   - Snapshot()   — O(k log k); sorted copy, the heap itself is left untouched.
//
// The start of a Prim run is represented by a sentinel candidate whose Source
// is NoSource.
package frontier
