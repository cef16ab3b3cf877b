package frontier

import (
	"container/heap"
	"fmt"
	"sort"
)

// NoSource marks the synthetic start candidate that has no settled source vertex.
const NoSource = -1

// Candidate is a discovered edge from a settled Source vertex to an unsettled
// Target vertex, carrying the edge Weight.
type Candidate struct {
	Weight float64
	Target int
	Source int
}

// Less reports whether c sorts before o under (Weight, Target, Source) ordering.
// Complexity: O(1).
func (c Candidate) Less(o Candidate) bool {
	if c.Weight != o.Weight {
		return c.Weight < o.Weight
	}
	if c.Target != o.Target {
		return c.Target < o.Target
	}

	return c.Source < o.Source
}

// IsStart reports whether c is the sentinel start candidate.
func (c Candidate) IsStart() bool { return c.Source == NoSource }

// String renders c as "(weight, target, source)".
func (c Candidate) String() string {
	return fmt.Sprintf("(%g, %d, %d)", c.Weight, c.Target, c.Source)
}

// Frontier is a binary min-heap of candidates. The zero value is ready to use.
// A Frontier is not safe for concurrent use; each Prim run owns its own.
type Frontier struct {
	pq candidatePQ
}

// New returns an empty frontier with room for capacity candidates.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{pq: make(candidatePQ, 0, capacity)}
}

// Insert adds c to the frontier.
// Complexity: O(log k).
func (f *Frontier) Insert(c Candidate) {
	heap.Push(&f.pq, c)
}

// ExtractMin removes and returns the smallest candidate.
// Calling it on an empty frontier is a programmer error and panics.
// Complexity: O(log k).
func (f *Frontier) ExtractMin() Candidate {
	if len(f.pq) == 0 {
		panic("frontier: ExtractMin on empty frontier")
	}

	return heap.Pop(&f.pq).(Candidate)
}

// IsEmpty reports whether no candidates remain.
func (f *Frontier) IsEmpty() bool { return len(f.pq) == 0 }

// Len returns the number of candidates currently held.
func (f *Frontier) Len() int { return len(f.pq) }

// Snapshot returns the current contents in ascending order.
// The returned slice is a fresh copy owned by the caller.
// Complexity: O(k log k).
func (f *Frontier) Snapshot() []Candidate {
	out := make([]Candidate, len(f.pq))
	copy(out, f.pq)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// candidatePQ implements heap.Interface for a min-heap of Candidate values.
type candidatePQ []Candidate

func (pq candidatePQ) Len() int           { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool { return pq[i].Less(pq[j]) }
func (pq candidatePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x to the underlying slice. Called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(Candidate)) }

// Pop removes the last element after heap.Pop moved the minimum there.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
