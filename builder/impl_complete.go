// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices; n ≤ MaxVertices else ErrTooManyVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Weights drawn via cfg.weightFn in lexicographic (i,j) order.
//
// Complexity: O(n²) time and space.

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if err := checkOrder(methodComplete, n, minCompleteNodes); err != nil {
			return nil, err
		}

		rows := newRows(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(rows, i, j, cfg.weight())
			}
		}

		return rows, nil
	}
}
