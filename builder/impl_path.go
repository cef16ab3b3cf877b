// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices; n ≤ MaxVertices else ErrTooManyVertices).
//   • Edges {i,i+1} for i = 0..n-2, weights drawn in that order.
//
// A path is its own spanning tree, which makes it a handy fixture: the MST
// must contain every edge.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if err := checkOrder(methodPath, n, minPathNodes); err != nil {
			return nil, err
		}

		rows := newRows(n)
		for i := 0; i+1 < n; i++ {
			link(rows, i, i+1, cfg.weight())
		}

		return rows, nil
	}
}
