// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices; n ≤ MaxVertices else ErrTooManyVertices).
//   • Edges {i,(i+1) mod n} for i = 0..n-1, weights drawn in that order.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if err := checkOrder(methodCycle, n, minCycleNodes); err != nil {
			return nil, err
		}

		rows := newRows(n)
		for i := 0; i < n; i++ {
			link(rows, i, (i+1)%n, cfg.weight())
		}

		return rows, nil
	}
}
