// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices; n ≤ MaxVertices else ErrTooManyVertices).
//   • Vertex 0 is the center; edges {0,i} for i = 1..n-1.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if err := checkOrder(methodStar, n, minStarNodes); err != nil {
			return nil, err
		}

		rows := newRows(n)
		for i := 1; i < n; i++ {
			link(rows, 0, i, cfg.weight())
		}

		return rows, nil
	}
}
