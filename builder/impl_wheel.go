// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices; n ≤ MaxVertices else ErrTooManyVertices).
//   • Vertex 0 is the hub; rim 1..n-1 forms a cycle.
//   • Weight draw order: rim edges {i,i+1} then {n-1,1}, then spokes {0,i}.

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if err := checkOrder(methodWheel, n, minWheelNodes); err != nil {
			return nil, err
		}

		rows := newRows(n)
		// Rim cycle over 1..n-1.
		for i := 1; i < n-1; i++ {
			link(rows, i, i+1, cfg.weight())
		}
		link(rows, n-1, 1, cfg.weight())
		// Spokes.
		for i := 1; i < n; i++ {
			link(rows, 0, i, cfg.weight())
		}

		return rows, nil
	}
}
