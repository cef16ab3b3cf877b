// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - 1 ≤ n ≤ MaxVertices (else ErrTooFewVertices / ErrTooManyVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability; NaN included).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - The result may be disconnected; that is intended (partial-tree fixtures).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). For each included pair
//     the weight is drawn right after the Bernoulli trial.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) ([][]float64, error) {
		if err := checkOrder(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return nil, err
		}
		if !(p >= probMin && p <= probMax) { // NaN fails both comparisons
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rows := newRows(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if !include && p > probMin {
					include = cfg.rng.Float64() < p
				}
				if include {
					link(rows, i, j, cfg.weight())
				}
			}
		}

		return rows, nil
	}
}
