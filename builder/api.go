// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con, validates the matrix.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Determinism: same constructor, options and seed ⇒ identical matrices.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/matrix"
)

// Constructor produces the rows of an adjacency matrix using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit each unordered pair {i,j} once and mirror it to keep symmetry.
//   - Draw weights in a stable, documented order.
type Constructor func(cfg builderConfig) ([][]float64, error)

// Build resolves the builder configuration from opts, runs con and wraps the
// rows into an immutable *matrix.Graph.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewVertices, ErrTooManyVertices, ErrInvalidProbability,
//     ErrNeedRandSource).
//   - A nil constructor yields ErrConstructFailed.
//
// Complexity: O(len(opts)) + cost of con + O(n²) validation.
func Build(con Constructor, opts ...Option) (*matrix.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	rows, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	g, err := matrix.NewGraph(rows)
	if err != nil {
		// Only reachable through a weight function that breaks the contract.
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// Rows is like Build but returns the raw, validated rows instead of a Graph.
// Handy for feeding PrimDense or writing graph files.
func Rows(con Constructor, opts ...Option) ([][]float64, error) {
	g, err := Build(con, opts...)
	if err != nil {
		return nil, err
	}

	return g.Rows(), nil
}

// MaxVertices bounds the order of every generated graph. The matrix is
// dense, so n vertices cost n² float64s.
const MaxVertices = 2048

// checkOrder enforces min ≤ n ≤ MaxVertices before anything is allocated.
func checkOrder(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxVertices, ErrTooManyVertices)
	}

	return nil
}

// newRows allocates an n×n zero matrix.
func newRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return rows
}

// link sets the symmetric weight of {i,j}.
func link(rows [][]float64, i, j int, w float64) {
	rows[i][j] = w
	rows[j][i] = w
}
