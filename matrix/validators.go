// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the adjacency-matrix preconditions.
//  - NewGraph runs ValidateAdjacency; algorithms never re-check.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// SymTol is the absolute tolerance used when comparing a_ij with a_ji.
// Weights in this package are usually small integers, so the tolerance only
// absorbs representation noise from decoded text formats.
const SymTol = 1e-12

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape checks that rows is non-empty and square.
//
// Errors: ErrEmpty, ErrNonSquare.
// Complexity: O(n).
func ValidateShape(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateShape", ErrEmpty)
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateShape: row %d has %d columns, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateWeights checks every entry is finite and non-negative.
//
// Implementation: assumes ValidateShape already passed.
// Errors: ErrNaNInf, ErrNegativeWeight.
// Complexity: O(n²).
func ValidateWeights(rows [][]float64) error {
	var (
		i, j int
		w    float64
	)
	for i = range rows {
		for j, w = range rows[i] {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateWeights: (%d,%d)", i, j), ErrNaNInf)
			}
			if w < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateWeights: (%d,%d)=%g", i, j, w), ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks that no vertex carries a self-loop.
//
// Errors: ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(rows [][]float64) error {
	for i := range rows {
		if rows[i][i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: (%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ SymTol over the upper triangle.
//
// Errors: ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(rows [][]float64) error {
	n := len(rows)
	var diff float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			diff = rows[i][j] - rows[j][i]
			if diff < 0 {
				diff = -diff
			}
			if diff > SymTol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateAdjacency – Composite: Shape → Weights → ZeroDiagonal → Symmetric.
//
// Errors: first violation in the documented priority order.
// Complexity: O(n²).
func ValidateAdjacency(rows [][]float64) error {
	if err := ValidateShape(rows); err != nil {
		return err
	}
	if err := ValidateWeights(rows); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(rows); err != nil {
		return err
	}

	return ValidateSymmetric(rows)
}

// ValidateVertex verifies that v ∈ [0, n).
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateVertex(n, v int) error {
	if v < 0 || v >= n {
		return validatorErrorf(fmt.Sprintf("ValidateVertex: %d not in [0,%d)", v, n), ErrOutOfRange)
	}

	return nil
}
