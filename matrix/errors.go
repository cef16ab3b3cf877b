// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every validator returns one of these sentinels wrapped with its tag, so
// callers branch with errors.Is and still see where the violation was found.

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// empty -> shape -> NaN/Inf -> negative -> diagonal -> symmetry.

var (
	// ErrEmpty is returned when the matrix has no rows (n == 0).
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that some row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf weight.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative weight; Prim's guarantees need w ≥ 0.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNonZeroDiagonal signals a self-loop (a_ii != 0).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals a_ij != a_ji beyond SymTol.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
