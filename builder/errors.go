// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates that n exceeds MaxVertices.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not produce a valid matrix.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind indicates that ParseKind did not recognize the topology name.
var ErrUnknownKind = errors.New("builder: unknown topology kind")

// ErrBadKindSpec indicates that a ParseKind argument is malformed.
var ErrBadKindSpec = errors.New("builder: malformed topology spec")
