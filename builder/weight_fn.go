// Package builder provides helper functions and types
// for configuring edge‐weight distributions in matrix constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return values > 0,
// since a zero weight means "no edge" in an adjacency matrix.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value <= 0.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Integer weights make ties common, which is exactly
// what tie-breaking tests need.
// Panics if min < 1 or max < min.
// If rng is nil, yields min to maintain a deterministic fallback.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
