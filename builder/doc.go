// Package builder generates deterministic adjacency matrices for common
// topologies: complete graphs, paths, cycles, stars, wheels and G(n, p)
// random graphs.
//
// Every constructor is a Constructor closure run by Build, which validates
// the result into an immutable *matrix.Graph. Weights come from a WeightFn
// (constant by default); stochastic parts draw from the RNG given by WithSeed
// or WithRand, in a fixed and documented order, so the same seed always
// reproduces the same matrix.
//
//	g, err := builder.Build(builder.Complete(6),
//		builder.WithSeed(42),
//		builder.WithWeightFn(builder.UniformIntWeightFn(1, 9)))
//
// ParseKind accepts compact textual specs ("complete:6", "sparse:8:0.4") for
// command-line tools.
package builder
