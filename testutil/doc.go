// Package testutil provides testing utilities for podvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and plain-old-data fixture types.
//
// # Random Fixtures
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Ints(1000)
//	particles := rng.Particles(1000)
//
// # Index Streams
//
//	idx := rng.Indices(n, length) // valid positions for insert/remove workloads
package testutil
