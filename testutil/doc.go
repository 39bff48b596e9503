// Package testutil provides testing utilities for gridstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible RNG and helpers for generating indices
// inside and outside a storage bound.
//
// # Index Generation
//
//	rng := testutil.NewRNG(seed)
//	in := rng.InBounds(size, offset)   // every component in range
//	out := rng.OutOfBounds(size, offset) // exactly one component out of range
//	all := testutil.AllIndices(size, offset) // row-major enumeration
package testutil
