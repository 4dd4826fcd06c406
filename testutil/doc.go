// Package testutil provides testing utilities for typedslab.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator for deterministic,
// reproducible test scenarios.
//
// # Usage
//
//	rng := testutil.NewRNG(seed)
//	n := rng.Intn(100)
//	order := rng.Perm(32)
package testutil
