// Package testutil provides deterministic random vector generation for tests
// and benchmarks. All generators are seeded and thread-safe, so test runs
// are reproducible.
package testutil
