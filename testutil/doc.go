// Package testutil provides deterministic data generation for tests and
// benchmarks.
package testutil
