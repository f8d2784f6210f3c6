// Package testutil provides testing utilities for pgprobes tests.
//
// This package contains mock helpers, test setup helpers, and constants
// used across test files. It should only be imported by test files (*_test.go)
// and will not be included in production binaries.
//
// The package includes:
//   - pgxmock connection helpers for probe and runner tests
//   - PostgreSQL container setup for integration tests
package testutil
