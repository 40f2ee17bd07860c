// Package shared provides common utilities and test helpers used across
// the codebase. It is a home for functionality that doesn't belong to
// any specific domain or architectural layer.
//
// The testutil subpackage provides log-capture helpers for asserting on
// structured log output in tests.
//
// This package should only contain test utilities used by multiple
// packages and generic helpers with no domain-specific logic. It must
// not depend on other internal packages.
package shared
