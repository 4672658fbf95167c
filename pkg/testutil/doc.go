// Package testutil provides shared test helpers for bislib, most notably an
// in-memory types.FS implementation with error injection.
package testutil
