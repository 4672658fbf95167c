// Package filesystem provides filesystem implementations for bislib.
//
// This package contains the OS implementation of the types.FS interface.
// Tests use the in-memory implementation from pkg/testutil instead.
package filesystem
