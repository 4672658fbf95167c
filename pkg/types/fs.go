package types

import "io/fs"

// FS is the read-only filesystem surface the launch core depends on.
// pkg/filesystem provides the OS implementation; pkg/testutil provides an
// in-memory implementation with error injection for tests.
type FS interface {
	// Stat returns file info for the named path
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists the immediate children of the named directory
	ReadDir(name string) ([]fs.DirEntry, error)
}
