package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It supports the
// read-only surface the launch core needs (Stat and ReadDir) plus error
// injection for exercising unreadable-directory paths.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection
	errorPaths map[string]error
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	size    int64
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: map[string]*fileNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// AddDir registers a directory (and its parents) in the filesystem
func (m *MemoryFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addDirLocked(filepath.Clean(path))
}

// AddFile registers a regular file (and its parent directories)
func (m *MemoryFS) AddFile(path string, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	m.addDirLocked(filepath.Dir(path))
	m.files[path] = &fileNode{
		name:    filepath.Base(path),
		mode:    0644,
		modTime: time.Now(),
		size:    size,
	}
}

// SetModTime overrides the modification time of an existing entry
func (m *MemoryFS) SetModTime(path string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if node, ok := m.files[filepath.Clean(path)]; ok {
		node.modTime = t
	}
}

// InjectError makes Stat and ReadDir fail with err for the given path
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) addDirLocked(path string) {
	for p := path; ; p = filepath.Dir(p) {
		if _, exists := m.files[p]; !exists {
			m.files[p] = &fileNode{
				name:    filepath.Base(p),
				mode:    0755 | fs.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			}
		}
		if p == filepath.Dir(p) {
			break
		}
	}
}

// Stat returns file info for the named path
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}

	node, exists := m.files[name]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return memFileInfo{node}, nil
}

// ReadDir lists the immediate children of the named directory
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}

	dir, exists := m.files[name]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if !dir.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	var entries []fs.DirEntry
	for path, node := range m.files {
		if path != name && filepath.Dir(path) == name {
			entries = append(entries, memDirEntry{node})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// memFileInfo adapts a fileNode to fs.FileInfo
type memFileInfo struct {
	node *fileNode
}

func (i memFileInfo) Name() string       { return i.node.name }
func (i memFileInfo) Size() int64        { return i.node.size }
func (i memFileInfo) Mode() fs.FileMode  { return i.node.mode }
func (i memFileInfo) ModTime() time.Time { return i.node.modTime }
func (i memFileInfo) IsDir() bool        { return i.node.isDir }
func (i memFileInfo) Sys() interface{}   { return nil }

// memDirEntry adapts a fileNode to fs.DirEntry
type memDirEntry struct {
	node *fileNode
}

func (e memDirEntry) Name() string               { return e.node.name }
func (e memDirEntry) IsDir() bool                { return e.node.isDir }
func (e memDirEntry) Type() fs.FileMode          { return e.node.mode.Type() }
func (e memDirEntry) Info() (fs.FileInfo, error) { return memFileInfo{e.node}, nil }
