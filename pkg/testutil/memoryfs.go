// Package testutil provides test doubles for the scaffold filesystem.
package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// MemoryFS implements scaffold.FS with in-memory storage. It counts
// mutating calls and supports per-path error injection, so tests can
// prove that an operation never touched the filesystem.
type MemoryFS struct {
	mu    sync.RWMutex
	dirs  map[string]bool
	files map[string][]byte

	errorPaths map[string]error

	// Mutation counters, one per primitive.
	MkdirCalls  int
	WriteCalls  int
	RemoveCalls int
}

// NewMemoryFS returns an empty in-memory filesystem containing only the
// root directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		dirs:       map[string]bool{"/": true, ".": true},
		files:      make(map[string][]byte),
		errorPaths: make(map[string]error),
	}
}

// AddDir records a directory (and its parents) as existing.
func (m *MemoryFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addDirLocked(filepath.Clean(path))
}

// AddFile records a file as existing with the given content. The parent
// directory is created implicitly.
func (m *MemoryFS) AddFile(path, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	m.addDirLocked(filepath.Dir(clean))
	m.files[clean] = []byte(content)
}

// InjectError makes every operation on path fail with err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) addDirLocked(path string) {
	for p := path; ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if p == filepath.Dir(p) {
			return
		}
	}
}

func (m *MemoryFS) injected(path string) error {
	return m.errorPaths[filepath.Clean(path)]
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.injected(name); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}

	clean := filepath.Clean(name)
	if m.dirs[clean] {
		return fileInfo{name: filepath.Base(clean), dir: true}, nil
	}
	if data, ok := m.files[clean]; ok {
		return fileInfo{name: filepath.Base(clean), size: int64(len(data))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.injected(name); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}

	data, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCalls++
	if err := m.injected(name); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	clean := filepath.Clean(name)
	if !m.dirs[filepath.Dir(clean)] {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	m.files[clean] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MkdirCalls++
	if err := m.injected(path); err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}

	m.addDirLocked(filepath.Clean(path))
	return nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RemoveCalls++
	if err := m.injected(name); err != nil {
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}

	clean := filepath.Clean(name)
	if _, ok := m.files[clean]; ok {
		delete(m.files, clean)
		return nil
	}
	if m.dirs[clean] {
		delete(m.dirs, clean)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}

// HasFile reports whether the file exists, and its content.
func (m *MemoryFS) HasFile(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return string(data), ok
}

// HasDir reports whether the directory exists.
func (m *MemoryFS) HasDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[filepath.Clean(path)]
}

// fileInfo is a minimal fs.FileInfo for in-memory entries.
type fileInfo struct {
	name string
	size int64
	dir  bool
}

func (f fileInfo) Name() string { return f.name }
func (f fileInfo) Size() int64  { return f.size }
func (f fileInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return f.dir }
func (f fileInfo) Sys() interface{}   { return nil }
