// Package adapter contains infrastructure adapters for the almanac CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/almanac/internal/model"
)

// AlmanacFSAdapter abstracts the filesystem operations the domain layer relies
// on, so workflows can be tested without touching the disk.
type AlmanacFSAdapter interface {
	// Open returns a reader over the almanac file.
	Open(path m.Path) (io.ReadCloser, error)

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to path, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Abs resolves path against the working directory.
	Abs(path m.Path) (m.Path, error)
}

// LocalAlmanacFSAdapter is the os-backed AlmanacFSAdapter.
type LocalAlmanacFSAdapter struct{}

// NewLocalAlmanacFSAdapter constructs a LocalAlmanacFSAdapter.
func NewLocalAlmanacFSAdapter() *LocalAlmanacFSAdapter {
	return &LocalAlmanacFSAdapter{}
}

// Open opens the file for reading.
func (a *LocalAlmanacFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - the path is the almanac the user asked to read
	return os.Open(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalAlmanacFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := a.Open(path)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalAlmanacFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalAlmanacFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Abs returns an absolute form of path.
func (a *LocalAlmanacFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
