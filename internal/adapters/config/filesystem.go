package config

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the filesystem operations the Loader needs.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file at path with data.
	WriteFile(path string, data []byte, perm fs.FileMode) error
	// ReadDir lists the directory at path sorted by file name.
	ReadDir(path string) ([]fs.DirEntry, error)
}

// OSFS implements FileSystem on the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is the discovered texwatch.yaml
	return os.ReadFile(path)
}

// WriteFile replaces the file at path with data.
func (o *OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// ReadDir lists the directory at path.
func (o *OSFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
