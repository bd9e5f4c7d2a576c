// Package adapter contains the infrastructure the bisection engine drives:
// ecosystem oracles, external commands, registries, environments and the
// project filesystem.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ProjectFSAdapter abstracts the filesystem operations used on the analyzed
// project so environment and manifest logic can be tested without touching
// the real project.
//
//nolint:interfacebloat // A richer interface keeps workspace logic decoupled from os/fs.
type ProjectFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path string, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path string) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path string) (string, error)

	// CreateTempDir creates a temporary directory.
	CreateTempDir(pattern string) (string, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path string) error

	// CopyDir recursively copies a project tree, skipping build and
	// dependency output directories.
	CopyDir(src, dst string) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) string
}

// skippedDirs are never copied into isolated environments; package managers
// recreate them.
var skippedDirs = map[string]struct{}{
	".git":         {},
	"vendor":       {},
	"node_modules": {},
	"target":       {},
	"__pycache__":  {},
	siteDirName:    {},
}

// LocalProjectFSAdapter is the os-backed ProjectFSAdapter.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFSAdapter) ReadFile(path string) ([]byte, error) {
	// #nosec G304 - path points into the analyzed project
	return os.ReadFile(path)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalProjectFSAdapter) WriteFile(path string, content []byte, perm os.FileMode) error {
	return os.WriteFile(path, content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalProjectFSAdapter) FileInfo(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists reports whether path exists.
func (a *LocalProjectFSAdapter) Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalProjectFSAdapter) HashFile(path string) (string, error) {
	// #nosec G304 - path points into the analyzed project
	f, err := os.Open(path)
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

// CreateTempDir creates a temporary directory.
func (a *LocalProjectFSAdapter) CreateTempDir(pattern string) (string, error) {
	return os.MkdirTemp("", pattern)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalProjectFSAdapter) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CopyDir recursively copies a directory tree.
func (a *LocalProjectFSAdapter) CopyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if info.IsDir() && path != src {
			if _, skip := skippedDirs[filepath.Base(path)]; skip {
				return filepath.SkipDir
			}
		}

		targetPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalProjectFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is internal project file path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is internal destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// JoinPath joins path elements into a single path.
func (a *LocalProjectFSAdapter) JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}
