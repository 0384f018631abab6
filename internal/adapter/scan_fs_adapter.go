// Package adapter contains filesystem and export adapters for the twintrim CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/aryanadla/twinTrim/internal/model"
)

// ScanFSAdapter abstracts the filesystem operations the duplicate engine
// relies on. It hides direct `os` access so the engine and workflow logic can
// be tested without touching the disk.
type ScanFSAdapter interface {
	// Stat returns metadata for a path, following symlinks.
	Stat(path m.Path) (os.FileInfo, error)

	// WalkDir traverses the tree rooted at root in lexical order, calling fn
	// for every entry. Symlinked directories are not descended into.
	WalkDir(root m.Path, fn fs.WalkDirFunc) error

	// HashFile streams the file's full content through SHA-256 and returns
	// the hex digest.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// Remove deletes a single file.
	Remove(path m.Path) error
}

// LocalScanFSAdapter is the os-backed implementation of ScanFSAdapter.
type LocalScanFSAdapter struct{}

// NewLocalScanFSAdapter constructs a LocalScanFSAdapter ready to be wired
// into the engine.
func NewLocalScanFSAdapter() *LocalScanFSAdapter {
	return &LocalScanFSAdapter{}
}

// Stat returns os.Stat metadata for the given path.
func (a *LocalScanFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WalkDir walks the tree rooted at root. filepath.WalkDir visits entries in
// lexical order within each directory and does not follow symlinks, which is
// exactly the traversal contract the engine needs.
func (a *LocalScanFSAdapter) WalkDir(root m.Path, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(string(root), fn)
}

// HashFile returns the SHA-256 hex digest of the file at the provided path.
func (a *LocalScanFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(string(path))
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

// Remove deletes the file at path.
func (a *LocalScanFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}
