// Package domain implements the duplicate detection engine: traversal,
// size pre-filtering, parallel hashing and digest grouping.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/aryanadla/twinTrim/internal/adapter"
	m "github.com/aryanadla/twinTrim/internal/model"
)

// ErrInvalidRoot is returned when the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid root directory")

// Scanner walks a directory tree and yields the candidates that pass the
// filter, in lexical (deterministic) order.
type Scanner struct {
	fs        adapter.ScanFSAdapter
	filter    *m.FileFilter
	onWarning func(m.Warning)
}

// NewScanner constructs a Scanner. onWarning may be nil.
func NewScanner(fsAdapter adapter.ScanFSAdapter, filter *m.FileFilter, onWarning func(m.Warning)) *Scanner {
	return &Scanner{
		fs:        fsAdapter,
		filter:    filter,
		onWarning: onWarning,
	}
}

// Scan traverses root and returns every candidate in scan order. Unreadable
// subdirectories are reported as warnings and skipped; only a bad root is
// fatal.
func (s *Scanner) Scan(root m.Path) ([]m.Candidate, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	var candidates []m.Candidate

	walkErr := s.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.warn(m.Warning{Kind: m.WarnTraversal, Path: m.Path(path), Err: err})
			return nil
		}

		if d.IsDir() {
			return nil
		}

		size, regular, statErr := s.entrySize(path, d)
		if statErr != nil {
			s.warn(m.Warning{Kind: m.WarnTraversal, Path: m.Path(path), Err: statErr})
			return nil
		}

		if !regular {
			return nil
		}

		if !s.filter.Matches(d.Name(), size) {
			return nil
		}

		candidates = append(candidates, m.Candidate{
			Path:  m.Path(path),
			Size:  size,
			Index: len(candidates),
		})

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", root, walkErr)
	}

	slog.Debug("scan finished", "root", root, "candidates", len(candidates))

	return candidates, nil
}

// entrySize resolves the size of a walk entry with the stat the walk already
// performed. Symlinks are resolved one level: a link to a regular file counts
// as a regular file at the target's size, a link to anything else is skipped
// (the walk never descends into symlinked directories).
func (s *Scanner) entrySize(path string, d fs.DirEntry) (uint64, bool, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		target, err := s.fs.Stat(m.Path(path))
		if err != nil {
			return 0, false, err
		}

		if !target.Mode().IsRegular() {
			return 0, false, nil
		}

		return uint64(target.Size()), true, nil
	}

	info, err := d.Info()
	if err != nil {
		return 0, false, err
	}

	if !info.Mode().IsRegular() {
		return 0, false, nil
	}

	return uint64(info.Size()), true, nil
}

func (s *Scanner) warn(w m.Warning) {
	slog.Warn("scan warning", "kind", w.Kind, "path", w.Path, "error", w.Err)

	if s.onWarning != nil {
		s.onWarning(w)
	}
}
