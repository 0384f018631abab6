package model

import (
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// FileFilter decides which files participate in a scan. It is built once per
// invocation and immutable afterwards; Matches is a pure function of
// (name, size).
type FileFilter struct {
	minSize      uint64
	maxSize      uint64
	typePattern  *regexp.Regexp
	excludeNames map[string]struct{}
}

// FilterOptions carries the user-supplied filter configuration. Sizes are
// byte counts, already parsed from their human-readable form.
type FilterOptions struct {
	MinSize     uint64
	MaxSize     uint64
	TypePattern string
	Exclude     []string
}

// DefaultTypePattern matches any file extension.
const DefaultTypePattern = ".*"

// NewFileFilter validates the options and compiles the type pattern.
// A malformed pattern or inverted size bounds is a configuration error,
// surfaced here rather than during traversal.
func NewFileFilter(opts FilterOptions) (*FileFilter, error) {
	if opts.MaxSize > 0 && opts.MinSize > opts.MaxSize {
		return nil, fmt.Errorf("min size %d exceeds max size %d", opts.MinSize, opts.MaxSize)
	}

	pattern := opts.TypePattern
	if pattern == "" {
		pattern = DefaultTypePattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file type pattern %q: %w", pattern, err)
	}

	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}

	return &FileFilter{
		minSize:      opts.MinSize,
		maxSize:      opts.MaxSize,
		typePattern:  re,
		excludeNames: exclude,
	}, nil
}

// Matches reports whether a file with the given base name and size should be
// scanned. Checks run in order (size bounds, exclude set, extension pattern)
// and short-circuit on the first failure.
func (f *FileFilter) Matches(name string, size uint64) bool {
	if size < f.minSize {
		return false
	}

	if f.maxSize > 0 && size > f.maxSize {
		return false
	}

	if _, excluded := f.excludeNames[name]; excluded {
		return false
	}

	return f.typePattern.MatchString(filepath.Ext(name))
}

// sizeUnits maps a size suffix to its byte multiplier.
var sizeUnits = map[string]uint64{
	"b":  1,
	"kb": 1 << 10,
	"mb": 1 << 20,
	"gb": 1 << 30,
}

// ParseSize converts a human-readable size such as "10kb" or "1gb" into a
// byte count. A bare number is taken as bytes.
func ParseSize(value string) (uint64, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	digits := strings.TrimRight(s, "bkmg")
	unit := s[len(digits):]

	multiplier := uint64(1)
	if unit != "" {
		m, ok := sizeUnits[unit]
		if !ok {
			return 0, fmt.Errorf("unknown size unit %q in %q", unit, value)
		}

		multiplier = m
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}

	if n > math.MaxUint64/multiplier {
		return 0, fmt.Errorf("size %q overflows", value)
	}

	return n * multiplier, nil
}
