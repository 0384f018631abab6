// Package model defines the data structures for duplicate file detection.
package model

// Path represents a file system path.
type Path string

// Candidate is a file that passed the filter during traversal. Index is the
// scan-order position and is the tie-break key for every downstream ordering
// decision.
type Candidate struct {
	Path  Path
	Size  uint64
	Index int
}

// WarningKind categorizes advisory per-file problems raised while scanning.
type WarningKind string

const (
	// WarnTraversal is raised when a directory cannot be read; traversal
	// continues with its siblings.
	WarnTraversal WarningKind = "traversal"
	// WarnHash is raised when a candidate cannot be hashed (vanished,
	// permission revoked, I/O error); the file is excluded from grouping.
	WarnHash WarningKind = "hash"
)

// Warning is an advisory problem recorded during a scan. Warnings never fail
// the scan as a whole.
type Warning struct {
	Kind WarningKind
	Path Path
	Err  error
}
