// Package controller provides the user-facing output layer: colored console
// messages, the hashing progress bar and the interactive deletion prompt.
package controller

import (
	"os"

	"golang.org/x/term"

	m "github.com/aryanadla/twinTrim/internal/model"
)

// Selection is the outcome of one interactive prompt: the duplicates the user
// picked and whether they confirmed the deletion.
type Selection struct {
	Files     []m.Candidate
	Confirmed bool
}

// UI abstracts presentation so the workflow can be tested without a terminal.
type UI interface {
	// Infof, Successf, Warnf and Errorf print one user-facing line each, in
	// the role's color.
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// HashProgress is called per hashed file; (done, total) render the bar.
	HashProgress(done, total int)

	// ShowSummary renders the per-set summary table.
	ShowSummary(report m.DuplicateReport)

	// ShowPreview lists every duplicate without touching anything.
	ShowPreview(report m.DuplicateReport)

	// SelectDuplicates runs the checkbox/confirm prompt for one set.
	SelectDuplicates(set m.DuplicateSet) (Selection, error)
}

// IsTTY reports whether f is attached to a terminal. Non-TTY runs fall back
// to plain output and skip the interactive prompt.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
