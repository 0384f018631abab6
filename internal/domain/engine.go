package domain

import (
	"context"
	"log/slog"

	"github.com/aryanadla/twinTrim/internal/adapter"
	m "github.com/aryanadla/twinTrim/internal/model"
)

// FindArgs carries one engine invocation's inputs. OnProgress and OnWarning
// are optional side channels for the presentation layer; warnings are
// advisory and never fail the call.
type FindArgs struct {
	Root    m.Path
	Filter  *m.FileFilter
	Workers int

	OnProgress func(done, total int)
	OnWarning  func(m.Warning)
}

// Engine runs one full duplicate detection pass: scan, size pre-filter,
// parallel hash, digest grouping.
type Engine interface {
	FindDuplicates(ctx context.Context, args FindArgs) (m.DuplicateReport, error)
}

type engine struct {
	fs adapter.ScanFSAdapter
}

// NewEngine constructs an Engine backed by the provided filesystem adapter.
func NewEngine(fsAdapter adapter.ScanFSAdapter) Engine {
	return &engine{fs: fsAdapter}
}

// FindDuplicates is a barrier-synchronized batch: no result is published
// until every hashing task has completed or failed. An empty report is
// success, not an error.
func (e *engine) FindDuplicates(ctx context.Context, args FindArgs) (m.DuplicateReport, error) {
	hasher, err := NewParallelHasher(e.fs, args.Workers)
	if err != nil {
		return m.DuplicateReport{}, err
	}

	scanner := NewScanner(e.fs, args.Filter, args.OnWarning)

	candidates, err := scanner.Scan(args.Root)
	if err != nil {
		return m.DuplicateReport{}, err
	}

	buckets := GroupBySize(candidates)

	var workload []m.Candidate
	for _, bucket := range buckets {
		workload = append(workload, bucket...)
	}

	slog.Info("hashing size-colliding candidates",
		"root", args.Root,
		"candidates", len(candidates),
		"to_hash", len(workload),
		"workers", args.Workers,
	)

	total := len(workload)
	done := 0

	if args.OnProgress != nil {
		args.OnProgress(done, total)
	}

	results, err := hasher.HashAll(ctx, workload, func() {
		done++
		if args.OnProgress != nil {
			args.OnProgress(done, total)
		}
	})
	if err != nil {
		return m.DuplicateReport{}, err
	}

	for _, r := range results {
		if r.Err == nil {
			continue
		}

		w := m.Warning{Kind: m.WarnHash, Path: r.Candidate.Path, Err: r.Err}
		slog.Warn("hash failed, file excluded", "path", w.Path, "error", w.Err)

		if args.OnWarning != nil {
			args.OnWarning(w)
		}
	}

	report := GroupDuplicates(results)

	slog.Info("duplicate detection finished",
		"sets", len(report.Sets),
		"reclaimable_bytes", report.ReclaimableBytes(),
	)

	return report, nil
}
