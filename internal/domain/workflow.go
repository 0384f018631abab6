package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aryanadla/twinTrim/internal/adapter"
	"github.com/aryanadla/twinTrim/internal/controller"
	m "github.com/aryanadla/twinTrim/internal/model"
)

// ScanArgs carries one scan invocation from the command layer.
type ScanArgs struct {
	Root    m.Path
	Filter  *m.FileFilter
	Workers int

	// DeleteAll removes every duplicate without prompting.
	DeleteAll bool
	// Preview lists duplicates and stops before any deletion.
	Preview bool

	ExportPath   m.Path
	ExportFormat string
}

// Workflow drives one full user-facing scan: detection, reporting, optional
// export and deletion.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
}

type workflow struct {
	fs     adapter.ScanFSAdapter
	engine Engine
	ui     controller.UI
}

// NewWorkflow constructs a Workflow with the provided dependencies.
func NewWorkflow(fsAdapter adapter.ScanFSAdapter, engine Engine, ui controller.UI) Workflow {
	return &workflow{
		fs:     fsAdapter,
		engine: engine,
		ui:     ui,
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	start := time.Now()

	slog.Info("searching for duplicates", "root", args.Root)
	w.ui.Infof("Searching for duplicates in %s", args.Root)

	report, err := w.engine.FindDuplicates(ctx, FindArgs{
		Root:       args.Root,
		Filter:     args.Filter,
		Workers:    args.Workers,
		OnProgress: w.ui.HashProgress,
	})
	if err != nil {
		w.ui.Errorf("Error while finding duplicates. Check the log for details.")
		return err
	}

	if report.Empty() {
		w.ui.Successf("No duplicate files found.")
		slog.Info("no duplicate files found")

		return nil
	}

	w.ui.Warnf("Found %d sets of duplicate files:", len(report.Sets))
	w.ui.Successf("Total potential space saved: %.2f MB",
		float64(report.ReclaimableBytes())/(1024*1024))
	w.ui.ShowSummary(report)
	slog.Info("duplicates found",
		"sets", len(report.Sets), "reclaimable_bytes", report.ReclaimableBytes())

	if args.ExportPath != "" {
		if err := w.export(report, args.ExportPath, args.ExportFormat); err != nil {
			return err
		}
	}

	if args.Preview {
		w.ui.Successf("Preview mode active - No files will be deleted.")
		w.ui.ShowPreview(report)

		return nil
	}

	if args.DeleteAll {
		return w.deleteAll(report)
	}

	w.deleteInteractive(report)
	w.ui.Successf("Time taken: %.2f seconds.", time.Since(start).Seconds())

	return nil
}

func (w *workflow) export(report m.DuplicateReport, path m.Path, format string) error {
	exporter, err := adapter.NewExporter(format)
	if err != nil {
		return err
	}

	if err := exporter.Export(report, path); err != nil {
		return fmt.Errorf("exporting report to %s: %w", path, err)
	}

	w.ui.Successf("Duplicate details exported to %s", path)
	slog.Info("report exported", "path", path, "format", format)

	return nil
}

// deleteAll removes every duplicate in the report without prompting.
func (w *workflow) deleteAll(report m.DuplicateReport) error {
	slog.Info("deleting all duplicate files without asking")

	var removed int
	var reclaimed uint64

	for _, set := range report.Sets {
		n, bytes := w.removeFiles(set.Duplicates)
		removed += n
		reclaimed += bytes
	}

	w.ui.Successf("Deleted %d duplicate file(s), reclaimed %.2f MB.",
		removed, float64(reclaimed)/(1024*1024))

	return nil
}

// deleteInteractive prompts per set; a canceled prompt leaves the set intact.
func (w *workflow) deleteInteractive(report m.DuplicateReport) {
	for _, set := range report.Sets {
		w.ui.Infof("Original file: %q", set.Original.Path)
		w.ui.Infof("Number of duplicate files found: %d", len(set.Duplicates))
		w.ui.Infof("They are:")

		selection, err := w.ui.SelectDuplicates(set)
		if err != nil {
			w.ui.Errorf("Prompt failed: %v", err)
			slog.Error("selection prompt failed", "original", set.Original.Path, "error", err)

			continue
		}

		if !selection.Confirmed || len(selection.Files) == 0 {
			w.ui.Warnf("File deletion canceled.")
			continue
		}

		w.removeFiles(selection.Files)
	}
}

// removeFiles deletes the given files one by one. A failed unlink is reported
// and skipped, never aborting the rest.
func (w *workflow) removeFiles(files []m.Candidate) (int, uint64) {
	var removed int
	var reclaimed uint64

	for _, f := range files {
		if err := w.fs.Remove(f.Path); err != nil {
			w.ui.Errorf("Error deleting %s: %v", f.Path, err)
			slog.Error("delete failed", "path", f.Path, "error", err)

			continue
		}

		w.ui.Infof("Deleted: %s", f.Path)
		slog.Info("file deleted", "path", f.Path, "size", f.Size)

		removed++
		reclaimed += f.Size
	}

	return removed, reclaimed
}
