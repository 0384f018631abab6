package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanadla/twinTrim/internal/controller"
	"github.com/aryanadla/twinTrim/internal/domain"
	m "github.com/aryanadla/twinTrim/internal/model"
)

// captureWorkflow records the ScanArgs the command hands to the workflow.
type captureWorkflow struct {
	args domain.ScanArgs
}

func (c *captureWorkflow) Scan(_ context.Context, args domain.ScanArgs) error {
	c.args = args
	return nil
}

func runScan(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newScanCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	logPath := filepath.Join(t.TempDir(), "twintrim.log")
	cmd.SetArgs(append([]string{"scan"}, append(args, "--no-color", "--log-file", logPath)...))

	err := cmd.Execute()

	return out, err
}

func writeScanFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestScanCmd_NoDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeScanFile(t, dir, "a.txt", "unique one")
	writeScanFile(t, dir, "b.txt", "a different size")

	out, err := runScan(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No duplicate files found.")
}

func TestScanCmd_PreviewListsWithoutDeleting(t *testing.T) {
	dir := t.TempDir()
	writeScanFile(t, dir, "a.txt", "0123456789")
	dup := writeScanFile(t, dir, "b.txt", "0123456789")

	out, err := runScan(t, dir, "--preview")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Found 1 sets of duplicate files:")
	assert.Contains(t, out.String(), "Preview mode active - No files will be deleted.")
	assert.Contains(t, out.String(), dup)

	_, statErr := os.Stat(dup)
	assert.NoError(t, statErr)
}

func TestScanCmd_AllDeletesDuplicates(t *testing.T) {
	dir := t.TempDir()
	orig := writeScanFile(t, dir, "a.txt", "0123456789")
	dup := writeScanFile(t, dir, "b.txt", "0123456789")

	out, err := runScan(t, dir, "--all")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Deleted 1 duplicate file(s)")

	_, statErr := os.Stat(dup)
	assert.True(t, os.IsNotExist(statErr))

	_, statErr = os.Stat(orig)
	assert.NoError(t, statErr)
}

func TestScanCmd_ExportText(t *testing.T) {
	dir := t.TempDir()
	writeScanFile(t, dir, "a.txt", "0123456789")
	writeScanFile(t, dir, "b.txt", "0123456789")

	exportPath := filepath.Join(t.TempDir(), "report.txt")

	out, err := runScan(t, dir, "--preview", "--export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Duplicate details exported to")

	content, readErr := os.ReadFile(exportPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "Original file:")
}

func TestScanCmd_ExcludeFlag(t *testing.T) {
	dir := t.TempDir()
	writeScanFile(t, dir, "a.txt", "0123456789")
	writeScanFile(t, dir, "b.txt", "0123456789")

	out, err := runScan(t, dir, "--exclude", "b.txt")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No duplicate files found.")
}

func TestScanCmd_RedirectedOutputSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	writeScanFile(t, dir, "a.txt", "0123456789")
	dup := writeScanFile(t, dir, "b.txt", "0123456789")

	// Without --all or --preview a buffered output writer must fall back to
	// the non-interactive path instead of waiting on a prompt.
	out, err := runScan(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "File deletion canceled.")

	_, statErr := os.Stat(dup)
	assert.NoError(t, statErr)
}

func TestScanCmd_InvalidMinSize(t *testing.T) {
	_, err := runScan(t, t.TempDir(), "--min-size", "nonsense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min-size")
}

func TestScanCmd_InvalidFileTypePattern(t *testing.T) {
	_, err := runScan(t, t.TempDir(), "--file-type", "[bad")
	require.Error(t, err)
}

func TestScanCmd_MissingDirectory(t *testing.T) {
	_, err := runScan(t, filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestScanCmd_PassesArgsToWorkflow(t *testing.T) {
	capture := &captureWorkflow{}

	originalFactory := newWorkflow
	newWorkflow = func(_ controller.UI) domain.Workflow { return capture }
	defer func() { newWorkflow = originalFactory }()

	dir := t.TempDir()
	_, err := runScan(t, dir, "--parallel", "3", "--all", "--min-size", "2kb", "--export-format", "yaml")
	require.NoError(t, err)

	assert.Equal(t, m.Path(dir), capture.args.Root)
	assert.Equal(t, 3, capture.args.Workers)
	assert.True(t, capture.args.DeleteAll)
	assert.False(t, capture.args.Preview)
	assert.Equal(t, "yaml", capture.args.ExportFormat)
	require.NotNil(t, capture.args.Filter)
	assert.False(t, capture.args.Filter.Matches("small.txt", 100), "min-size must be applied")
	assert.True(t, capture.args.Filter.Matches("big.txt", 4096))
}
