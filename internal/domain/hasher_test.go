package domain

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanadla/twinTrim/internal/adapter"
	m "github.com/aryanadla/twinTrim/internal/model"
)

func TestNewParallelHasher_NegativeWorkers(t *testing.T) {
	_, err := NewParallelHasher(adapter.NewLocalScanFSAdapter(), -1)
	require.ErrorIs(t, err, ErrNoWorkers)
}

func TestNewParallelHasher_ZeroMeansCPUCount(t *testing.T) {
	h, err := NewParallelHasher(adapter.NewLocalScanFSAdapter(), 0)
	require.NoError(t, err)
	assert.Positive(t, h.workers)
}

func TestParallelHasher_HashAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "same content")
	writeFile(t, dir, "b.txt", "same content")
	writeFile(t, dir, "c.txt", "other content")

	candidates := []m.Candidate{
		{Path: m.Path(filepath.Join(dir, "a.txt")), Size: 12, Index: 0},
		{Path: m.Path(filepath.Join(dir, "b.txt")), Size: 12, Index: 1},
		{Path: m.Path(filepath.Join(dir, "c.txt")), Size: 13, Index: 2},
	}

	hasher, err := NewParallelHasher(adapter.NewLocalScanFSAdapter(), 2)
	require.NoError(t, err)

	var mu sync.Mutex
	completions := 0

	results, err := hasher.HashAll(context.Background(), candidates, func() {
		mu.Lock()
		completions++
		mu.Unlock()
	})
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, 3, completions)

	digests := make(map[m.Path]string)
	for _, r := range results {
		require.NoError(t, r.Err)
		digests[r.Candidate.Path] = r.Digest
	}

	assert.Equal(t, digests[candidates[0].Path], digests[candidates[1].Path])
	assert.NotEqual(t, digests[candidates[0].Path], digests[candidates[2].Path])
}

func TestParallelHasher_PerFileFailureDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.txt", "fine")

	candidates := []m.Candidate{
		{Path: m.Path(filepath.Join(dir, "missing.txt")), Size: 4, Index: 0},
		{Path: m.Path(filepath.Join(dir, "ok.txt")), Size: 4, Index: 1},
	}

	hasher, err := NewParallelHasher(adapter.NewLocalScanFSAdapter(), 1)
	require.NoError(t, err)

	results, err := hasher.HashAll(context.Background(), candidates, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byPath := make(map[m.Path]m.HashResult)
	for _, r := range results {
		byPath[r.Candidate.Path] = r
	}

	assert.Error(t, byPath[candidates[0].Path].Err)
	assert.NoError(t, byPath[candidates[1].Path].Err)
	assert.NotEmpty(t, byPath[candidates[1].Path].Digest)
}

func TestParallelHasher_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")

	hasher, err := NewParallelHasher(adapter.NewLocalScanFSAdapter(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = hasher.HashAll(ctx, []m.Candidate{
		{Path: m.Path(filepath.Join(dir, "a.txt")), Size: 1, Index: 0},
	}, nil)
	require.Error(t, err)
}
