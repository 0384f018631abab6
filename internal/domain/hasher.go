package domain

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/aryanadla/twinTrim/internal/adapter"
	m "github.com/aryanadla/twinTrim/internal/model"
)

// ErrNoWorkers is returned when the hashing pool is configured with a
// negative worker bound.
var ErrNoWorkers = errors.New("worker count must be positive")

// ParallelHasher computes content digests across a bounded pool of workers.
// The bound also caps concurrently open file descriptors.
type ParallelHasher struct {
	fs      adapter.ScanFSAdapter
	workers int
}

// NewParallelHasher constructs a hasher. A workers value of zero means "use
// the available CPU parallelism".
func NewParallelHasher(fsAdapter adapter.ScanFSAdapter, workers int) (*ParallelHasher, error) {
	if workers < 0 {
		return nil, ErrNoWorkers
	}

	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return &ParallelHasher{fs: fsAdapter, workers: workers}, nil
}

// HashAll digests every candidate and returns one HashResult per input, in
// completion order. A per-file read failure is captured in its result, never
// aborting the batch; only context cancellation stops the pool early. HashAll
// blocks until every in-flight task has finished, so the caller observes a
// complete batch or none at all. onDone, if non-nil, fires once per finished
// file.
func (h *ParallelHasher) HashAll(ctx context.Context, candidates []m.Candidate, onDone func()) ([]m.HashResult, error) {
	results := make([]m.HashResult, 0, len(candidates))
	sink := make(chan m.HashResult)

	// Single aggregating consumer: workers run in parallel but report
	// through one channel, so no lock is needed around the slice.
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range sink {
			results = append(results, r)

			if onDone != nil {
				onDone()
			}
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(h.workers)

	for _, candidate := range candidates {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			digest, err := h.fs.HashFile(groupCtx, candidate.Path)

			select {
			case sink <- m.HashResult{Candidate: candidate, Digest: digest, Err: err}:
				return nil
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		})
	}

	err := group.Wait()
	close(sink)
	<-collected

	if err != nil {
		return nil, err
	}

	return results, nil
}
