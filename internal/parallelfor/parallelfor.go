package parallelfor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ErrFunc processes the half-open index range [lo, hi).
type ErrFunc func(lo, hi uint32) error

// Range splits [0, n) into up to workers contiguous chunks and runs fn over
// each chunk concurrently, returning the first error any chunk reports
// (errgroup cancels the shared context for the remaining chunks once one
// fails). If n is at or below minChunk, or workers <= 1, fn runs once
// inline on the whole range with no goroutines spawned — this keeps small
// levels (the common case late in a BFS, when the frontier has shrunk to a
// handful of vertices) free of scheduling overhead.
func Range(ctx context.Context, n uint32, minChunk uint32, workers int, fn ErrFunc) error {
	if n == 0 {
		return nil
	}
	if workers <= 1 || n <= minChunk {
		return fn(0, n)
	}

	chunks := uint32(workers)
	if chunks > n {
		chunks = n
	}
	chunkSize := (n + chunks - 1) / chunks

	g, ctx := errgroup.WithContext(ctx)
	for lo := uint32(0); lo < n; lo += chunkSize {
		lo := lo
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			return fn(lo, hi)
		})
	}

	return g.Wait()
}
