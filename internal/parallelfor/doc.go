// Package parallelfor provides the data-parallel, fork-join chunk splitter
// dbfs uses to run a BFS level's top-down or bottom-up kernel across
// multiple goroutines with a synchronous barrier at the end of the level.
//
// Range wraps golang.org/x/sync/errgroup: it partitions [0, n) into
// contiguous chunks, runs one goroutine per chunk, and returns once every
// chunk goroutine has returned, reporting the first error. After an error
// or a context cancellation, chunks that have not yet started return at
// once without running their work; chunks already running finish. This
// mirrors the worker-pool-with-barrier pattern used for level-synchronous
// graph traversal, but leans on errgroup rather than a hand-rolled
// WaitGroup/channel pair for error propagation and cancellation.
package parallelfor
