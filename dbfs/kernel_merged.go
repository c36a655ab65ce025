package dbfs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/csrbfs/internal/parallelfor"
	"github.com/katalvlaran/csrbfs/merged"
)

// bfsMerged runs the direction-optimizing level loop over a fresh merged
// layout built from e.g (see doc.go on why it is rebuilt per call), then
// writes the dense result into out via postprocessMerged.
func (e *Engine) bfsMerged(ctx context.Context, source uint32, out []int32) error {
	layout, err := merged.Build(e.g, e.mergedFlavor)
	if err != nil {
		return fmt.Errorf("dbfs: building merged layout: %w", err)
	}

	sourceHdr := layout.HeaderIndex(source)
	if e.flavor == Distances {
		layout.MarkDistance(sourceHdr, 0)
	} else {
		layout.MarkParent(sourceHdr, source)
	}

	dir := topDown
	unexploredEdges := uint64(e.g.M)
	edgesFrontier := uint64(e.g.Degree(source))
	verticesFrontier := uint64(1)
	distance := int64(1)

	frontier := []uint32{sourceHdr}

	for level := 0; len(frontier) > 0; level++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dir = e.nextDirection(dir, edgesFrontier, unexploredEdges, verticesFrontier)
		e.logLevel(level, dir, len(frontier))

		unexploredEdges -= edgesFrontier

		var next []uint32
		if dir == topDown {
			next, edgesFrontier, verticesFrontier, err = e.topDownMerged(ctx, layout, frontier, distance)
		} else {
			next, edgesFrontier, verticesFrontier, err = e.bottomUpMerged(ctx, layout, distance)
		}
		if err != nil {
			return err
		}

		frontier = next
		distance++
	}

	postprocessMerged(layout, e.flavor, source, out)

	return nil
}

// nextDirection applies the §4.3 direction-decision rule; beta==0
// disables the bottom-up->top-down switch (pure bottom-up).
func (e *Engine) nextDirection(dir direction, edgesFrontier, unexploredEdges, verticesFrontier uint64) direction {
	if dir == bottomUp {
		if e.beta > 0 && verticesFrontier < uint64(e.g.N)/uint64(e.beta) {
			return topDown
		}

		return bottomUp
	}

	if unexploredEdges/uint64(e.alpha) < edgesFrontier {
		return bottomUp
	}

	return topDown
}

// topDownMerged expands every header index in frontier, marking each
// unvisited out-neighbor and appending it to the next frontier. Chunks run
// concurrently via internal/parallelfor; each chunk accumulates a local
// result merged into the shared next-frontier slice under mu, matching
// the per-worker-local/merge-at-barrier shape used throughout this
// module's concurrency model.
func (e *Engine) topDownMerged(ctx context.Context, layout *merged.Layout, frontier []uint32, distance int64) ([]uint32, uint64, uint64, error) {
	var (
		mu               sync.Mutex
		next             = make([]uint32, 0, len(frontier))
		edgesFrontier    uint64
		verticesFrontier uint64
	)

	step := func(lo, hi uint32) error {
		localNext := make([]uint32, 0, hi-lo)
		var localEdges, localVertices uint64

		for i := lo; i < hi; i++ {
			hdr := frontier[i]
			v := layout.VertexAt(hdr)
			end := layout.NeighborEnd(v)
			start := end - layout.Degree(v)

			for j := start; j < end; j++ {
				nbrHdr := layout.NeighborAt(j)
				if layout.IsVisited(nbrHdr) {
					continue
				}

				var marked bool
				if e.flavor == Distances {
					marked = layout.MarkDistanceAtomic(nbrHdr, uint32(distance))
				} else {
					marked = layout.MarkParentAtomic(nbrHdr, v)
				}
				if !marked {
					continue
				}

				nv := layout.VertexAt(nbrHdr)
				localNext = append(localNext, nbrHdr)
				localEdges += uint64(layout.Degree(nv))
				localVertices++
			}
		}

		mu.Lock()
		next = append(next, localNext...)
		mu.Unlock()
		atomic.AddUint64(&edgesFrontier, localEdges)
		atomic.AddUint64(&verticesFrontier, localVertices)

		return nil
	}

	if err := parallelfor.Range(ctx, uint32(len(frontier)), e.cfg.parallelMinVerticesTopDown, e.cfg.workers, step); err != nil {
		return nil, 0, 0, err
	}

	return next, edgesFrontier, verticesFrontier, nil
}

// bottomUpMerged scans every still-unvisited vertex, accepting the first
// previous-frontier neighbor found as its parent. Chunks partition the
// vertex id space [0, N).
func (e *Engine) bottomUpMerged(ctx context.Context, layout *merged.Layout, distance int64) ([]uint32, uint64, uint64, error) {
	var (
		mu               sync.Mutex
		next             []uint32
		edgesFrontier    uint64
		verticesFrontier uint64
	)

	step := func(lo, hi uint32) error {
		var localNext []uint32
		var localEdges, localVertices uint64

		for v := lo; v < hi; v++ {
			hdr := layout.HeaderIndex(v)
			if layout.IsVisited(hdr) {
				continue
			}

			end := layout.NeighborEnd(v)
			start := end - layout.Degree(v)

			for j := start; j < end; j++ {
				nbrHdr := layout.NeighborAt(j)
				if !layout.IsVisited(nbrHdr) {
					continue
				}
				if e.flavor == Distances && layout.CopyUnmarked(nbrHdr) != uint32(distance-1) {
					continue
				}

				if e.flavor == Distances {
					layout.MarkDistance(hdr, uint32(distance))
				} else {
					parentVertex := layout.VertexAt(nbrHdr)
					layout.MarkParent(hdr, parentVertex)
				}

				localNext = append(localNext, hdr)
				localEdges += uint64(layout.Degree(v))
				localVertices++

				break
			}
		}

		mu.Lock()
		next = append(next, localNext...)
		mu.Unlock()
		atomic.AddUint64(&edgesFrontier, localEdges)
		atomic.AddUint64(&verticesFrontier, localVertices)

		return nil
	}

	if err := parallelfor.Range(ctx, layout.N, e.cfg.parallelMinVerticesBottomUp, e.cfg.workers, step); err != nil {
		return nil, 0, 0, err
	}

	return next, edgesFrontier, verticesFrontier, nil
}
