package dbfs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/csrbfs/internal/parallelfor"
)

// bfsClassic runs the direction-optimizing level loop over plain CSR
// (e.g.RowPtr/e.g.Col) plus a boolean visited array — the always-correct
// reference baseline, grounded on original_source/src/parents.cpp's
// classic::Graph. It shares the same level-loop shape as the bitmap and
// merged variants, differing only in storage: no merged header, no
// bitmap frontiers, just a plain []uint32 frontier list and a visited
// array, scanned directly against the caller's CSR arrays.
func (e *Engine) bfsClassic(ctx context.Context, source uint32, out []int32) error {
	visited := e.classicVisited
	for i := range visited {
		visited[i].Store(false)
	}
	for i := range out {
		out[i] = Unreachable
	}

	visited[source].Store(true)
	if e.flavor == Distances {
		out[source] = 0
	} else {
		out[source] = int32(source)
	}

	dir := topDown
	unexploredEdges := uint64(e.g.M)
	edgesFrontier := uint64(e.g.Degree(source))
	verticesFrontier := uint64(1)
	distance := int64(1)

	frontier := []uint32{source}

	for level := 0; len(frontier) > 0; level++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dir = e.nextDirection(dir, edgesFrontier, unexploredEdges, verticesFrontier)
		e.logLevel(level, dir, len(frontier))

		unexploredEdges -= edgesFrontier

		var (
			next []uint32
			err  error
		)
		if dir == topDown {
			next, edgesFrontier, verticesFrontier, err = e.topDownClassic(ctx, frontier, visited, distance, out)
		} else {
			next, edgesFrontier, verticesFrontier, err = e.bottomUpClassic(ctx, visited, distance, out)
		}
		if err != nil {
			return err
		}

		frontier = next
		distance++
	}

	return nil
}

func (e *Engine) topDownClassic(ctx context.Context, frontier []uint32, visited []atomic.Bool, distance int64, out []int32) ([]uint32, uint64, uint64, error) {
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
			v := frontier[i]
			for _, u := range e.g.OutEdges(v) {
				if !visited[u].CompareAndSwap(false, true) {
					continue
				}
				if e.flavor == Distances {
					out[u] = int32(distance)
				} else {
					out[u] = int32(v)
				}
				localNext = append(localNext, u)
				localEdges += uint64(e.g.Degree(u))
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

func (e *Engine) bottomUpClassic(ctx context.Context, visited []atomic.Bool, distance int64, out []int32) ([]uint32, uint64, uint64, error) {
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
			if visited[v].Load() {
				continue
			}

			for _, u := range e.g.OutEdges(v) {
				if !visited[u].Load() {
					continue
				}
				if e.flavor == Distances && out[u] != int32(distance-1) {
					continue
				}

				if !visited[v].CompareAndSwap(false, true) {
					break
				}
				if e.flavor == Distances {
					out[v] = int32(distance)
				} else {
					out[v] = int32(u)
				}
				localNext = append(localNext, v)
				localEdges += uint64(e.g.Degree(v))
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

	if err := parallelfor.Range(ctx, e.g.N, e.cfg.parallelMinVerticesBottomUp, e.cfg.workers, step); err != nil {
		return nil, 0, 0, err
	}

	return next, edgesFrontier, verticesFrontier, nil
}
