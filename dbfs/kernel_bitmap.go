package dbfs

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/csrbfs/bitmap"
	"github.com/katalvlaran/csrbfs/internal/parallelfor"
)

// shortFrontierDivisor matches bfs_hybrid_bitmap.cpp's "unvisited_vertices
// < N/24" threshold for materializing the unvisited-vertex list instead
// of scanning [0, N) directly during bottom-up.
const shortFrontierDivisor = 24

// bfsBitmap runs the direction-optimizing level loop over the Engine's
// three pre-allocated bitsets, clearing them at the start of the call (see
// doc.go), and writes distances or parents directly into out as vertices
// are discovered — there is no merged-style postprocessing pass.
func (e *Engine) bfsBitmap(ctx context.Context, source uint32, out []int32) error {
	this, next, visited := e.bmThis, e.bmNext, e.bmVisited
	this.ClearAll()
	next.ClearAll()
	visited.ClearAll()
	for i := range out {
		out[i] = Unreachable
	}

	this.Set(source)
	visited.Set(source)
	if e.flavor == Distances {
		out[source] = 0
	} else {
		out[source] = int32(source)
	}

	dir := topDown
	unexploredEdges := uint64(e.g.M)
	edgesFrontier := uint64(e.g.Degree(source))
	verticesFrontier := uint64(1)
	unvisitedVertices := uint64(e.g.N - 1)
	distance := int64(1)

	for level := 0; ; level++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		dir = e.nextDirection(dir, edgesFrontier, unexploredEdges, verticesFrontier)
		e.logLevel(level, dir, int(this.Count()))

		unexploredEdges -= edgesFrontier

		var err error
		if dir == topDown {
			edgesFrontier, verticesFrontier, err = e.topDownBitmap(ctx, this, next, visited, distance, out)
		} else {
			edgesFrontier, verticesFrontier, err = e.bottomUpBitmap(ctx, this, next, visited, distance, unvisitedVertices, out)
		}
		if err != nil {
			return err
		}
		unvisitedVertices -= verticesFrontier

		if verticesFrontier == 0 {
			break
		}

		this, next = next, this
		next.ClearAll()
		distance++
	}

	return nil
}

// topDownBitmap scans this's set bits (the current frontier), and for
// every out-neighbor not yet visited, sets it in next/visited and writes
// out. Matches bfs_hybrid_bitmap.cpp's top_down_step. Multiple frontier
// vertices may race to discover the same neighbor u, so both the
// visited-test-and-set and the next-frontier set go through the atomic
// bitset operations.
func (e *Engine) topDownBitmap(ctx context.Context, this, next, visited *bitmap.Frontier, distance int64, out []int32) (uint64, uint64, error) {
	frontierList := make([]uint32, 0, this.Count())
	this.Range(func(v uint32) { frontierList = append(frontierList, v) })

	var edgesFrontier, verticesFrontier uint64

	step := func(lo, hi uint32) error {
		var localEdges, localVertices uint64
		for i := lo; i < hi; i++ {
			v := frontierList[i]
			for _, u := range e.g.OutEdges(v) {
				if !visited.SetAtomic(u) {
					continue
				}
				next.SetAtomic(u)
				if e.flavor == Distances {
					out[u] = int32(distance)
				} else {
					out[u] = int32(v)
				}
				localEdges += uint64(e.g.Degree(u))
				localVertices++
			}
		}
		atomic.AddUint64(&edgesFrontier, localEdges)
		atomic.AddUint64(&verticesFrontier, localVertices)

		return nil
	}

	if err := parallelfor.Range(ctx, uint32(len(frontierList)), e.cfg.parallelMinVerticesTopDown, e.cfg.workers, step); err != nil {
		return 0, 0, err
	}

	return edgesFrontier, verticesFrontier, nil
}

// bottomUpBitmap scans every not-yet-visited vertex, accepting the first
// neighbor found in this (the previous frontier) as its parent/distance
// source. When unvisitedVertices is small relative to N, it first
// materializes the unvisited-vertex list (the short-frontier
// optimization) instead of scanning all of [0, N). Every vertex in the
// scan range is owned by exactly one goroutine (chunks partition the
// range, candidate or not), so out[v] and the this/next/visited bit for v
// are written by a single writer; SetAtomic is still used since a
// neighboring vertex's bit may share the same 64-bit word.
func (e *Engine) bottomUpBitmap(ctx context.Context, this, next, visited *bitmap.Frontier, distance int64, unvisitedVertices uint64, out []int32) (uint64, uint64, error) {
	n := e.g.N
	var candidates []uint32
	if unvisitedVertices < uint64(n)/shortFrontierDivisor {
		candidates = make([]uint32, 0, unvisitedVertices)
		for v := uint32(0); v < n; v++ {
			if !visited.Test(v) {
				candidates = append(candidates, v)
			}
		}
	}

	var edgesFrontier, verticesFrontier uint64

	process := func(v uint32) bool {
		if visited.Test(v) {
			return false
		}
		for _, u := range e.g.OutEdges(v) {
			if !this.Test(u) {
				continue
			}
			next.SetAtomic(v)
			visited.SetAtomic(v)
			if e.flavor == Distances {
				out[v] = int32(distance)
			} else {
				out[v] = int32(u)
			}

			return true
		}

		return false
	}

	scanLen := n
	indexAt := func(i uint32) uint32 { return i }
	if candidates != nil {
		scanLen = uint32(len(candidates))
		indexAt = func(i uint32) uint32 { return candidates[i] }
	}

	step := func(lo, hi uint32) error {
		var localEdges, localVertices uint64
		for i := lo; i < hi; i++ {
			v := indexAt(i)
			if process(v) {
				localEdges += uint64(e.g.Degree(v))
				localVertices++
			}
		}
		atomic.AddUint64(&edgesFrontier, localEdges)
		atomic.AddUint64(&verticesFrontier, localVertices)

		return nil
	}

	if err := parallelfor.Range(ctx, scanLen, e.cfg.parallelMinVerticesBottomUp, e.cfg.workers, step); err != nil {
		return 0, 0, err
	}

	return edgesFrontier, verticesFrontier, nil
}
