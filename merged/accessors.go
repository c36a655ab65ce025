package merged

import (
	"sort"
	"sync/atomic"
)

// IsVisited reports whether the header at idx has been reached by BFS.
// idx must be a header index (a vertex's own, or a pre-resolved neighbor
// cell value, which is always a header index — see package doc).
func (l *Layout) IsVisited(idx uint32) bool {
	cell := atomic.LoadUint32(&l.Cells[idx])
	if l.Flavor == Distances {
		return cell&distancesVisitedMask != 0
	}

	return cell&parentsVisitedMask != 0
}

// IsMarked reports whether idx carries the MARKED tag identifying a header
// slot. Only meaningful for the Distances flavor; Parents headers carry no
// separate MARKED bit (see package doc).
func (l *Layout) IsMarked(idx uint32) bool {
	return l.Flavor == Distances && atomic.LoadUint32(&l.Cells[idx])&distancesMarkedMask != 0
}

// CopyUnmarked returns the payload bits at idx with the flavor's tag bits
// stripped: the stored degree/distance (Distances) or vertex id (Parents,
// before the VISITED bit is set).
func (l *Layout) CopyUnmarked(idx uint32) uint32 {
	cell := atomic.LoadUint32(&l.Cells[idx])
	if l.Flavor == Distances {
		return cell &^ distancesTagMask
	}

	return cell &^ parentsVisitedMask
}

// VertexAt returns the vertex id whose header sits at index hdr, via
// binary search over the (strictly monotonic) rebased RowPtr. Top-down
// scanning arrives at header indices through pre-resolved neighbor cells
// (see package doc's "double indirection") and needs the vertex id back
// to find that header's neighbor-list boundary via NeighborEnd.
func (l *Layout) VertexAt(hdr uint32) uint32 {
	i := sort.Search(len(l.RowPtr), func(i int) bool { return l.RowPtr[i] > hdr })

	return uint32(i - 1)
}

// NeighborAt returns the raw cell value at idx: a neighbor cell's
// pre-resolved header index (never a tagged header value — callers only
// ever call this with an index known to be a neighbor cell, not a
// header).
func (l *Layout) NeighborAt(idx uint32) uint32 { return atomic.LoadUint32(&l.Cells[idx]) }

// Parent returns the recorded parent header-adjacent slot for the vertex
// whose header is at idx (Parents flavor only): Cells[idx+1], as a raw
// payload value (0xFFFFFFFF before the vertex is visited).
func (l *Layout) Parent(idx uint32) uint32 {
	return atomic.LoadUint32(&l.Cells[idx+1])
}

// MarkDistance marks the header at idx visited with the given distance.
// Safe to call concurrently with IsVisited/CopyUnmarked/NeighborAt reads
// of the same cell from other goroutines (e.g. bottom-up's cross-vertex
// scans), but not with another concurrent writer of idx — callers own
// that exclusivity (source initialization, or bottom-up's disjoint
// per-vertex partitioning). See MarkDistanceAtomic when idx may be
// written by more than one goroutine.
func (l *Layout) MarkDistance(idx uint32, distance uint32) {
	atomic.StoreUint32(&l.Cells[idx], distance|distancesTagMask)
}

// MarkDistanceAtomic attempts to mark the header at idx visited with the
// given distance via compare-and-swap. Reports whether this call performed
// the marking (false means another goroutine already visited idx this
// BFS — every writer would have written the same distance for the same
// level, so the race is convergent per spec.md §5).
func (l *Layout) MarkDistanceAtomic(idx uint32, distance uint32) bool {
	want := distance | distancesTagMask
	for {
		old := atomic.LoadUint32(&l.Cells[idx])
		if old&distancesVisitedMask != 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&l.Cells[idx], old, want) {
			return true
		}
	}
}

// MarkParent marks the header at idx visited and records parent in the
// following slot. See MarkDistance's concurrency contract: safe against
// concurrent readers of idx, not against a second concurrent writer.
func (l *Layout) MarkParent(idx uint32, parent uint32) {
	atomic.StoreUint32(&l.Cells[idx+1], parent)
	old := atomic.LoadUint32(&l.Cells[idx])
	atomic.StoreUint32(&l.Cells[idx], old|parentsVisitedMask)
}

// MarkParentAtomic attempts to mark the header at idx visited and record
// parent via compare-and-swap on the header word. Reports whether this
// call performed the marking; on success it alone writes Cells[idx+1], so
// the parent slot is free of data races (every other racer already lost
// the header CAS and returns before touching the slot).
func (l *Layout) MarkParentAtomic(idx uint32, parent uint32) bool {
	for {
		old := atomic.LoadUint32(&l.Cells[idx])
		if old&parentsVisitedMask != 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&l.Cells[idx], old, old|parentsVisitedMask) {
			atomic.StoreUint32(&l.Cells[idx+1], parent)

			return true
		}
	}
}
