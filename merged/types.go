package merged

// Flavor selects which per-vertex metadata the merged layout stores.
type Flavor int

const (
	// Distances stores, per vertex, a single header slot: out-degree until
	// visited, BFS depth afterward.
	Distances Flavor = iota

	// Parents stores, per vertex, a header slot (vertex id until visited,
	// then a VISITED tag) plus a parent slot.
	Parents
)

// String renders the flavor name for diagnostics and error messages.
func (f Flavor) String() string {
	switch f {
	case Distances:
		return "distances"
	case Parents:
		return "parents"
	default:
		return "unknown"
	}
}

// hdrSize returns the number of metadata slots a vertex's header occupies:
// 1 for Distances, 2 (header + parent) for Parents.
func (f Flavor) hdrSize() uint32 {
	if f == Parents {
		return 2
	}

	return 1
}

// Bit layout. Distances reserves two tag bits (MARKED identifies a header
// slot; VISITED marks it reached) leaving 30 payload bits. Parents reserves
// a single VISITED bit leaving 31 payload bits for a vertex id.
const (
	distancesMarkedBit  = 31
	distancesVisitedBit = 30

	distancesMarkedMask  = uint32(1) << distancesMarkedBit
	distancesVisitedMask = uint32(1) << distancesVisitedBit
	distancesTagMask     = distancesMarkedMask | distancesVisitedMask
	distancesPayloadMask = ^distancesTagMask

	parentsVisitedBit  = 31
	parentsVisitedMask = uint32(1) << parentsVisitedBit
	parentsPayloadMask = ^parentsVisitedMask
)

// MaxDegreeDistances is the largest out-degree a single vertex may have
// under the Distances flavor (30 payload bits).
const MaxDegreeDistances = distancesPayloadMask

// MaxVerticesParents is the largest vertex count supported by the Parents
// flavor (31 payload bits for a vertex id, per spec.md §3).
const MaxVerticesParents = parentsPayloadMask

// unreachableParent is the bit pattern stored in a parent slot before that
// vertex has been visited; it decodes to dbfs.Unreachable (-1).
const unreachableParent = uint32(0xFFFFFFFF)

// Layout is the merged-CSR array plus the rebased row pointer that indexes
// into it. See package doc for the bit-layout contract.
type Layout struct {
	Cells  []uint32 // length N+M (Distances) or 2N+M (Parents)
	RowPtr []uint32 // rebased: RowPtr[v] is v's header index; length N+1
	Flavor Flavor
	N      uint32
}

// HeaderIndex returns the index of vertex v's header slot in Cells.
func (l *Layout) HeaderIndex(v uint32) uint32 { return l.RowPtr[v] }

// NeighborEnd returns the exclusive upper bound of vertex v's slot range —
// the scan boundary for both the header and its neighbor cells.
func (l *Layout) NeighborEnd(v uint32) uint32 { return l.RowPtr[v+1] }

// Degree returns the number of neighbor cells (out-edges) vertex v owns,
// independent of header size.
func (l *Layout) Degree(v uint32) uint32 {
	return l.RowPtr[v+1] - l.RowPtr[v] - l.Flavor.hdrSize()
}
