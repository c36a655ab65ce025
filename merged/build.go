package merged

import "github.com/katalvlaran/csrbfs/csr"

// Build constructs a merged-CSR Layout for g under the requested flavor.
// g is never retained; Build copies every value it needs into the new
// Cells/RowPtr arrays, so the returned Layout is independent of g.
func Build(g csr.Graph, flavor Flavor) (*Layout, error) {
	switch flavor {
	case Distances:
		// A BFS depth is at most N-1 and must fit the 30 payload bits.
		if g.N > MaxDegreeDistances+1 {
			return nil, ErrCapacityExceeded
		}

		return buildDistances(g)
	case Parents:
		if g.N > MaxVerticesParents {
			return nil, ErrCapacityExceeded
		}

		return buildParents(g)
	default:
		return nil, ErrUnknownFlavor
	}
}

// buildDistances lays out one header slot per vertex followed by its
// neighbor cells: Cells[RowPtr[v]] is v's header, Cells[RowPtr[v]+1 ..
// RowPtr[v+1]] are v's neighbors' header indices. Grounded on
// original_source/src/bfs.cpp's merged_csr().
func buildDistances(g csr.Graph) (*Layout, error) {
	rowPtr := make([]uint32, g.N+1)
	for v := uint32(0); v < g.N; v++ {
		rowPtr[v] = g.RowPtr[v] + v
	}
	rowPtr[g.N] = g.RowPtr[g.N] + g.N

	cells := make([]uint32, g.N+g.M)
	for v := uint32(0); v < g.N; v++ {
		degree := g.Degree(v)
		if degree > MaxDegreeDistances {
			return nil, ErrCapacityExceeded
		}

		hdr := rowPtr[v]
		cells[hdr] = degree | distancesMarkedMask

		for j, u := range g.OutEdges(v) {
			// u's header index is its own rebased RowPtr[u]: the same
			// formula computed above, re-derived here since u may be
			// any vertex regardless of iteration order.
			cells[hdr+1+uint32(j)] = g.RowPtr[u] + u
		}
	}

	return &Layout{Cells: cells, RowPtr: rowPtr, Flavor: Distances, N: g.N}, nil
}

// buildParents lays out two header slots per vertex (vertex id, parent)
// followed by its neighbor cells. Grounded on
// original_source/src/parents.cpp's merged_csr() for the large_graph
// (merged) flavor.
func buildParents(g csr.Graph) (*Layout, error) {
	rowPtr := make([]uint32, g.N+1)
	for v := uint32(0); v < g.N; v++ {
		rowPtr[v] = g.RowPtr[v] + 2*v
	}
	rowPtr[g.N] = g.RowPtr[g.N] + 2*g.N

	cells := make([]uint32, 2*g.N+g.M)
	for v := uint32(0); v < g.N; v++ {
		hdr := rowPtr[v]
		cells[hdr] = v
		cells[hdr+1] = unreachableParent

		for j, u := range g.OutEdges(v) {
			cells[hdr+2+uint32(j)] = g.RowPtr[u] + 2*u
		}
	}

	return &Layout{Cells: cells, RowPtr: rowPtr, Flavor: Parents, N: g.N}, nil
}
