package graphgen

import "github.com/katalvlaran/csrbfs/csr"

// Unreachable mirrors dbfs.Unreachable; duplicated here rather than
// imported so this package has no dependency on the engine it helps test.
const Unreachable = int32(-1)

// NaiveBFS runs a textbook single-goroutine, slice-queue breadth-first
// search over g from source, returning per-vertex distance and parent
// (both Unreachable where a vertex was never reached). It is the
// reference oracle dbfs's engine variants are checked against: simple
// enough to trust by inspection, at the cost of none of the engine's
// performance tricks. Adapted from the teacher's bfs.Walker loop, reworked
// for dense uint32 CSR vertex ids in place of the teacher's string ids.
func NaiveBFS(g csr.Graph, source uint32) (dist []int32, parent []int32) {
	dist = make([]int32, g.N)
	parent = make([]int32, g.N)
	for v := range dist {
		dist[v] = Unreachable
		parent[v] = Unreachable
	}

	if source >= g.N {
		return dist, parent
	}

	dist[source] = 0
	queue := make([]uint32, 0, g.N)
	queue = append(queue, source)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.OutEdges(u) {
			if dist[v] != Unreachable {
				continue
			}
			dist[v] = dist[u] + 1
			parent[v] = int32(u)
			queue = append(queue, v)
		}
	}

	return dist, parent
}
