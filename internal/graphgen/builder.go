package graphgen

import (
	"math/rand"

	"github.com/katalvlaran/csrbfs/csr"
)

// adjBuilder accumulates a directed edge list per source vertex in
// ascending (source, destination) order, then compiles it into a csr.Graph.
// Grounded on the teacher's builder package's Constructor idiom, adapted
// here from a mutable core.Graph target to a direct CSR compiler.
type adjBuilder struct {
	n     uint32
	edges [][]uint32 // edges[v] holds v's out-neighbors, append order == final order
}

func newAdjBuilder(n uint32) *adjBuilder {
	return &adjBuilder{n: n, edges: make([][]uint32, n)}
}

func (b *adjBuilder) addEdge(u, v uint32) {
	b.edges[u] = append(b.edges[u], v)
}

func (b *adjBuilder) build() csr.Graph {
	rowPtr := make([]uint32, b.n+1)
	var m uint32
	for v := uint32(0); v < b.n; v++ {
		m += uint32(len(b.edges[v]))
	}

	col := make([]uint32, 0, m)
	for v := uint32(0); v < b.n; v++ {
		rowPtr[v] = uint32(len(col))
		col = append(col, b.edges[v]...)
	}
	rowPtr[b.n] = uint32(len(col))

	g, err := csr.New(rowPtr, col, b.n, uint32(len(col)))
	if err != nil {
		// Every adjBuilder caller in this package only ever appends
		// valid (u<n, v<n) edges, so Validate can never fail here.
		panic(err)
	}

	return g
}

// Path builds the directed chain 0->1->...->n-1 (n-1 edges). n==0 yields
// the empty graph.
func Path(n uint32) csr.Graph {
	b := newAdjBuilder(n)
	for v := uint32(0); v+1 < n; v++ {
		b.addEdge(v, v+1)
	}

	return b.build()
}

// Cycle builds the directed ring 0->1->...->n-1->0. n==0 and n==1 (a single
// self-loop) are both accepted; n==1 produces one self-loop edge.
func Cycle(n uint32) csr.Graph {
	if n == 0 {
		return Path(0)
	}

	b := newAdjBuilder(n)
	for v := uint32(0); v < n; v++ {
		b.addEdge(v, (v+1)%n)
	}

	return b.build()
}

// Star builds a single hub vertex (0) with a directed edge to each of the
// remaining n-1 leaves. n==0 yields the empty graph; n==1 yields an
// isolated hub with no edges.
func Star(n uint32) csr.Graph {
	b := newAdjBuilder(n)
	for leaf := uint32(1); leaf < n; leaf++ {
		b.addEdge(0, leaf)
	}

	return b.build()
}

// DisconnectedUnion concatenates graphs into a single CSR graph, rebasing
// every later graph's vertex ids by the running vertex-count offset. No
// edges are added between components: the result is exactly as connected
// as its inputs, which is the point — it exercises multi-component BFS
// (unreached vertices outside the source's component).
func DisconnectedUnion(graphs ...csr.Graph) csr.Graph {
	var n, m uint32
	for _, g := range graphs {
		n += g.N
		m += g.M
	}

	rowPtr := make([]uint32, n+1)
	col := make([]uint32, 0, m)

	var vOffset, rOffset uint32
	for _, g := range graphs {
		for v := uint32(0); v < g.N; v++ {
			rowPtr[vOffset+v] = rOffset + g.RowPtr[v]
		}
		for _, u := range g.Col {
			col = append(col, u+vOffset)
		}
		vOffset += g.N
		rOffset += g.M
	}
	rowPtr[n] = uint32(len(col))

	out, err := csr.New(rowPtr, col, n, m)
	if err != nil {
		panic(err)
	}

	return out
}

// RandomDirected samples an Erdos-Renyi-style directed graph over n
// vertices: every ordered pair (i, j) with i != j is an independent
// Bernoulli trial with probability p, in stable (i asc, j asc) order so
// the same rng stream always yields the same edge set. Grounded on the
// teacher's builder.RandomSparse, adapted from its core.Graph target to a
// direct CSR compiler and to directed-only (self-loops never included:
// BFS fixtures gain nothing from them and the merged-CSR layout does not
// need to special-case them).
func RandomDirected(n uint32, p float64, rng *rand.Rand) csr.Graph {
	b := newAdjBuilder(n)
	for i := uint32(0); i < n; i++ {
		for j := uint32(0); j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				b.addEdge(i, j)
			}
		}
	}

	return b.build()
}
