package graphgen_test

import (
	"testing"

	"github.com/katalvlaran/csrbfs/internal/graphgen"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g := graphgen.Path(5)
	require.Equal(t, uint32(5), g.N)
	require.Equal(t, uint32(4), g.M)
	require.Equal(t, []uint32{1}, g.OutEdges(0))
	require.Empty(t, g.OutEdges(4))
}

func TestPathEmpty(t *testing.T) {
	g := graphgen.Path(0)
	require.Equal(t, uint32(0), g.N)
	require.Equal(t, uint32(0), g.M)
}

func TestCycle(t *testing.T) {
	g := graphgen.Cycle(4)
	require.Equal(t, uint32(4), g.M)
	require.Equal(t, []uint32{1}, g.OutEdges(0))
	require.Equal(t, []uint32{0}, g.OutEdges(3))
}

func TestCycleSingleVertexSelfLoop(t *testing.T) {
	g := graphgen.Cycle(1)
	require.Equal(t, []uint32{0}, g.OutEdges(0))
}

func TestStar(t *testing.T) {
	g := graphgen.Star(6)
	require.Equal(t, uint32(5), g.M)
	require.Equal(t, []uint32{1, 2, 3, 4, 5}, g.OutEdges(0))
	require.Empty(t, g.OutEdges(1))
}

func TestDisconnectedUnion(t *testing.T) {
	a := graphgen.Path(3) // 0->1->2
	b := graphgen.Star(3) // hub 0 -> {1,2}

	u := graphgen.DisconnectedUnion(a, b)
	require.Equal(t, uint32(6), u.N)
	require.Equal(t, uint32(4), u.M)

	// component a unchanged
	require.Equal(t, []uint32{1}, u.OutEdges(0))
	require.Equal(t, []uint32{2}, u.OutEdges(1))
	require.Empty(t, u.OutEdges(2))

	// component b rebased by offset 3: hub is vertex 3, leaves 4 and 5
	require.Equal(t, []uint32{4, 5}, u.OutEdges(3))
	require.Empty(t, u.OutEdges(4))

	dist, _ := graphgen.NaiveBFS(u, 0)
	require.Equal(t, graphgen.Unreachable, dist[3])
}

func TestRandomDirectedDeterministicForFixedSeed(t *testing.T) {
	rng1 := graphgen.NewRNG(42)
	rng2 := graphgen.NewRNG(42)

	g1 := graphgen.RandomDirected(50, 0.1, rng1)
	g2 := graphgen.RandomDirected(50, 0.1, rng2)

	require.Equal(t, g1.M, g2.M)
	require.Equal(t, g1.Col, g2.Col)
	require.Equal(t, g1.RowPtr, g2.RowPtr)
}

func TestRandomDirectedNoSelfLoops(t *testing.T) {
	g := graphgen.RandomDirected(30, 0.9, graphgen.NewRNG(7))
	for v := uint32(0); v < g.N; v++ {
		for _, u := range g.OutEdges(v) {
			require.NotEqual(t, v, u)
		}
	}
}

func TestRandomDirectedZeroProbabilityIsEmpty(t *testing.T) {
	g := graphgen.RandomDirected(20, 0, graphgen.NewRNG(1))
	require.Equal(t, uint32(0), g.M)
}

func TestDeriveRNGProducesDistinctStreams(t *testing.T) {
	base := graphgen.NewRNG(99)
	r1 := graphgen.DeriveRNG(base, 1)
	r2 := graphgen.DeriveRNG(base, 2)

	require.NotEqual(t, r1.Int63(), r2.Int63())
}

func TestNaiveBFSOnPath(t *testing.T) {
	g := graphgen.Path(5)
	dist, parent := graphgen.NaiveBFS(g, 0)
	require.Equal(t, []int32{0, 1, 2, 3, 4}, dist)
	require.Equal(t, []int32{graphgen.Unreachable, 0, 1, 2, 3}, parent)
}

func TestNaiveBFSUnreachableSource(t *testing.T) {
	g := graphgen.Path(3)
	dist, parent := graphgen.NaiveBFS(g, 5)
	require.Equal(t, []int32{graphgen.Unreachable, graphgen.Unreachable, graphgen.Unreachable}, dist)
	require.Equal(t, []int32{graphgen.Unreachable, graphgen.Unreachable, graphgen.Unreachable}, parent)
}
