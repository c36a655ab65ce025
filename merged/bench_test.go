package merged_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/csrbfs/csr"
	"github.com/katalvlaran/csrbfs/merged"
	"github.com/stretchr/testify/require"
)

// chainGraph builds a 0->1->...->n-1 path of n vertices, used as a cheap,
// deterministic fixture for layout-construction benchmarks.
func chainGraph(b *testing.B, n uint32) csr.Graph {
	b.Helper()
	rowPtr := make([]uint32, n+1)
	col := make([]uint32, 0, n)
	for v := uint32(0); v < n; v++ {
		rowPtr[v] = uint32(len(col))
		if v+1 < n {
			col = append(col, v+1)
		}
	}
	rowPtr[n] = uint32(len(col))

	g, err := csr.New(rowPtr, col, n, uint32(len(col)))
	require.NoError(b, err)

	return g
}

func BenchmarkBuildDistances(b *testing.B) {
	for _, n := range []uint32{1_000, 100_000} {
		g := chainGraph(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := merged.Build(g, merged.Distances)
				require.NoError(b, err)
			}
		})
	}
}

func BenchmarkMarkDistanceAtomic(b *testing.B) {
	g := chainGraph(b, 100_000)
	l, err := merged.Build(g, merged.Distances)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := uint32(i) % g.N
		l.MarkDistanceAtomic(l.HeaderIndex(v), uint32(i))
	}
}
