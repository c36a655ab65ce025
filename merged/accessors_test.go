package merged_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/csrbfs/csr"
	"github.com/katalvlaran/csrbfs/merged"
	"github.com/stretchr/testify/require"
)

func TestMarkDistanceAndAtomicVariant(t *testing.T) {
	g := pathGraph(t)
	l, err := merged.Build(g, merged.Distances)
	require.NoError(t, err)

	hdr0 := l.HeaderIndex(0)
	l.MarkDistance(hdr0, 0)
	require.True(t, l.IsVisited(hdr0))
	require.True(t, l.IsMarked(hdr0))
	require.Equal(t, uint32(0), l.CopyUnmarked(hdr0))

	hdr1 := l.HeaderIndex(1)
	ok := l.MarkDistanceAtomic(hdr1, 1)
	require.True(t, ok)
	require.True(t, l.IsVisited(hdr1))
	require.Equal(t, uint32(1), l.CopyUnmarked(hdr1))

	// second marking attempt on an already-visited header must lose.
	ok = l.MarkDistanceAtomic(hdr1, 1)
	require.False(t, ok)
}

func TestMarkDistanceAtomicConcurrentSingleWinner(t *testing.T) {
	g := pathGraph(t)
	l, err := merged.Build(g, merged.Distances)
	require.NoError(t, err)

	hdr := l.HeaderIndex(2)
	const racers = 16
	var wg sync.WaitGroup
	wins := make([]bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i] = l.MarkDistanceAtomic(hdr, 3)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, w := range wins {
		if w {
			winners++
		}
	}
	require.Equal(t, 1, winners)
	require.Equal(t, uint32(3), l.CopyUnmarked(hdr))
}

func TestMarkParentAndAtomicVariant(t *testing.T) {
	g := pathGraph(t)
	l, err := merged.Build(g, merged.Parents)
	require.NoError(t, err)

	hdr0 := l.HeaderIndex(0)
	l.MarkParent(hdr0, 0xFFFFFFFF)
	require.True(t, l.IsVisited(hdr0))

	hdr1 := l.HeaderIndex(1)
	ok := l.MarkParentAtomic(hdr1, hdr0)
	require.True(t, ok)
	require.True(t, l.IsVisited(hdr1))
	require.Equal(t, hdr0, l.Parent(hdr1))

	ok = l.MarkParentAtomic(hdr1, hdr0)
	require.False(t, ok)
}

func TestMarkParentAtomicConcurrentSingleWinnerWritesSlot(t *testing.T) {
	g := pathGraph(t)
	l, err := merged.Build(g, merged.Parents)
	require.NoError(t, err)

	hdr := l.HeaderIndex(3)
	const racers = 16
	var wg sync.WaitGroup
	wins := make([]bool, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i] = l.MarkParentAtomic(hdr, uint32(i))
		}(i)
	}
	wg.Wait()

	winners := 0
	var winnerParent uint32
	for i, w := range wins {
		if w {
			winners++
			winnerParent = uint32(i)
		}
	}
	require.Equal(t, 1, winners)
	require.Equal(t, winnerParent, l.Parent(hdr))
}

func TestVertexAtInvertsHeaderIndex(t *testing.T) {
	g := pathGraph(t)
	l, err := merged.Build(g, merged.Distances)
	require.NoError(t, err)

	for v := uint32(0); v < g.N; v++ {
		require.Equal(t, v, l.VertexAt(l.HeaderIndex(v)))
	}
}

func TestIsMarkedOnlyAppliesToDistances(t *testing.T) {
	g, err := csr.New([]uint32{0, 0}, nil, 1, 0)
	require.NoError(t, err)

	lp, err := merged.Build(g, merged.Parents)
	require.NoError(t, err)
	require.False(t, lp.IsMarked(lp.HeaderIndex(0)))

	ld, err := merged.Build(g, merged.Distances)
	require.NoError(t, err)
	require.True(t, ld.IsMarked(ld.HeaderIndex(0)))
}
