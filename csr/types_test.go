package csr_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/csrbfs/csr"
	"github.com/stretchr/testify/require"
)

func TestNewValidGraph(t *testing.T) {
	// Path 0->1->2->3->4 (S2 topology).
	rowPtr := []uint32{0, 1, 2, 3, 4, 4}
	col := []uint32{1, 2, 3, 4}

	g, err := csr.New(rowPtr, col, 5, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(5), g.N)
	require.Equal(t, uint32(4), g.M)
	require.Equal(t, uint32(1), g.Degree(0))
	require.Equal(t, uint32(0), g.Degree(4))
	require.Equal(t, []uint32{1}, g.OutEdges(0))
}

func TestNewRowPtrLengthMismatch(t *testing.T) {
	_, err := csr.New([]uint32{0, 1}, []uint32{0}, 5, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, csr.ErrRowPtrLength))
}

func TestNewRowPtrNotMonotonic(t *testing.T) {
	_, err := csr.New([]uint32{0, 2, 1, 3}, []uint32{0, 1, 2}, 3, 3)
	require.Error(t, err)
	require.True(t, errors.Is(err, csr.ErrRowPtrNotMonotonic))
}

func TestNewRowPtrEndMismatch(t *testing.T) {
	_, err := csr.New([]uint32{0, 1, 2}, []uint32{0, 1}, 2, 5)
	require.Error(t, err)
	require.True(t, errors.Is(err, csr.ErrRowPtrNotMonotonic))
}

func TestNewColOutOfRange(t *testing.T) {
	_, err := csr.New([]uint32{0, 1}, []uint32{7}, 1, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, csr.ErrColOutOfRange))
}

func TestAverageDegree(t *testing.T) {
	g, err := csr.New([]uint32{0}, nil, 0, 0)
	require.NoError(t, err)
	require.Equal(t, float64(0), g.AverageDegree())

	g, err = csr.New([]uint32{0, 2, 4}, []uint32{1, 1, 0, 0}, 2, 4)
	require.NoError(t, err)
	require.Equal(t, float64(2), g.AverageDegree())
}
