// Package csr defines the Compressed Sparse Row graph representation that
// every other package in this module treats as the single source of truth
// for topology: a row-pointer array and a column (neighbor-id) array.
//
// A Graph is immutable for the lifetime of a BFS: nothing in this module
// mutates RowPtr or Col after construction (concurrent updates to the graph
// are an explicit non-goal). Callers build the arrays themselves — from a
// COO edge list, a file, or a generator — and hand ownership to Graph; this
// package only validates and exposes read-only queries.
//
// Complexity:
//
//   - New: O(N+M) to validate row-pointer monotonicity and column bounds.
//   - Degree, OutEdges: O(1).
//
// Errors:
//
//	ErrRowPtrLength      - len(RowPtr) != N+1.
//	ErrRowPtrNotMonotonic - RowPtr is not non-decreasing, or RowPtr[N] != M.
//	ErrColOutOfRange     - some Col[j] >= N.
//	ErrSourceOutOfRange  - a BFS source vertex >= N. Not returned by this
//	                       package; dbfs checks the source itself and returns
//	                       its own dbfs.ErrSourceOutOfRange.
package csr
