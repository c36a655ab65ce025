package csr

import "errors"

// Sentinel errors for csr package operations. Callers should branch with
// errors.Is, not string comparison.
var (
	// ErrRowPtrLength indicates RowPtr does not have exactly N+1 entries.
	ErrRowPtrLength = errors.New("csr: rowptr length must be N+1")

	// ErrRowPtrNotMonotonic indicates RowPtr is not non-decreasing, or
	// RowPtr[0] != 0, or RowPtr[N] != M.
	ErrRowPtrNotMonotonic = errors.New("csr: rowptr is not monotonic or inconsistent with M")

	// ErrColOutOfRange indicates some neighbor id in Col is >= N.
	ErrColOutOfRange = errors.New("csr: col entry out of range")

	// ErrSourceOutOfRange indicates a requested source vertex is >= N.
	ErrSourceOutOfRange = errors.New("csr: source vertex out of range")
)
