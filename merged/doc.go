// Package merged builds and manipulates the "merged CSR" layout used by the
// sparse (low average-degree) BFS variant: per-vertex metadata — a degree or
// vertex-id header, a VISITED/MARKED tag, and (for the parents flavor) a
// parent slot — is interleaved directly into the neighbor-list array, and
// each neighbor cell stores the neighbor's own header index rather than its
// raw vertex id. This removes the col[j] -> rowptr[col[j]] indirection from
// the BFS hot loop at the cost of one extra array (Cells) and a rebased row
// pointer (RowPtr).
//
// Two Flavors are supported:
//
//	Distances - one header slot per vertex, holding its out-degree until
//	            visited, then its BFS depth. Cells has N+M entries.
//	Parents   - two slots per vertex (header + parent), holding the
//	            vertex's own id until visited, then its recorded parent.
//	            Cells has 2N+M entries.
//
// Layout.Cells is an exported field, so callers outside this package can
// read and write raw cell values directly; the field itself does not hide
// the bit layout. The dbfs engine reads and writes cells only through the
// tagged-bit accessors (IsVisited, CopyUnmarked, MarkDistance, MarkParent,
// ...).
//
// Concurrency: the *Atomic accessors use a compare-and-swap retry loop,
// the same "mark visited once" CAS idiom a concurrent graph walk in the
// retrieval pack uses to claim a node exactly once
// (wllclngn-Tests/21-concurrent-dfs.go's node.visited.CompareAndSwap(false,
// true) guard), so multiple goroutines may race to mark the same header;
// exactly one write wins and every candidate write is a valid BFS result
// for that vertex (idempotent for Distances, tiebreak-tolerant for
// Parents).
//
// The scan boundary for a vertex's neighbor list is always RowPtr[v+1] —
// this package never writes or relies on a sentinel cell at Cells[N+M].
package merged
