// Package dbfs is the public entry point for the direction-optimizing
// breadth-first search engine: given a validated CSR graph and a source
// vertex, it computes either per-vertex BFS distances or per-vertex BFS
// parents, alternating between a top-down (push) and a bottom-up (pull)
// frontier expansion kernel per Beamer et al.'s direction-optimizing BFS.
//
// Three storage variants back the same level-loop orchestration:
//
//	MergedCSR - per-vertex metadata interleaved into the neighbor array
//	            (package merged); best for low average out-degree.
//	Bitmap    - dense word-packed frontier/visited bitsets (package
//	            bitmap); best for high average out-degree.
//	Classic   - plain CSR plus a []atomic.Bool visited array; the always-correct
//	            reference baseline the other two variants are checked
//	            against.
//
// NewEngine resolves a VariantHeuristic request into MergedCSR or Bitmap
// by comparing M/N against a configurable threshold (default 10); the
// resolved variant never changes for the lifetime of the Engine.
//
// Engine.BFS is safe to call repeatedly (with different sources) on the
// same Engine: the MergedCSR variant's header cells are overwritten with
// distance/parent data as vertices are visited, so each call rebuilds the
// layout from the CSR graph before it runs; the Bitmap and Classic
// variants instead clear their existing bitsets/visited array in place.
// The rebuild cost is O(N+M), the same order as the BFS itself.
//
// The computational core never logs. A *slog.Logger supplied via
// WithLogger receives one Debug record per level, noting the active
// direction and per-level frontier size, purely as an external diagnostic
// — removing the logger (the default) costs nothing on the hot path.
//
// Complexity: NewEngine is O(N+M) (layout construction). BFS is O(N+M)
// amortized across its top-down levels; every bottom-up level scans all N
// vertices in every variant, so the worst case is O(N·levels). Only the
// bitmap variant narrows that scan, via the short-frontier optimization
// once most vertices are visited.
package dbfs
