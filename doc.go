// Package csrbfs is a high-performance, in-memory, single-source
// direction-optimizing breadth-first search engine over large, static,
// unweighted, directed graphs stored in Compressed Sparse Row form.
//
// Given a source vertex, csrbfs computes either per-vertex BFS distances
// or per-vertex BFS parents for every reachable vertex, alternating
// between a top-down (push) frontier expansion and a bottom-up (pull)
// frontier expansion per level, following Beamer, Asanović & Patterson's
// direction-optimizing BFS.
//
// The module is organized, one directory per concern:
//
//	csr/             - the caller-owned CSR graph type and its precondition
//	                   validation.
//	merged/          - the bit-tagged "merged CSR" layout that interleaves
//	                   per-vertex metadata into the neighbor array, used by
//	                   the low-average-degree engine variant.
//	bitmap/          - word-packed frontier/visited bitsets, used by the
//	                   high-average-degree engine variant.
//	internal/parallelfor - the fork-join parallel-for every kernel shares.
//	internal/graphgen    - deterministic CSR fixture generators and a
//	                   naive reference BFS, used only by this module's own
//	                   tests and benchmarks.
//	dbfs/            - the public entry point: Engine, Config/Option,
//	                   the variant selector, and the level-loop
//	                   orchestration tying the storage layouts together.
//
// Typical use:
//
//	g, err := csr.New(rowPtr, col, n, m)
//	engine, err := dbfs.NewEngine(g, dbfs.Distances, dbfs.WithVariant(dbfs.VariantHeuristic))
//	out := make([]int32, n)
//	err = engine.BFS(ctx, source, out)
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// requirements document and the grounding ledger behind each package.
package csrbfs
