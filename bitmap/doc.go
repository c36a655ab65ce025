// Package bitmap implements the dense-layout BFS variant's frontier and
// visited tracking: word-packed bitsets sized to the vertex count, used in
// place of the merged-CSR header scheme when the graph's average degree is
// high enough that per-vertex metadata cells would cost more cache traffic
// than they save (see dbfs's selector heuristic).
//
// Frontier exposes SetAtomic, a compare-and-swap set, so a level's
// bottom-up or top-down kernel may mark vertices from multiple goroutines
// without a separate lock, following the same compare-and-swap idiom the
// module uses throughout for convergent concurrent writes. Set is the
// plain, non-atomic variant for single-writer use.
package bitmap
