// Package graphgen builds small, deterministic CSR fixtures (paths, stars,
// cycles, disjoint unions, Erdos-Renyi random digraphs) for the module's
// test suite, plus a naive sequential BFS used as the reference oracle the
// dbfs engine's variants are checked against.
//
// Randomness follows the same deterministic-RNG-factory discipline the
// wider module's lineage uses elsewhere: a seed always produces the same
// graph, and independent streams are derived with a SplitMix64 avalanche
// mix rather than reseeding math/rand directly, so callers can fan out
// multiple fixtures from one base seed without correlation.
package graphgen
