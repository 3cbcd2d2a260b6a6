// Package spath computes shortest paths over a mcgraph.Graph ordered by each
// edge's current Length, using a Dijkstra-class min-heap algorithm (lengths
// are always non-negative — they start at δ/capacity > 0 and only grow).
//
// Two entry points are provided: Path, for a single src->dst query, and
// BuildTree, which computes one shortest-path Tree rooted at src and lets the caller
// reconstruct the src->n path for every reachable n in O(path length) via
// Tree.PathTo. KarakostasGroup uses BuildTree to amortize one shortest-path
// computation across every commodity sharing a source; the plain per-commodity
// Augmenter uses Path directly.
//
// Tie-breaking between equal-length candidate paths is deterministic and
// depends only on the edge set: the underlying heap orders candidates by
// (distance, node ID), so two runs over the same edges visit nodes in the
// same order regardless of map-iteration or slice-build nondeterminism
// elsewhere in the program.
package spath
