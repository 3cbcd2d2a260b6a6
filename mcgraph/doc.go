// Package mcgraph is the immutable-topology, mutable-state graph store that
// backs the multi-commodity flow solver.
//
// A Graph is built once from a caller-supplied edge list (NewGraph) and never
// grows or shrinks afterward: no AddEdge, no RemoveVertex. The only mutation
// the solver performs against a built Graph is to the two per-edge dual/primal
// fields, Length and Flow, via SetLength/AddFlow — everything else (head,
// tail, capacity, adjacency) is frozen at construction.
//
// Edges are stored in a contiguous slice and addressed by index rather than by
// a "(head,tail) -> *Edge" pointer chase on every inner-loop access; a
// "(head,tail) -> index" hash map exists only for the one-shot construction
// and for Edge lookups callers do outside the hot loop. Per-node adjacency is
// a slice of edge indices, built once at construction time and fetched from a
// node-keyed map once per expanded node.
package mcgraph
