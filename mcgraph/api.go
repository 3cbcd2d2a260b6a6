package mcgraph

import "sort"

// Graph is the directed, multigraph-free topology the solver operates on.
// It is built once by NewGraph and never mutated structurally afterward;
// the only mutations during solving are to the Length/Flow fields of the
// *Edge values it holds, via SetLength and AddFlow.
//
// Node identifiers are opaque strings. Enumeration order (Nodes, Edges,
// Neighbors) is deterministic — sorted by node ID, then by the edges' input
// order — so two runs over the same edge list visit everything in the same
// order, which §5 and §8 of the spec require for reproducibility.
type Graph struct {
	edges []*Edge
	index map[edgeKey]int

	// adj[node] lists indices into edges for every edge whose Head is node,
	// in the order those edges appeared in the input slice.
	adj map[string][]int

	nodes []string
}

// NewGraph builds a Graph from a caller-owned edge list. The *Edge values are
// retained by reference — the solver mutates Length and Flow on the exact
// pointers the caller passed in, so results are visible on the caller's own
// slice once solving completes.
//
// Duplicate (Head, Tail) pairs overwrite: the later edge in the slice is the
// one the graph keeps and the earlier one is dropped from adjacency, mirroring
// the last-write-wins semantics of a plain map keyed by (head, tail). Callers
// that want both combined should pre-sum their own edge list.
//
// Complexity: O(m) where m = len(edges).
func NewGraph(edges []*Edge) *Graph {
	g := &Graph{
		edges: make([]*Edge, 0, len(edges)),
		index: make(map[edgeKey]int, len(edges)),
		adj:   make(map[string][]int, len(edges)),
	}

	nodeSet := make(map[string]struct{}, len(edges)*2)
	for _, e := range edges {
		k := edgeKey{head: e.Head, tail: e.Tail}
		if prevIdx, exists := g.index[k]; exists {
			// Overwrite in place: keep the slot, replace the edge, leave
			// adjacency order (the slot was already appended once).
			g.edges[prevIdx] = e
		} else {
			idx := len(g.edges)
			g.edges = append(g.edges, e)
			g.index[k] = idx
			g.adj[e.Head] = append(g.adj[e.Head], idx)
		}
		nodeSet[e.Head] = struct{}{}
		nodeSet[e.Tail] = struct{}{}
	}

	g.nodes = make([]string, 0, len(nodeSet))
	for n := range nodeSet {
		g.nodes = append(g.nodes, n)
	}
	sort.Strings(g.nodes)

	return g
}

// Nodes returns every node referenced by an edge (as head or tail), sorted.
//
// Complexity: O(V log V) is already paid at construction; this is O(V) to copy.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns every edge in the graph, in input order (post de-duplication).
// DualObjective and deterministic test fixtures rely on this stable order.
//
// Complexity: O(m).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns the number of distinct (Head, Tail) edges, i.e. m in the
// spec's ParamCalc formulas.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Lookup returns the edge from head to tail, if one exists.
//
// Complexity: O(1).
func (g *Graph) Lookup(head, tail string) (*Edge, bool) {
	idx, ok := g.index[edgeKey{head: head, tail: tail}]
	if !ok {
		return nil, false
	}
	return g.edges[idx], true
}

// HasNode reports whether id was seen as a head or tail of some edge.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]
	if ok {
		return true
	}
	for _, n := range g.nodes {
		if n == id {
			return true
		}
	}
	return false
}

// Neighbors returns the outgoing edges of node, in input order. Returns nil
// (not an error) for a node with no outgoing edges — including a node that is
// only ever a tail, which is a legitimate sink with zero out-degree.
//
// Complexity: O(deg(node)).
func (g *Graph) Neighbors(node string) []*Edge {
	idxs := g.adj[node]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = g.edges[idx]
	}
	return out
}

// SetLength overwrites e.Length. Centralized here (rather than callers poking
// the field directly) only so every write site is easy to grep when auditing
// the length-only-grows invariant from spec §3.
func (g *Graph) SetLength(e *Edge, length float64) {
	e.Length = length
}

// AddFlow adds delta (may be fractional, must be >= 0) to e.Flow.
func (g *Graph) AddFlow(e *Edge, delta float64) {
	e.Flow += delta
}
