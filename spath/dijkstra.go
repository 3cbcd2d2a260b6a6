package spath

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/mcmcf/mcgraph"
)

// Tree is a shortest-path tree rooted at one source, computed once and
// queried many times via PathTo — the representation KarakostasGroup relies
// on to amortize a single Dijkstra run across every commodity sharing Source.
type Tree struct {
	src      string
	dist     map[string]float64
	prevEdge map[string]*mcgraph.Edge // edge used to reach node on the tree
}

// Dist returns the shortest distance from the tree's source to node, and
// whether node was reachable at all.
func (t *Tree) Dist(node string) (float64, bool) {
	d, ok := t.dist[node]
	if !ok || math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// PathTo reconstructs the ordered sequence of edges on the shortest
// src->dst path, walking predecessors backward then reversing. Returns
// ErrUnreachableSink if dst was never reached.
//
// Complexity: O(len(path)).
func (t *Tree) PathTo(dst string) ([]*mcgraph.Edge, error) {
	if dst == t.src {
		return nil, nil
	}
	d, ok := t.dist[dst]
	if !ok || math.IsInf(d, 1) {
		return nil, ErrUnreachableSink
	}

	var rev []*mcgraph.Edge
	cur := dst
	for cur != t.src {
		e, ok := t.prevEdge[cur]
		if !ok {
			return nil, ErrUnreachableSink
		}
		rev = append(rev, e)
		cur = e.Head
	}

	path := make([]*mcgraph.Edge, len(rev))
	for i, e := range rev {
		path[len(rev)-1-i] = e
	}
	return path, nil
}

// Path returns the ordered sequence of edges on a shortest src->dst path by
// current Length. Returns ErrUnreachableSink if no such path exists.
//
// Complexity: O((V+E) log V) worst case; stops early once dst is finalized.
func Path(g *mcgraph.Graph, src, dst string) ([]*mcgraph.Edge, error) {
	if src == "" || dst == "" {
		return nil, ErrEmptySource
	}
	t, err := computeTree(g, src, dst)
	if err != nil {
		return nil, err
	}
	return t.PathTo(dst)
}

// BuildTree computes the full shortest-path tree rooted at src. It is the
// public, always-full variant used by KarakostasGroup, which needs every
// group member's path, not just one.
//
// Complexity: O((V+E) log V).
func BuildTree(g *mcgraph.Graph, src string) (*Tree, error) {
	if src == "" {
		return nil, ErrEmptySource
	}
	return computeTree(g, src, "")
}

// computeTree runs Dijkstra from src. If stopAt is non-empty, the search
// stops as soon as stopAt is popped off the heap with a finalized distance
// (an optimization Path uses; BuildTree passes "" to force a full tree).
func computeTree(g *mcgraph.Graph, src, stopAt string) (*Tree, error) {
	dist := make(map[string]float64, len(g.Nodes()))
	prevEdge := make(map[string]*mcgraph.Edge, len(g.Nodes()))
	visited := make(map[string]bool, len(g.Nodes()))

	for _, n := range g.Nodes() {
		dist[n] = math.Inf(1)
	}
	dist[src] = 0

	pq := make(nodePQ, 0, len(g.Nodes()))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		// Stale heap entry: a better distance was already finalized.
		if item.dist > dist[u] {
			continue
		}
		visited[u] = true

		if stopAt != "" && u == stopAt {
			break
		}

		for _, e := range g.Neighbors(u) {
			v := e.Tail
			if visited[v] {
				continue
			}
			newDist := dist[u] + e.Length
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			prevEdge[v] = e
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	return &Tree{src: src, dist: dist, prevEdge: prevEdge}, nil
}

// nodeItem is one (node, tentative distance) entry in the priority queue.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem. Ties break on node ID so that iteration
// order depends only on the edge set's labels, not on map/slice build order
// elsewhere in the program (spec §5's determinism requirement).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
