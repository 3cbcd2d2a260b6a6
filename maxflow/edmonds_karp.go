package maxflow

import (
	"context"
	"math"

	"github.com/katalvlaran/mcmcf/mcgraph"
)

// defaultEpsilon is the slack below which a residual capacity is treated as
// exhausted, matching the teacher flow package's Epsilon default.
const defaultEpsilon = 1e-9

// EdmondsKarp computes the maximum flow from source to sink over g's static
// Capacity values (Length and Flow are never read or written). Builds a
// private residual-capacity map so repeated calls against the same g (one
// per commodity, from calculate_z) never interfere with each other or with
// the caller's edge state.
//
// Complexity: O(V * E^2) worst case; O(V + E) space for the residual map.
func EdmondsKarp(ctx context.Context, g *mcgraph.Graph, source, sink string) (float64, error) {
	if !g.HasNode(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return math.Inf(1), nil
	}

	residual := buildResidual(g)

	var total float64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		path, bottleneck := bfsAugmentingPath(ctx, residual, source, sink)
		if len(path) == 0 || bottleneck <= defaultEpsilon {
			break
		}
		total += bottleneck

		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] -= bottleneck
			if residual[u][v] <= defaultEpsilon {
				delete(residual[u], v)
			}
			if residual[v] == nil {
				residual[v] = make(map[string]float64)
			}
			residual[v][u] += bottleneck
		}
	}

	return total, nil
}

// buildResidual copies g's static capacities into a plain adjacency map.
func buildResidual(g *mcgraph.Graph) map[string]map[string]float64 {
	residual := make(map[string]map[string]float64, len(g.Nodes()))
	for _, n := range g.Nodes() {
		residual[n] = make(map[string]float64)
	}
	for _, e := range g.Edges() {
		if e.Head == e.Tail {
			continue
		}
		residual[e.Head][e.Tail] += e.Capacity
	}
	return residual
}

// bfsAugmentingPath finds the fewest-edges source->sink path with strictly
// positive residual capacity, returning the path and its bottleneck, or a nil
// path if none exists.
func bfsAugmentingPath(ctx context.Context, residual map[string]map[string]float64, source, sink string) ([]string, float64) {
	parent := make(map[string]string, len(residual))
	bottleneckTo := map[string]float64{source: math.Inf(1)}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}

		u := queue[0]
		queue = queue[1:]
		for v, capUV := range residual[u] {
			if visited[v] || capUV <= defaultEpsilon {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottleneckTo[v] = math.Min(bottleneckTo[u], capUV)
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}
				return path, bottleneckTo[sink]
			}
			queue = append(queue, v)
		}
	}
	return nil, 0
}
