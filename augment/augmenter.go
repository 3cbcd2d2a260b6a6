// Package augment implements the per-commodity capacity-limited augmentation
// step (spec §4.4): push flow along a shortest path until the commodity's
// demand is exhausted, recomputing the path after every push since the
// length update can change which path is shortest.
package augment

import (
	"github.com/katalvlaran/mcmcf/mcfparam"
	"github.com/katalvlaran/mcmcf/mcgraph"
	"github.com/katalvlaran/mcmcf/spath"
)

// Augment pushes c.Demand units of flow from c.Source to c.Sink against g,
// one shortest-path-and-push step at a time:
//
//  1. path := shortest src->sink path by current Length.
//  2. c := min capacity on path; Δ := min(c, remaining demand).
//  3. every edge on path: Flow += Δ; Length *= (1 + epsilon*Δ/Capacity).
//  4. remaining demand -= Δ; repeat from 1 until remaining demand <= 0.
//
// remaining starts at c.Demand and is local to this call; c.Demand itself is
// never written here (it is rescaled solely by the facade's k/z step and
// PhaseLoop's β-doubling, spec §4.10), so the same commodity can be augmented
// again, unchanged, on the next phase.
//
// Propagates spath.ErrUnreachableSink unchanged if, at any point, c's sink is
// no longer reachable from its source while demand remains — the spec
// requires this surfaces to the caller rather than returning a partial route.
//
// spCount, if non-nil, is incremented once per shortest-path computation so
// callers can report the spc figure the spec's public operations return.
//
// Complexity: O(k * (V+E) log V) where k is the number of capacity-limited
// chunks needed to exhaust the demand (bounded by the number of distinct
// bottleneck edges encountered).
func Augment(g *mcgraph.Graph, c *mcgraph.Commodity, epsilon float64, spCount *int) error {
	remaining := c.Demand
	for remaining > mcfparam.FPErrorMargin {
		path, err := spath.Path(g, c.Source, c.Sink)
		if spCount != nil {
			*spCount++
		}
		if err != nil {
			return err
		}

		bottleneck := minCapacity(path)
		delta := bottleneck
		if remaining < delta {
			delta = remaining
		}

		for _, e := range path {
			g.AddFlow(e, delta)
			g.SetLength(e, e.Length*(1+epsilon*delta/e.Capacity))
		}

		remaining -= delta
	}

	return nil
}

// minCapacity returns the smallest Capacity among the edges of path. Callers
// must pass a non-empty path; Augment never calls this with an empty one
// since a zero-length path only occurs when source == sink, which Augment
// never reaches (demand would already be zero by spath's empty-path
// convention for src==dst only on a self-commodity, an edge case the facade
// rejects at construction).
func minCapacity(path []*mcgraph.Edge) float64 {
	min := path[0].Capacity
	for _, e := range path[1:] {
		if e.Capacity < min {
			min = e.Capacity
		}
	}
	return min
}
