package karakostas

import (
	"github.com/katalvlaran/mcmcf/augment"
	"github.com/katalvlaran/mcmcf/mcfparam"
	"github.com/katalvlaran/mcmcf/mcgraph"
	"github.com/katalvlaran/mcmcf/spath"
)

// Run groups commodities by Source and processes every group: a singleton
// group degenerates to augment.Augment's plain semantics (one shortest-path
// tree per commodity is already minimal for a group of one); a group of two
// or more shares a single spath.BuildTree call and augments every member in
// lockstep, proportional to remaining demand, with one length update per
// edge applied after the group is exhausted.
//
// Grouping preserves the input order of first appearance, so repeated runs
// over the same commodity slice process groups and members in the same
// order (spec §5 determinism).
//
// spCount, if non-nil, is incremented once per shortest-path-tree or
// shortest-path computation performed (one per group of two or more here;
// singleton groups add only whatever augment.Augment counts).
//
// Complexity: O(distinct sources) shortest-path-tree computations instead of
// O(commodities), amortizing the dominant (V+E)log V cost across every
// commodity with a shared source.
func Run(g *mcgraph.Graph, commodities []*mcgraph.Commodity, epsilon float64, spCount *int) error {
	for _, group := range groupBySource(commodities) {
		if len(group) == 1 {
			if err := augment.Augment(g, group[0], epsilon, spCount); err != nil {
				return err
			}
			continue
		}
		if err := runGroup(g, group, epsilon, spCount); err != nil {
			return err
		}
	}
	return nil
}

// groupBySource partitions commodities into source-homogeneous groups,
// ordered by each group's first appearance in commodities.
func groupBySource(commodities []*mcgraph.Commodity) [][]*mcgraph.Commodity {
	order := make([]string, 0, len(commodities))
	bySource := make(map[string][]*mcgraph.Commodity, len(commodities))
	for _, c := range commodities {
		if _, seen := bySource[c.Source]; !seen {
			order = append(order, c.Source)
		}
		bySource[c.Source] = append(bySource[c.Source], c)
	}

	groups := make([][]*mcgraph.Commodity, 0, len(order))
	for _, src := range order {
		groups = append(groups, bySource[src])
	}
	return groups
}

// runGroup performs the proportional multi-sink augmentation for a group of
// two or more commodities sharing a source.
//
// remaining[i] starts at group[i].Demand and is consumed locally for this
// phase only; Demand itself is never written here; it is rescaled solely by
// the facade's k/z step and PhaseLoop's β-doubling (spec §4.10).
func runGroup(g *mcgraph.Graph, group []*mcgraph.Commodity, epsilon float64, spCount *int) error {
	tree, err := spath.BuildTree(g, group[0].Source)
	if spCount != nil {
		*spCount++
	}
	if err != nil {
		return err
	}

	paths := make([][]*mcgraph.Edge, len(group))
	for i, c := range group {
		path, err := tree.PathTo(c.Sink)
		if err != nil {
			return err
		}
		paths[i] = path
	}

	remaining := make([]float64, len(group))
	for i, c := range group {
		remaining[i] = c.Demand
	}

	ratios := make([]float64, len(group))
	recomputeRatios(remaining, ratios)

	pendingFlow := make(map[*mcgraph.Edge]float64)

	for maxOf(remaining) > mcfparam.FPErrorMargin {
		for i, path := range paths {
			minCap := minCapacity(path)
			step := remaining[i]
			if minCap < step {
				step = minCap
			}
			delta := ratios[i] * step

			for _, e := range path {
				pendingFlow[e] += delta
				g.AddFlow(e, delta)
			}
			remaining[i] -= delta
		}
		recomputeRatios(remaining, ratios)
	}

	for e, flow := range pendingFlow {
		g.SetLength(e, e.Length*(1+epsilon*flow/e.Capacity))
	}

	return nil
}

// recomputeRatios fills ratios[i] = remaining[i] / Σ remaining. If the total
// remaining demand is (numerically) zero, ratios are left untouched since the
// caller's loop condition will terminate before they are read again.
func recomputeRatios(remaining, ratios []float64) {
	var total float64
	for _, r := range remaining {
		total += r
	}
	if total <= mcfparam.FPErrorMargin {
		return
	}
	for i, r := range remaining {
		ratios[i] = r / total
	}
}

func maxOf(values []float64) float64 {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func minCapacity(path []*mcgraph.Edge) float64 {
	if len(path) == 0 {
		return 0
	}
	min := path[0].Capacity
	for _, e := range path[1:] {
		if e.Capacity < min {
			min = e.Capacity
		}
	}
	return min
}
