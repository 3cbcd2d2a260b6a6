package mcmcf

import "github.com/katalvlaran/mcmcf/mcgraph"

// Edge is a directed, capacitated connection the solver routes flow across.
// See mcgraph.Edge's doc comment for the full mutation contract: the same
// pointer passed into Solve/TwoApprox is the one whose Length and Flow fields
// end up mutated, so callers read results off their own edge list.
type Edge = mcgraph.Edge

// Commodity is a routing requirement (Source, Sink, Demand). See
// mcgraph.Commodity's doc comment: Demand is mutated in place by demand
// rescaling. Callers that need the original demand after a Solve/TwoApprox
// call must keep their own copy beforehand.
type Commodity = mcgraph.Commodity

// NewEdge constructs an Edge with the given head, tail and capacity. Length
// and Flow start at zero; Solve overwrites Length with δ/Capacity before it
// starts iterating.
func NewEdge(head, tail string, capacity float64) *Edge {
	return &Edge{Head: head, Tail: tail, Capacity: capacity}
}

// NewCommodity constructs a Commodity with the given source, sink and demand.
func NewCommodity(source, sink string, demand float64) *Commodity {
	return &Commodity{Source: source, Sink: sink, Demand: demand}
}
