// Package dual computes the Garg-Könemann dual objective D(ℓ) = Σ capacity(e)·length(e)
// over a graph's current edge state. PhaseLoop terminates once D(ℓ) >= 1;
// SolverFacade's β̂ estimate divides it by α, the dual-feasibility ratio.
package dual

import "github.com/katalvlaran/mcmcf/mcgraph"

// Objective returns D(ℓ) = Σ_e capacity(e) * length(e) over every edge in g.
//
// Complexity: O(m).
func Objective(g *mcgraph.Graph) float64 {
	var d float64
	for _, e := range g.Edges() {
		d += e.Capacity * e.Length
	}
	return d
}
