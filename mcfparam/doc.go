// Package mcfparam computes the Garg-Könemann precision parameters the rest
// of the solver is driven by: ε (the dual length-update rate), δ (the
// initial-length normalizer) and t (the phase threshold between demand
// doublings). All three are pure functions of the caller's requested error
// tolerance and the graph's edge count — no graph or commodity state is
// touched here.
package mcfparam
