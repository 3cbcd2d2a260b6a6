// Package maxflow computes an ordinary single-commodity maximum flow via
// Edmonds-Karp (BFS augmenting paths), independent of the dual length
// function the rest of the solver maintains. SolverFacade's demand-rescaling
// step (calculate_z, spec §4.8) uses it once per commodity, on a private
// residual-capacity copy built from the solver's edge list — it never touches
// the edges' Length or Flow fields, since it answers a question ("what's the
// raw max flow for this source/sink pair") that is independent of how much of
// the dual algorithm's length/flow state has accumulated so far.
package maxflow
