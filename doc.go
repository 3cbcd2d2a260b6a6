// Package mcmcf is a (1-ε)-approximation solver for the Maximum Concurrent
// Multi-Commodity Flow problem: given a directed, capacitated graph and a set
// of commodities (source, sink, demand), find the largest scalar β such that
// β·demand units of every commodity can be routed simultaneously without
// violating any edge's capacity.
//
// It implements the Garg-Könemann iterative dual (length-function) method,
// with two selectable refinements: β-scaling (geometric demand doubling,
// preconditioned by an initial max-flow-based rescale) and Karakostas grouping
// (one shortest-path tree shared across every commodity with a common
// source). Solve is the direct entry point; TwoApprox wraps it with a loose
// estimation pass that preconditions demands before the accurate run.
//
// The package is a thin, documented facade over the packages that do the
// actual work: mcgraph (graph/commodity storage), spath (shortest paths),
// dual (the objective D(ℓ)), augment and karakostas (the two augmentation
// strategies), phase (the outer iteration loop) and mcfparam (the ε/δ/t
// parameter derivations). Nothing here mutates shared package state across
// calls — a *mcgraph.Graph is built fresh from the caller's edges on every
// Solve/TwoApprox call, but the caller's own *Edge and *Commodity values are
// the ones mutated, by design (see Edge and Commodity's doc comments).
package mcmcf
