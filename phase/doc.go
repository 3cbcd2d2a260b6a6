// Package phase drives the Garg-Könemann outer loop (spec §4.6): repeatedly
// sweep every commodity (or, in grouped mode, every source-group) until the
// dual objective D(ℓ) reaches 1, doubling demands on a schedule when β-scaling
// is enabled. It is the solver's orchestrator, the one place that decides
// plain-per-commodity vs. Karakostas-grouped augmentation for a given run.
package phase
