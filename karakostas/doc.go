// Package karakostas implements the Karakostas-style grouped augmentation
// (spec §4.5): commodities sharing a source amortize a single shortest-path
// tree computation, then route proportionally to their remaining demand in
// lockstep, deferring the length update until the whole group is exhausted.
//
// The deferred update is load-bearing, not an optimization detail: applying
// length updates inside the inner ratio loop would change the capacities
// later commodities in the same round see, breaking the proportionality the
// algorithm's analysis depends on.
package karakostas
