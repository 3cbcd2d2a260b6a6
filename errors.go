package mcmcf

import (
	"errors"

	"github.com/katalvlaran/mcmcf/phase"
	"github.com/katalvlaran/mcmcf/spath"
)

// The four error kinds the solver surfaces (spec §7). None are recovered
// internally — every one of them propagates out of Solve/TwoApprox verbatim,
// so callers can branch on them with errors.Is.
var (
	// ErrParameter indicates invalid input: error <= 0, an empty edge or
	// commodity list, or a non-positive capacity or demand.
	ErrParameter = errors.New("mcmcf: invalid parameter")

	// ErrUnreachableSink indicates a commodity's sink was not reachable from
	// its source while residual demand remained. Aliases spath's sentinel so
	// errors.Is matches regardless of which layer raised it.
	ErrUnreachableSink = spath.ErrUnreachableSink

	// ErrInfeasibleForMaxFlow indicates calculate_z's rescale step found a
	// commodity whose source cannot reach its sink at all (max-flow 0),
	// making the β-scaling precondition impossible to satisfy.
	ErrInfeasibleForMaxFlow = errors.New("mcmcf: commodity has zero max-flow capacity, demand rescale is infeasible")

	// ErrNonMonotonicDual is the PhaseLoop safety net: D(ℓ) failed to
	// strictly increase across a phase, indicating numerical breakdown.
	// Aliases phase's sentinel so errors.Is matches regardless of layer.
	ErrNonMonotonicDual = phase.ErrNonMonotonicDual
)
