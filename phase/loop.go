package phase

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/mcmcf/augment"
	"github.com/katalvlaran/mcmcf/dual"
	"github.com/katalvlaran/mcmcf/karakostas"
	"github.com/katalvlaran/mcmcf/mcgraph"
)

// ErrNonMonotonicDual is the safety-net failure: D(ℓ) did not strictly
// increase across a phase. Under the standard analysis this cannot happen
// with a correctly parameterized run; surfacing it as a hard error rather
// than silently looping is deliberate (spec §7: "the solver never silently
// returns partial results").
var ErrNonMonotonicDual = errors.New("phase: dual objective did not strictly increase across a phase")

// Config bundles a PhaseLoop run's parameters.
type Config struct {
	// Epsilon is the length-update rate passed through to Augment/Karakostas.
	Epsilon float64

	// ScaleBeta enables the periodic demand-doubling schedule.
	ScaleBeta bool

	// T is the phase-count threshold between doublings when ScaleBeta is set
	// (mcfparam.T(m, epsilon)).
	T int

	// Karakosta selects grouped-by-source augmentation over the plain
	// per-commodity Augmenter.
	Karakosta bool

	// Logf, if non-nil, is called once per phase with a human-readable
	// progress line — the Verbose hook the teacher's flow package exposes
	// via FlowOptions.Verbose, adapted to a caller-supplied sink instead of
	// fmt.Printf so library callers aren't forced onto stdout.
	Logf func(format string, args ...any)

	// InitialSPCount seeds the returned shortest-path-computation count —
	// TwoApprox's second pass continues the counter from its first pass
	// (spec §4.9's initialSPCount).
	InitialSPCount int
}

// Result reports how many phases ran and how many shortest-path computations
// were performed (seeded by Config.InitialSPCount).
type Result struct {
	PhaseCount        int
	ShortestPathCount int
}

// Run executes the PhaseLoop against g and commodities until D(ℓ) >= 1,
// honoring ctx cancellation between phases.
//
//	D := DualObjective(g)
//	if D >= 1: stop
//	if D <= oldDual: fail ErrNonMonotonicDual
//	oldDual = D; phaseCount++
//	if ScaleBeta and phaseCount % T == 0: double every commodity's demand
//	if Karakosta: karakostas.Run over all commodities
//	else: augment.Augment over each commodity in turn
//
// Complexity: O(phases * (commodities or groups) * (V+E) log V).
func Run(ctx context.Context, g *mcgraph.Graph, commodities []*mcgraph.Commodity, cfg Config) (Result, error) {
	oldDual := math.Inf(-1)
	phaseCount := 0
	spCount := cfg.InitialSPCount

	for {
		if err := ctx.Err(); err != nil {
			return Result{PhaseCount: phaseCount, ShortestPathCount: spCount}, err
		}

		d := dual.Objective(g)
		if d >= 1 {
			break
		}
		if d <= oldDual {
			return Result{PhaseCount: phaseCount, ShortestPathCount: spCount}, ErrNonMonotonicDual
		}
		oldDual = d
		phaseCount++

		if cfg.ScaleBeta && cfg.T > 0 && phaseCount%cfg.T == 0 {
			for _, c := range commodities {
				c.Demand *= 2
			}
		}

		var err error
		if cfg.Karakosta {
			err = karakostas.Run(g, commodities, cfg.Epsilon, &spCount)
		} else {
			for _, c := range commodities {
				if err = augment.Augment(g, c, cfg.Epsilon, &spCount); err != nil {
					break
				}
			}
		}
		if err != nil {
			return Result{PhaseCount: phaseCount, ShortestPathCount: spCount}, err
		}

		if cfg.Logf != nil {
			cfg.Logf("phase %d: D=%.6f", phaseCount, d)
		}
	}

	return Result{PhaseCount: phaseCount, ShortestPathCount: spCount}, nil
}
