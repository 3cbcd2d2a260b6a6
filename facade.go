package mcmcf

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/mcmcf/dual"
	"github.com/katalvlaran/mcmcf/maxflow"
	"github.com/katalvlaran/mcmcf/mcfparam"
	"github.com/katalvlaran/mcmcf/mcgraph"
	"github.com/katalvlaran/mcmcf/phase"
	"github.com/katalvlaran/mcmcf/spath"
)

// Result is what Solve/TwoApprox return.
type Result struct {
	// ShortestPathCount is the number of shortest-path (or shortest-path
	// tree, under Karakosta) computations performed.
	ShortestPathCount int

	// PhaseCount is the number of PhaseLoop iterations run. Meaningless
	// (zero) when ReturnedBeta is true.
	PhaseCount int

	// Beta is the dual-feasibility ratio D(ℓ)/α, populated only when
	// ReturnedBeta is true (i.e. the caller passed WithReturnBeta).
	Beta float64

	// ReturnedBeta reports whether Beta (true) or PhaseCount (false) is the
	// meaningful field on this Result.
	ReturnedBeta bool
}

// Solve computes a (1-ε)-approximate maximum concurrent flow for commodities
// over edges, mutating both in place: every Edge's Length and Flow, and, when
// ScaleBeta is set, every Commodity's Demand. See SolveOption for the
// available tunables.
//
// Steps (spec §4.8):
//  1. ε ← ParamCalc.Epsilon(cfg.Error); δ ← ParamCalc.Delta(m, ε); every
//     edge's Length ← δ/Capacity.
//  2. Build the internal graph store from edges.
//  3. If ScaleBeta: z ← min_i maxflow(s_i,t_i)/demand_i; scale every demand
//     by |commodities|/z; compute the phase threshold t.
//  4. Run PhaseLoop until D(ℓ) >= 1.
//  5. If ReturnBeta: return (spc, D(ℓ)/α) instead of performing final scaling.
//  6. Otherwise divide every edge's Flow by log(1/δ)/log(1+ε) and return
//     (spc, phases).
//
// Returns ErrParameter for invalid input, ErrUnreachableSink if a commodity's
// sink becomes unreachable while demand remains, ErrInfeasibleForMaxFlow if
// ScaleBeta's rescale finds a commodity with zero max-flow, and
// ErrNonMonotonicDual if the dual objective fails to strictly increase across
// a phase.
func Solve(ctx context.Context, edges []*Edge, commodities []*Commodity, opts ...SolveOption) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(cfg, edges, commodities); err != nil {
		return Result{}, err
	}

	eps, err := mcfparam.Epsilon(cfg.Error)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrParameter, err)
	}

	g := mcgraph.NewGraph(edges)
	m := g.EdgeCount()
	delta := mcfparam.Delta(m, eps)
	for _, e := range g.Edges() {
		g.SetLength(e, delta/e.Capacity)
	}

	t := 0
	if cfg.ScaleBeta {
		if err := rescaleDemands(ctx, g, commodities); err != nil {
			return Result{}, err
		}
		t = mcfparam.T(m, eps)
	}

	phaseRes, err := phase.Run(ctx, g, commodities, phase.Config{
		Epsilon:         eps,
		ScaleBeta:       cfg.ScaleBeta,
		T:               t,
		Karakosta:       cfg.Karakosta,
		Logf:            cfg.Logf,
		InitialSPCount:  cfg.InitialSPCount,
	})
	if err != nil {
		return Result{ShortestPathCount: phaseRes.ShortestPathCount, PhaseCount: phaseRes.PhaseCount}, err
	}

	if cfg.ReturnBeta {
		alpha, err := calculateAlpha(g, commodities)
		if err != nil {
			return Result{}, err
		}
		beta := dual.Objective(g) / alpha
		return Result{
			ShortestPathCount: phaseRes.ShortestPathCount,
			Beta:              beta,
			ReturnedBeta:      true,
		}, nil
	}

	scaleFactor := math.Log(1/delta) / math.Log(1+eps)
	for _, e := range g.Edges() {
		e.Flow /= scaleFactor
	}

	return Result{
		ShortestPathCount: phaseRes.ShortestPathCount,
		PhaseCount:        phaseRes.PhaseCount,
	}, nil
}

// validate applies the spec §7 ParameterError checks.
func validate(cfg SolverConfig, edges []*Edge, commodities []*Commodity) error {
	if cfg.Error <= 0 {
		return fmt.Errorf("%w: error tolerance must be > 0, got %g", ErrParameter, cfg.Error)
	}
	if len(edges) == 0 {
		return fmt.Errorf("%w: edge list must not be empty", ErrParameter)
	}
	if len(commodities) == 0 {
		return fmt.Errorf("%w: commodity list must not be empty", ErrParameter)
	}
	for _, e := range edges {
		if e.Capacity <= 0 {
			return fmt.Errorf("%w: edge %s->%s has non-positive capacity %g", ErrParameter, e.Head, e.Tail, e.Capacity)
		}
	}
	for _, c := range commodities {
		if c.Demand <= 0 {
			return fmt.Errorf("%w: commodity %s->%s has non-positive demand %g", ErrParameter, c.Source, c.Sink, c.Demand)
		}
		if c.Source == c.Sink {
			return fmt.Errorf("%w: commodity source and sink must differ (%s)", ErrParameter, c.Source)
		}
	}
	return nil
}

// rescaleDemands implements calculate_z (spec §4.8): z is the minimum, over
// every commodity, of its ordinary max-flow divided by its demand; every
// demand is then scaled by |commodities|/z.
func rescaleDemands(ctx context.Context, g *mcgraph.Graph, commodities []*mcgraph.Commodity) error {
	z := math.Inf(1)
	for _, c := range commodities {
		flow, err := maxflow.EdmondsKarp(ctx, g, c.Source, c.Sink)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInfeasibleForMaxFlow, err)
		}
		if flow <= 0 {
			return fmt.Errorf("%w: commodity %s->%s has zero max-flow capacity", ErrInfeasibleForMaxFlow, c.Source, c.Sink)
		}
		ratio := flow / c.Demand
		if ratio < z {
			z = ratio
		}
	}

	k := float64(len(commodities))
	for _, c := range commodities {
		c.Demand *= k / z
	}
	return nil
}

// calculateAlpha computes α = Σ_i demand_i * dist_ℓ(source_i, sink_i), the
// shortest-path-based dual-feasibility denominator (spec §4.8, §6). One
// shortest-path tree is shared across every commodity with a common source,
// the same amortization KarakostasGroup performs for augmentation.
func calculateAlpha(g *mcgraph.Graph, commodities []*mcgraph.Commodity) (float64, error) {
	trees := make(map[string]*spath.Tree, len(commodities))
	var alpha float64
	for _, c := range commodities {
		tree, ok := trees[c.Source]
		if !ok {
			var err error
			tree, err = spath.BuildTree(g, c.Source)
			if err != nil {
				return 0, err
			}
			trees[c.Source] = tree
		}
		d, ok := tree.Dist(c.Sink)
		if !ok {
			return 0, fmt.Errorf("%w: commodity %s->%s", ErrUnreachableSink, c.Source, c.Sink)
		}
		alpha += c.Demand * d
	}
	return alpha, nil
}
