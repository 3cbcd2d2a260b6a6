package mcmcf

import "context"

// TwoApprox computes a 2-approximate maximum concurrent flow in two passes
// (spec §4.9):
//
//	(spc, βhat) = Solve(edges, commodities, error=1.0, returnBeta=true, karakosta=…)
//	scale every demand by βhat / 2
//	return Solve(edges, commodities, error=targetError, scaleBeta=false,
//	             karakosta=…, initialSPCount=spc)
//
// This pre-conditions demands so the accurate run starts near feasibility,
// reducing its phase count. WithKarakosta applies to both passes and WithError
// sets the accurate pass's target error; the estimation pass's error,
// scaleBeta, returnBeta and initialSPCount are fixed by the algorithm itself,
// and any other option in opts is not passed on to either pass.
func TwoApprox(ctx context.Context, edges []*Edge, commodities []*Commodity, opts ...SolveOption) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	targetError := cfg.Error

	var karakostaOpts []SolveOption
	if cfg.Karakosta {
		karakostaOpts = append(karakostaOpts, WithKarakosta())
	}

	estimateOpts := append(append([]SolveOption{}, karakostaOpts...), WithError(1.0), WithReturnBeta())
	estimate, err := Solve(ctx, edges, commodities, estimateOpts...)
	if err != nil {
		return Result{}, err
	}

	for _, c := range commodities {
		c.Demand *= estimate.Beta / 2
	}

	// The estimation pass leaves accumulated Flow on every edge (it returned
	// before Final Scaling ran). Solve overwrites Length unconditionally but
	// only ever adds to Flow, so it must start from zero here.
	for _, e := range edges {
		e.Flow = 0
	}

	accurateOpts := append(append([]SolveOption{}, karakostaOpts...), WithError(targetError), WithInitialSPCount(estimate.ShortestPathCount))
	return Solve(ctx, edges, commodities, accurateOpts...)
}
