package mcmcf

// SolverConfig bundles every tunable of a Solve/TwoApprox call. Build one via
// DefaultConfig and SolveOption functions rather than constructing it
// directly, the same pattern dijkstra.Options/dijkstra.Option use.
type SolverConfig struct {
	// Error is the target relative error tolerance; ParamCalc derives ε from
	// it. Must be > 0. Default 0.05.
	Error float64

	// ScaleBeta enables the initial k/z demand rescale and the periodic
	// demand-doubling schedule in PhaseLoop.
	ScaleBeta bool

	// ReturnBeta, if set, makes Solve skip final scaling and instead return
	// the dual-feasibility ratio β̂ = D(ℓ)/α.
	ReturnBeta bool

	// Karakosta selects the grouped-by-source augmentation strategy.
	Karakosta bool

	// InitialSPCount seeds the returned shortest-path-computation count —
	// used by TwoApprox to carry the estimation pass's count into the
	// accurate pass's result.
	InitialSPCount int

	// Logf, if non-nil, receives one line per phase. See phase.Config.Logf.
	Logf func(format string, args ...any)
}

// DefaultConfig returns the solver's default tunables: Error=0.05, every
// boolean flag false.
func DefaultConfig() SolverConfig {
	return SolverConfig{Error: 0.05}
}

// SolveOption configures a SolverConfig.
type SolveOption func(*SolverConfig)

// WithError overrides the target error tolerance (default 0.05).
func WithError(errorTolerance float64) SolveOption {
	return func(c *SolverConfig) { c.Error = errorTolerance }
}

// WithScaleBeta enables the k/z demand rescale and the β-doubling schedule.
func WithScaleBeta() SolveOption {
	return func(c *SolverConfig) { c.ScaleBeta = true }
}

// WithReturnBeta makes Solve return a β̂ estimate instead of performing final
// scaling.
func WithReturnBeta() SolveOption {
	return func(c *SolverConfig) { c.ReturnBeta = true }
}

// WithKarakosta selects the Karakostas grouped-by-source augmentation
// strategy over the plain per-commodity Augmenter.
func WithKarakosta() SolveOption {
	return func(c *SolverConfig) { c.Karakosta = true }
}

// WithInitialSPCount seeds the returned shortest-path-computation counter.
func WithInitialSPCount(n int) SolveOption {
	return func(c *SolverConfig) { c.InitialSPCount = n }
}

// WithLogf installs a per-phase progress callback.
func WithLogf(logf func(format string, args ...any)) SolveOption {
	return func(c *SolverConfig) { c.Logf = logf }
}
