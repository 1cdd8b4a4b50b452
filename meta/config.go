package meta

// Config controls engine behavior, most importantly the adaptive
// strategy-switch heuristic.
//
// The original heuristic constants are tuning artifacts, not semantic
// requirements, so every threshold is configurable.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EvaluationTripPoint = 0 // pin the Lazy strategy forever
//	engine, err := meta.NewEngine(params, config)
type Config struct {
	// EvaluationTripPoint is the call-count period at which the engine
	// re-evaluates whether to switch to the Eager strategy. 0 disables
	// switching entirely.
	// Default: 800
	EvaluationTripPoint int

	// EagerMinCalls is the minimum observed call volume before the
	// switch heuristic may fire.
	// Default: 800
	EagerMinCalls uint64

	// EagerMatchRatio is the matches/calls ratio at or above which the
	// heuristic considers eager matching worthwhile. Must be in [0, 1].
	// Default: 0.5
	EagerMatchRatio float64

	// EnablePrefilter enables the literal prefilter when the compiler
	// handoff carries prefilter literals.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EvaluationTripPoint: 800,
		EagerMinCalls:       800,
		EagerMatchRatio:     0.5,
		EnablePrefilter:     true,
	}
}

// validate rejects configurations outside the documented ranges.
func (c Config) validate() error {
	if c.EvaluationTripPoint < 0 {
		return engineErrorf(InvalidConfig, "EvaluationTripPoint must be >= 0, got %d", c.EvaluationTripPoint)
	}
	if c.EagerMatchRatio < 0 || c.EagerMatchRatio > 1 {
		return engineErrorf(InvalidConfig, "EagerMatchRatio must be in [0, 1], got %g", c.EagerMatchRatio)
	}
	return nil
}
