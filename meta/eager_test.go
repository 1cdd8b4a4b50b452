package meta

import (
	"testing"

	"github.com/coregx/regexec/dfa"
	"github.com/coregx/regexec/result"
)

// adaptiveConfig trips the strategy evaluation quickly so tests do not
// need hundreds of searches.
func adaptiveConfig() Config {
	config := DefaultConfig()
	config.EvaluationTripPoint = 4
	config.EagerMinCalls = 4
	return config
}

func TestEagerSwitch(t *testing.T) {
	compiled := 0
	e := mustEngine(t, Params{
		Forward:  forwardOptionalB(t),
		Backward: backwardOptionalB(t),
		Captures: capturesOptionalB(t),
		EagerCompile: func() *dfa.DFA {
			compiled++
			return eagerCapturesOptionalB(t)
		},
	}, adaptiveConfig())

	// Every search matches, so the ratio is 1.0 when the trip point
	// fires at the fourth call.
	for i := 0; i < 3; i++ {
		mustSearch(t, e, "zzabc", 0)
		if e.Strategy() != StrategyLazy {
			t.Fatalf("strategy switched after %d calls, want >= 4", i+1)
		}
	}
	mustSearch(t, e, "zzabc", 0)

	if e.Strategy() != StrategyEager {
		t.Fatalf("Strategy() = %v after trip point, want Eager", e.Strategy())
	}
	if compiled != 1 {
		t.Errorf("EagerCompile ran %d times, want 1", compiled)
	}
	if got := e.Stats().EagerSwitches; got != 1 {
		t.Errorf("EagerSwitches = %d, want 1", got)
	}

	// Eager searches come back fully resolved and are no longer profiled.
	callsBefore := e.Profile().Calls()
	res := mustSearch(t, e, "zzabc", 0)
	if res.Start() != 2 || res.End() != 5 {
		t.Errorf("boundaries = (%d, %d), want (2, 5)", res.Start(), res.End())
	}
	if res.GroupStart(1) != 3 || res.GroupEnd(1) != 4 {
		t.Errorf("group 1 = (%d, %d), want (3, 4)", res.GroupStart(1), res.GroupEnd(1))
	}
	if got := e.Profile().Calls(); got != callsBefore {
		t.Errorf("Calls() went %d -> %d, eager searches must not be profiled", callsBefore, got)
	}
}

func TestEagerLazyEquivalence(t *testing.T) {
	lazy := mustEngine(t, Params{
		Forward:  forwardOptionalB(t),
		Backward: backwardOptionalB(t),
		Captures: capturesOptionalB(t),
	}, DefaultConfig())

	eager := mustEngine(t, Params{
		Forward:      forwardOptionalB(t),
		Backward:     backwardOptionalB(t),
		Captures:     capturesOptionalB(t),
		EagerCompile: func() *dfa.DFA { return eagerCapturesOptionalB(t) },
	}, adaptiveConfig())
	for i := 0; i < 4; i++ {
		mustSearch(t, eager, "abc", 0)
	}
	if eager.Strategy() != StrategyEager {
		t.Fatalf("setup: strategy = %v, want Eager", eager.Strategy())
	}

	inputs := []string{"ac", "abc", "zzac", "abzac", "ababc", "zz", ""}
	for _, input := range inputs {
		t.Run("input_"+input, func(t *testing.T) {
			lr := mustSearch(t, lazy, input, 0)
			er := mustSearch(t, eager, input, 0)
			if lr.IsMatch() != er.IsMatch() {
				t.Fatalf("IsMatch: lazy %v, eager %v", lr.IsMatch(), er.IsMatch())
			}
			if !lr.IsMatch() {
				return
			}
			if lr.Start() != er.Start() || lr.End() != er.End() {
				t.Errorf("boundaries: lazy (%d, %d), eager (%d, %d)",
					lr.Start(), lr.End(), er.Start(), er.End())
			}
			for g := 1; g < lr.GroupCount(); g++ {
				if lr.GroupStart(g) != er.GroupStart(g) || lr.GroupEnd(g) != er.GroupEnd(g) {
					t.Errorf("group %d: lazy (%d, %d), eager (%d, %d)", g,
						lr.GroupStart(g), lr.GroupEnd(g), er.GroupStart(g), er.GroupEnd(g))
				}
			}
		})
	}
}

func TestEagerUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		compile EagerCompileFunc
	}{
		{"no_compile_func", nil},
		{"compile_returns_nil", func() *dfa.DFA { return nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, Params{
				Forward:      forwardOptionalB(t),
				Backward:     backwardOptionalB(t),
				Captures:     capturesOptionalB(t),
				EagerCompile: tt.compile,
			}, adaptiveConfig())

			for i := 0; i < 4; i++ {
				mustSearch(t, e, "zzabc", 0)
			}
			if e.Strategy() != StrategyEagerUnavailable {
				t.Fatalf("Strategy() = %v, want EagerUnavailable", e.Strategy())
			}
			if got := e.Stats().EagerSwitches; got != 0 {
				t.Errorf("EagerSwitches = %d, want 0", got)
			}

			// Terminal: searches keep working lazily and are no longer
			// profiled or re-evaluated.
			calls := e.Profile().Calls()
			res := mustSearch(t, e, "zzabc", 0)
			if res.Kind() != result.KindLazyCaptureGroups {
				t.Errorf("Kind() = %v, want LazyCaptureGroups", res.Kind())
			}
			if res.GroupStart(1) != 3 {
				t.Errorf("GroupStart(1) = %d, want 3", res.GroupStart(1))
			}
			if e.Profile().Calls() != calls {
				t.Error("terminal state is still being profiled")
			}
		})
	}
}

func TestEagerRejectsUnusableAutomaton(t *testing.T) {
	tests := []struct {
		name    string
		compile EagerCompileFunc
	}{
		{"wrong_direction", nil},
		{"no_capture_groups", nil},
	}
	tests[0].compile = func() *dfa.DFA { return backwardOptionalB(t) }
	tests[1].compile = func() *dfa.DFA { return forwardOptionalB(t) }

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, Params{
				Forward:      forwardOptionalB(t),
				Backward:     backwardOptionalB(t),
				Captures:     capturesOptionalB(t),
				EagerCompile: tt.compile,
			}, adaptiveConfig())

			for i := 0; i < 4; i++ {
				mustSearch(t, e, "zzabc", 0)
			}
			if e.Strategy() != StrategyEagerUnavailable {
				t.Errorf("Strategy() = %v, want EagerUnavailable", e.Strategy())
			}
		})
	}
}

func TestTripPointZeroPinsLazy(t *testing.T) {
	config := adaptiveConfig()
	config.EvaluationTripPoint = 0

	e := mustEngine(t, Params{
		Forward:      forwardOptionalB(t),
		Backward:     backwardOptionalB(t),
		Captures:     capturesOptionalB(t),
		EagerCompile: func() *dfa.DFA { return eagerCapturesOptionalB(t) },
	}, config)

	for i := 0; i < 20; i++ {
		mustSearch(t, e, "zzabc", 0)
	}
	if e.Strategy() != StrategyLazy {
		t.Errorf("Strategy() = %v with trip point 0, want Lazy", e.Strategy())
	}
}

func TestLowMatchRatioStaysLazy(t *testing.T) {
	e := mustEngine(t, Params{
		Forward:      forwardOptionalB(t),
		Backward:     backwardOptionalB(t),
		Captures:     capturesOptionalB(t),
		EagerCompile: func() *dfa.DFA { return eagerCapturesOptionalB(t) },
	}, adaptiveConfig())

	// One match in four calls: ratio 0.25, below the 0.5 threshold.
	mustSearch(t, e, "zzabc", 0)
	mustSearch(t, e, "zz", 0)
	mustSearch(t, e, "zz", 0)
	mustSearch(t, e, "zz", 0)

	if e.Strategy() != StrategyLazy {
		t.Errorf("Strategy() = %v, want Lazy at match ratio 0.25", e.Strategy())
	}
}

func TestEagerMinCallsDelaysSwitch(t *testing.T) {
	config := adaptiveConfig()
	config.EvaluationTripPoint = 2
	config.EagerMinCalls = 6

	e := mustEngine(t, Params{
		Forward:      forwardOptionalB(t),
		Backward:     backwardOptionalB(t),
		Captures:     capturesOptionalB(t),
		EagerCompile: func() *dfa.DFA { return eagerCapturesOptionalB(t) },
	}, config)

	// Trip points at 2 and 4 fire but the call volume is below
	// EagerMinCalls; the one at 6 switches.
	for i := 0; i < 5; i++ {
		mustSearch(t, e, "zzabc", 0)
		if e.Strategy() != StrategyLazy {
			t.Fatalf("strategy switched after %d calls, want 6", i+1)
		}
	}
	mustSearch(t, e, "zzabc", 0)
	if e.Strategy() != StrategyEager {
		t.Errorf("Strategy() = %v after 6 calls, want Eager", e.Strategy())
	}
}
