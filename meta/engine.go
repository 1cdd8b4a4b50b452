// Package meta implements the search orchestrator of the matching runtime.
//
// The Engine owns the automaton set handed over by the external compiler
// (forward, optional backward, optional capture-group automata plus
// optional precalculated result factories) and runs one of two execution
// strategies per search:
//
//   - Lazy (default): the forward automaton answers "did it match" and
//     where it ends; the match start and capture group boundaries are
//     deferred into the returned result and computed by backward/capture
//     scans only if the caller asks for them.
//   - Eager: the capture-group automaton runs up front, producing all
//     group boundaries in one pass.
//
// An adaptive profile counts calls and matches; when callers turn out to
// request capture groups on nearly every match, the engine switches the
// active strategy from Lazy to Eager, once, for the lifetime of the
// engine.
//
// Thread safety: the automata and factories are immutable; per-search
// state lives in pooled buffers; the profile counters and the strategy
// slot are the only shared mutable state. Counters are updated with
// relaxed atomics (approximate counts are sufficient for the heuristic)
// and the strategy slot is a single atomic pointer swap, so concurrent
// searches on one Engine are safe. Returned results are single-owner; see
// package result.
package meta

import (
	"sync/atomic"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexec/dfa"
	"github.com/coregx/regexec/result"
)

// EagerCompileFunc asks the external compiler for an eager capture-group
// automaton when the profile trips. Returning nil means the pattern does
// not support eager matching; the engine then records "eager unavailable"
// permanently and keeps using the Lazy strategy.
type EagerCompileFunc func() *dfa.DFA

// Params is the compiler handoff: everything the external compiler
// produces for one pattern.
type Params struct {
	// Forward is the left-to-right automaton locating the match end.
	// Required.
	Forward *dfa.DFA

	// Backward is the right-to-left automaton locating the match start
	// (or the trace-finder discriminator) given a known end. Required
	// unless the match start is always known without it: the forward
	// automaton is anchored, the search is sticky, or precalculated
	// results resolve the start from the end offset.
	Backward *dfa.DFA

	// Captures is the capture-group automaton. Optional.
	Captures *dfa.DFA

	// Precalc is the ordered precalculated result set for trace-finder
	// patterns. Optional; len==1 means a single deterministic layout,
	// len>1 means the backward discriminator selects the layout.
	Precalc []*result.PreCalc

	// PrefilterLiterals is an optional set of literals the compiler
	// proved every match must start with. When present the lazy forward
	// path skips ahead to the first literal occurrence before scanning.
	PrefilterLiterals [][]byte

	// Sticky constrains the search to start exactly at fromIndex.
	Sticky bool

	// EagerCompile produces the eager capture-group automaton on demand.
	// Optional; nil makes the Eager strategy permanently unavailable.
	EagerCompile EagerCompileFunc
}

// Engine executes searches over one compiled automaton set.
type Engine struct {
	// Statistics.
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on
	// 32-bit platforms. This ensures atomic operations on uint64 fields
	// work correctly.
	stats Stats

	profile Profile

	forward  *dfa.DFA
	backward *dfa.DFA
	captures *dfa.DFA
	precalc  []*result.PreCalc

	// prefilter finds candidate match starts for unanchored patterns
	// whose matches provably begin with one of a set of literals
	prefilter *ahocorasick.Automaton

	sticky bool
	config Config

	eagerCompile EagerCompileFunc

	// strategy is the active-strategy slot: a single pointer swapped at
	// most once, from the lazy state to an eager (or eager-unavailable)
	// state. Readers racing the swap see either strategy, never a
	// partially constructed one.
	strategy atomic.Pointer[strategyState]
	lazy     *strategyState

	slots *slotPool
}

// NewEngine assembles an Engine from the compiler handoff.
func NewEngine(p Params, config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if p.Forward == nil {
		return nil, engineErrorf(MissingForwardAutomaton, "compiler handoff has no forward automaton")
	}
	if p.Forward.IsReverse() {
		return nil, engineErrorf(AutomatonMismatch, "forward automaton scans right-to-left")
	}
	if p.Backward != nil && !p.Backward.IsReverse() {
		return nil, engineErrorf(AutomatonMismatch, "backward automaton scans left-to-right")
	}
	if p.Backward == nil && !p.Forward.IsAnchored() && !p.Sticky && len(p.Precalc) == 0 {
		return nil, engineErrorf(AutomatonMismatch,
			"unanchored non-sticky handoff has no backward automaton to resolve match starts")
	}
	if p.Captures != nil && p.Captures.NumCaptures() == 0 {
		return nil, engineErrorf(AutomatonMismatch, "capture-group automaton tracks no capture groups")
	}
	for i, pc := range p.Precalc {
		if pc == nil {
			return nil, engineErrorf(AutomatonMismatch, "precalculated result %d is nil", i)
		}
		if pc.NumGroups() != p.Precalc[0].NumGroups() {
			return nil, engineErrorf(AutomatonMismatch,
				"precalculated results disagree on group count (%d vs %d)",
				pc.NumGroups(), p.Precalc[0].NumGroups())
		}
	}
	if len(p.Precalc) > 1 && p.Backward == nil {
		return nil, engineErrorf(AutomatonMismatch,
			"trace-finder handoff (%d precalculated results) has no backward discriminator automaton", len(p.Precalc))
	}

	e := &Engine{
		forward:      p.Forward,
		backward:     p.Backward,
		captures:     p.Captures,
		precalc:      p.Precalc,
		sticky:       p.Sticky,
		config:       config,
		eagerCompile: p.EagerCompile,
		slots:        newSlotPool(),
	}
	e.lazy = &strategyState{kind: StrategyLazy}
	e.strategy.Store(e.lazy)

	if config.EnablePrefilter && len(p.PrefilterLiterals) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range p.PrefilterLiterals {
			builder.AddPattern(lit)
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, engineErrorf(PrefilterBuild, "building literal prefilter: %v", err)
		}
		e.prefilter = auto
	}
	return e, nil
}

// Search runs the currently active strategy against input starting at
// fromIndex and updates the adaptive profile.
//
// fromIndex must satisfy 0 <= fromIndex <= len(input); violating this is
// a caller contract violation reported as an error, not a NoMatch.
func (e *Engine) Search(input []byte, fromIndex int) (*result.Result, error) {
	if fromIndex < 0 || fromIndex > len(input) {
		return nil, engineErrorf(FromIndexOutOfRange,
			"fromIndex %d out of range [0, %d]", fromIndex, len(input))
	}

	st := e.strategy.Load()
	var res *result.Result
	if st.kind == StrategyEager {
		res = e.searchEager(st.captures, input, fromIndex)
	} else {
		res = e.searchLazy(input, fromIndex)
	}

	if st.kind == StrategyLazy {
		e.observe(res)
	}
	return res, nil
}

// observe updates the profile after a lazy search and fires the one-shot
// strategy switch at the evaluation trip point.
func (e *Engine) observe(res *result.Result) {
	calls := e.profile.incCalls()
	if res.IsMatch() {
		e.profile.incMatches()
	}
	if e.config.EvaluationTripPoint <= 0 {
		return
	}
	if calls%uint64(e.config.EvaluationTripPoint) != 0 {
		return
	}
	if e.profile.shouldUseEagerMatching(e.config) {
		e.switchToEager()
	}
}

// switchToEager performs the irreversible Lazy -> Eager (or Lazy ->
// EagerUnavailable) transition. Racing callers may both compile; the CAS
// makes exactly one swap win and the loser's automaton is discarded.
func (e *Engine) switchToEager() {
	next := &strategyState{kind: StrategyEagerUnavailable}
	if e.eagerCompile != nil {
		if d := e.eagerCompile(); d != nil && d.NumCaptures() > 0 && !d.IsReverse() {
			next = &strategyState{kind: StrategyEager, captures: d}
		}
	}
	if e.strategy.CompareAndSwap(e.lazy, next) && next.kind == StrategyEager {
		atomic.AddUint64(&e.stats.EagerSwitches, 1)
	}
}

// Strategy returns the currently active strategy.
func (e *Engine) Strategy() StrategyKind {
	return e.strategy.Load().kind
}

// Profile returns the adaptive profile for inspection.
func (e *Engine) Profile() *Profile {
	return &e.profile
}

// NumCaptures returns the number of capture groups results of this engine
// expose, including group 0.
func (e *Engine) NumCaptures() int {
	switch {
	case e.captures != nil:
		return e.captures.NumCaptures()
	case len(e.precalc) > 0:
		return e.precalc[0].NumGroups()
	default:
		return 1
	}
}
