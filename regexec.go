// Package regexec is the matching runtime of a regex system: it executes
// precompiled deterministic automata against byte inputs and produces
// match results, choosing between lazy and eager execution strategies to
// minimize average-case cost.
//
// This package is the runtime only. Pattern parsing, syntax validation
// and automaton compilation belong to an external compiler, which hands
// over ready-made automata through Params (assembled per automaton with
// dfa.Builder). Malformed patterns are the compiler's to report; every
// automaton reaching this package is assumed valid.
//
// Basic usage:
//
//	re, err := regexec.New(regexec.Params{
//	    Forward:  forward,  // *dfa.DFA from the compiler
//	    Backward: backward,
//	    Captures: captures,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := re.Search([]byte("hello 123"), 0)
//	if err != nil {
//	    log.Fatal(err) // fromIndex out of range
//	}
//	if res.IsMatch() {
//	    fmt.Println(res.Start(), res.End()) // start resolves lazily here
//	}
//
// Lazy results defer the match start and capture-group boundaries until
// accessed; callers who only need IsMatch or End never pay for them. A
// per-pattern profile watches call volume and match ratio and may switch
// the pattern to eager capture-group matching, once, when that is the
// cheaper mode for the observed call sites.
//
// A Regex is safe for concurrent use; each returned Result must stay with
// a single goroutine.
package regexec

import (
	"github.com/coregx/regexec/meta"
	"github.com/coregx/regexec/result"
)

// Params is the compiler handoff describing one pattern's automaton set.
type Params = meta.Params

// Config controls runtime behavior, including the adaptive
// strategy-switch thresholds.
type Config = meta.Config

// Result is a match result; see package result for the accessor contract.
type Result = result.Result

// DefaultConfig returns the default runtime configuration.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Regex is one pattern's executable form: the automaton set plus the
// adaptive execution state.
type Regex struct {
	engine *meta.Engine
}

// New assembles a Regex from the compiler handoff with default
// configuration.
func New(p Params) (*Regex, error) {
	return NewWithConfig(p, meta.DefaultConfig())
}

// NewWithConfig is New with explicit configuration.
func NewWithConfig(p Params, config Config) (*Regex, error) {
	engine, err := meta.NewEngine(p, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// Search runs the pattern against input starting at fromIndex.
//
// fromIndex must satisfy 0 <= fromIndex <= len(input); violations are
// reported as an error (caller contract violation, not a matching
// failure). A pattern that does not occur yields a Result with
// IsMatch() == false and a nil error.
func (r *Regex) Search(input []byte, fromIndex int) (*Result, error) {
	return r.engine.Search(input, fromIndex)
}

// IsMatch reports whether the pattern occurs anywhere in input.
func (r *Regex) IsMatch(input []byte) bool {
	res, err := r.engine.Search(input, 0)
	if err != nil {
		return false
	}
	return res.IsMatch()
}

// Strategy returns the currently active execution strategy.
func (r *Regex) Strategy() meta.StrategyKind {
	return r.engine.Strategy()
}

// Stats returns a snapshot of execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// Profile returns the adaptive profile for inspection.
func (r *Regex) Profile() *meta.Profile {
	return r.engine.Profile()
}

// NumCaptures returns the number of capture groups results of this
// pattern expose, including group 0.
func (r *Regex) NumCaptures() int {
	return r.engine.NumCaptures()
}
