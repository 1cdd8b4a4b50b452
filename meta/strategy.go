package meta

import (
	"fmt"

	"github.com/coregx/regexec/dfa"
)

// StrategyKind identifies the active execution strategy.
//
// Every engine starts Lazy. Per engine at most one transition happens,
// driven by the profile heuristic:
//
//	Lazy -> Eager             (eager capture automaton obtained)
//	Lazy -> EagerUnavailable  (compiler cannot produce one; terminal)
//
// Both targets are terminal: once switched, the engine is no longer
// profiled.
type StrategyKind uint8

const (
	// StrategyLazy defers start and capture-group computation into the
	// returned result.
	StrategyLazy StrategyKind = iota

	// StrategyEager computes all capture groups up front in one pass.
	StrategyEager

	// StrategyEagerUnavailable means the switch heuristic fired but no
	// eager automaton exists for this pattern; the engine runs Lazy
	// forever and never re-evaluates.
	StrategyEagerUnavailable
)

// String returns a human-readable representation of the StrategyKind.
func (k StrategyKind) String() string {
	switch k {
	case StrategyLazy:
		return "Lazy"
	case StrategyEager:
		return "Eager"
	case StrategyEagerUnavailable:
		return "EagerUnavailable"
	default:
		return fmt.Sprintf("UnknownStrategy(%d)", k)
	}
}

// strategyState is the value held in the engine's atomic strategy slot.
// It is immutable once published.
type strategyState struct {
	kind StrategyKind

	// captures is the eager capture-group automaton; non-nil only for
	// StrategyEager
	captures *dfa.DFA
}
