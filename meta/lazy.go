package meta

import (
	"sync/atomic"

	"github.com/coregx/regexec/dfa"
	"github.com/coregx/regexec/result"
)

// Lazy strategy: always do the cheapest possible work to answer "did it
// match", and defer the two genuinely expensive computations (exact start
// position, exact capture-group boundaries) until a caller asks for them.
// Most callers of a boolean/indexOf-style match never do.

// searchLazy dispatches between the forward path and the anchored
// backward path: when the backward automaton is anchored at the tail, one
// backward scan from the end of input resolves both boundaries.
func (e *Engine) searchLazy(input []byte, fromIndex int) *result.Result {
	if e.backward != nil && e.backward.IsAnchored() {
		return e.searchBackwardAnchored(input, fromIndex)
	}
	return e.searchForward(input, fromIndex)
}

// searchForward runs the forward automaton, then classifies the result
// per the cheapest applicable shape.
func (e *Engine) searchForward(input []byte, fromIndex int) *result.Result {
	end := e.runForward(input, fromIndex)
	if end == dfa.NoMatch {
		return result.NoMatch
	}

	// Single precalculated layout: the end offset alone determines the
	// whole result.
	if len(e.precalc) == 1 {
		return e.precalc[0].FromEnd(input, end)
	}

	if len(e.precalc) == 0 && e.captures == nil {
		if end == fromIndex {
			// zero-length match
			return result.NewSingle(input, end, end)
		}
		if e.forward.IsAnchored() || e.sticky {
			return result.NewSingle(input, fromIndex, end)
		}
		return result.NewSingleLazyStart(input, end, e.lazyFindStart(input, fromIndex, end))
	}

	// Multiple precalculated layouts: the backward scan's discriminator
	// selects which one, lazily.
	if len(e.precalc) > 1 {
		return result.NewTraceFinder(input, end, e.lazyDiscriminator(input, fromIndex, end), e.precalc)
	}

	// General capture-group case.
	ncg := e.captures.NumCaptures()
	if e.forward.IsAnchored() || (e.sticky && e.forward.PrefixLength() == 0) {
		return result.NewLazyCaptureGroups(input, fromIndex, end, ncg, nil, e.lazyFindGroups(input, end))
	}
	return result.NewLazyCaptureGroups(input, -1, end, ncg, e.lazyFindStart(input, fromIndex, end), e.lazyFindGroups(input, end))
}

// searchBackwardAnchored handles tail-anchored patterns: scan backward
// from the end of input down to the prefix-adjusted floor; the match end
// is the input length by construction.
func (e *Engine) searchBackwardAnchored(input []byte, fromIndex int) *result.Result {
	n := len(input)
	atomic.AddUint64(&e.stats.BackwardScans, 1)
	out := e.backward.Execute(input, fromIndex, n-1, e.backwardFloor(fromIndex))
	if out.Pos == dfa.NoMatch {
		return result.NoMatch
	}
	if len(e.precalc) > 1 {
		// out.Pos is the discriminator index, not a position.
		return e.precalc[out.Pos].FromEnd(input, n)
	}
	start := out.Pos + 1
	if len(e.precalc) == 1 {
		return e.precalc[0].FromStart(input, start)
	}
	if e.captures != nil {
		return result.NewLazyCaptureGroups(input, start, n, e.captures.NumCaptures(), nil, e.lazyFindGroups(input, n))
	}
	return result.NewSingle(input, start, n)
}

// runForward performs the forward scan, skipping ahead via the literal
// prefilter when one is available and the search is free to move.
func (e *Engine) runForward(input []byte, fromIndex int) int {
	startIndex := fromIndex
	if e.prefilter != nil && !e.forward.IsAnchored() && !e.sticky {
		m := e.prefilter.Find(input, fromIndex)
		if m == nil {
			// Literals are necessary prefixes; no literal means no match.
			atomic.AddUint64(&e.stats.PrefilterMisses, 1)
			return dfa.NoMatch
		}
		atomic.AddUint64(&e.stats.PrefilterHits, 1)
		startIndex = m.Start
	}
	atomic.AddUint64(&e.stats.ForwardScans, 1)
	out := e.forward.Execute(input, fromIndex, startIndex, len(input))
	return out.Pos
}

// backwardFloor bounds how far below fromIndex a backward scan may run:
// the forward automaton's prefix states may have consumed input before
// the semantic match start.
func (e *Engine) backwardFloor(fromIndex int) int {
	return max(-1, fromIndex-1-e.forward.PrefixLength())
}

// lazyFindStart captures the backward scan locating the match start for a
// known end. Invoked at most once, on first access to the result's start.
func (e *Engine) lazyFindStart(input []byte, fromIndex, end int) func() int {
	return func() int {
		atomic.AddUint64(&e.stats.BackwardScans, 1)
		out := e.backward.Execute(input, fromIndex, end-1, e.backwardFloor(fromIndex))
		if out.Pos == dfa.NoMatch {
			panic("regexec: backward scan found no start for a forward match")
		}
		return out.Pos + 1
	}
}

// lazyDiscriminator captures the backward scan selecting which
// precalculated layout applies (trace-finder patterns).
func (e *Engine) lazyDiscriminator(input []byte, fromIndex, end int) func() int {
	return func() int {
		atomic.AddUint64(&e.stats.BackwardScans, 1)
		out := e.backward.Execute(input, fromIndex, end-1, e.backwardFloor(fromIndex))
		if out.Pos == dfa.NoMatch {
			panic("regexec: trace-finder discriminator scan found no match")
		}
		return out.Pos
	}
}

// lazyFindGroups captures the capture-group scan over [start, end).
// Invoked at most once, after the start is resolved.
func (e *Engine) lazyFindGroups(input []byte, end int) func(start int) []int {
	return func(start int) []int {
		atomic.AddUint64(&e.stats.CaptureScans, 1)
		work := e.slots.get()
		defer e.slots.put(work)
		out := e.captures.ExecuteWithSlots(input, start, start, end, work)
		if out.Pos == dfa.NoMatch {
			return nil
		}
		return out.Slots
	}
}
