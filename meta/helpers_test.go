package meta

import (
	"testing"

	"github.com/coregx/regexec/dfa"
	"github.com/coregx/regexec/result"
)

// Hand-built automaton set for the pattern a(b)?c, the running example of
// the engine tests: one optional group, matches "ac" and "abc".

// forwardOptionalB builds the unanchored forward position automaton for
// a(b)?c. Reports the match end, leftmost-first.
func forwardOptionalB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{})
	scan := b.AddState()
	sa := b.AddState()
	sab := b.AddState()
	acc := b.AddState()

	b.AddTransition(scan, 0, 'a'-1, scan)
	b.AddTransition(scan, 'a', 'a', sa)
	b.AddTransition(scan, 'b', 0xFF, scan)

	b.AddTransition(sa, 0, 'a'-1, scan)
	b.AddTransition(sa, 'a', 'a', sa)
	b.AddTransition(sa, 'b', 'b', sab)
	b.AddTransition(sa, 'c', 'c', acc)
	b.AddTransition(sa, 'd', 0xFF, scan)

	b.AddTransition(sab, 0, 'a'-1, scan)
	b.AddTransition(sab, 'a', 'a', sa)
	b.AddTransition(sab, 'b', 'b', scan)
	b.AddTransition(sab, 'c', 'c', acc)
	b.AddTransition(sab, 'd', 0xFF, scan)

	b.SetMatchWins(acc)
	b.SetStart(scan)
	return mustBuild(t, b)
}

// anchoredForwardOptionalB builds the anchored forward position automaton
// for a(b)?c: the match must begin exactly at the scan start.
func anchoredForwardOptionalB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Anchored: true})
	s0 := b.AddState()
	sa := b.AddState()
	sab := b.AddState()
	acc := b.AddState()

	b.AddTransition(s0, 'a', 'a', sa)
	b.AddTransition(sa, 'b', 'b', sab)
	b.AddTransition(sa, 'c', 'c', acc)
	b.AddTransition(sab, 'c', 'c', acc)

	b.SetMatchWins(acc)
	b.SetStart(s0)
	return mustBuild(t, b)
}

// stickyForwardOptionalB builds the forward automaton a sticky a(b)?c
// pattern is handed: no restart edges, but the anchored flag stays off
// because stickiness is a search property, not an automaton property.
func stickyForwardOptionalB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{})
	s0 := b.AddState()
	sa := b.AddState()
	sab := b.AddState()
	acc := b.AddState()

	b.AddTransition(s0, 'a', 'a', sa)
	b.AddTransition(sa, 'b', 'b', sab)
	b.AddTransition(sa, 'c', 'c', acc)
	b.AddTransition(sab, 'c', 'c', acc)

	b.SetMatchWins(acc)
	b.SetStart(s0)
	return mustBuild(t, b)
}

// backwardOptionalB builds the right-to-left start finder for a(b)?c:
// given a match end, it consumes c, optional b, then a, and reports the
// index just before the match start.
func backwardOptionalB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Reverse: true})
	r0 := b.AddState()
	rc := b.AddState()
	rcb := b.AddState()
	acc := b.AddState()

	b.AddTransition(r0, 'c', 'c', rc)
	b.AddTransition(rc, 'b', 'b', rcb)
	b.AddTransition(rc, 'a', 'a', acc)
	b.AddTransition(rcb, 'a', 'a', acc)

	b.SetMatch(acc)
	b.SetStart(r0)
	return mustBuild(t, b)
}

// capturesOptionalB builds the anchored capture automaton for a(b)?c,
// run from a resolved match start. Group 1 is the optional (b).
func capturesOptionalB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Anchored: true, NumCaptures: 2})
	s0 := b.AddState()
	sa := b.AddState()
	sab := b.AddState()
	acc := b.AddState()

	b.AddTransition(s0, 'a', 'a', sa)
	b.AddCaptureTransition(sa, 'b', 'b', sab, 1<<2)
	b.AddTransition(sa, 'c', 'c', acc)
	b.AddCaptureTransition(sab, 'c', 'c', acc, 1<<3)

	b.SetMatchWins(acc)
	b.SetStart(s0)
	return mustBuild(t, b)
}

// eagerCapturesOptionalB builds the unanchored one-pass capture automaton
// for a(b)?c: restart edges clear stale group slots and re-record the
// match start.
func eagerCapturesOptionalB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{NumCaptures: 2})
	scan := b.AddState()
	sa := b.AddState()
	sab := b.AddState()
	acc := b.AddState()

	b.AddTransition(scan, 0, 'a'-1, scan)
	b.AddRestartTransition(scan, 'a', 'a', sa, 1<<0)
	b.AddTransition(scan, 'b', 0xFF, scan)

	b.AddTransition(sa, 0, 'a'-1, scan)
	b.AddRestartTransition(sa, 'a', 'a', sa, 1<<0)
	b.AddCaptureTransition(sa, 'b', 'b', sab, 1<<2)
	b.AddTransition(sa, 'c', 'c', acc)
	b.AddTransition(sa, 'd', 0xFF, scan)

	b.AddTransition(sab, 0, 'a'-1, scan)
	b.AddRestartTransition(sab, 'a', 'a', sa, 1<<0)
	b.AddTransition(sab, 'b', 'b', scan)
	b.AddCaptureTransition(sab, 'c', 'c', acc, 1<<3)
	b.AddTransition(sab, 'd', 0xFF, scan)

	b.SetMatchWins(acc)
	b.SetStart(scan)
	return mustBuild(t, b)
}

// Trace-finder automaton set for a(b|c): two possible group layouts (the
// b branch binds group 1, the c branch binds group 2), selected by a
// backward discriminator scan.

func forwardBranch(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{})
	scan := b.AddState()
	sa := b.AddState()
	acc := b.AddState()

	b.AddTransition(scan, 0, 'a'-1, scan)
	b.AddTransition(scan, 'a', 'a', sa)
	b.AddTransition(scan, 'b', 0xFF, scan)

	b.AddTransition(sa, 0, 'a'-1, scan)
	b.AddTransition(sa, 'a', 'a', sa)
	b.AddTransition(sa, 'b', 'c', acc)
	b.AddTransition(sa, 'd', 0xFF, scan)

	b.SetMatchWins(acc)
	b.SetStart(scan)
	return mustBuild(t, b)
}

// discriminatorBranch reports 0 when the match took the b branch and 1
// for the c branch instead of a position.
func discriminatorBranch(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Reverse: true})
	r0 := b.AddState()
	rb := b.AddState()
	rc := b.AddState()
	accB := b.AddState()
	accC := b.AddState()

	b.AddTransition(r0, 'b', 'b', rb)
	b.AddTransition(r0, 'c', 'c', rc)
	b.AddTransition(rb, 'a', 'a', accB)
	b.AddTransition(rc, 'a', 'a', accC)

	b.SetMatchValue(accB, 0)
	b.SetMatchValue(accC, 1)
	b.SetStart(r0)
	return mustBuild(t, b)
}

// capturesBranch builds the anchored capture automaton for a(b|c): the b
// branch binds group 1, the c branch group 2, both ending at the match
// end.
func capturesBranch(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Anchored: true, NumCaptures: 3})
	s0 := b.AddState()
	sa := b.AddState()
	accB := b.AddState()
	accC := b.AddState()

	b.AddTransition(s0, 'a', 'a', sa)
	b.AddCaptureTransition(sa, 'b', 'b', accB, 1<<2)
	b.AddCaptureTransition(sa, 'c', 'c', accC, 1<<4)

	b.SetMatchSlots(accB, 1<<3)
	b.SetMatchSlots(accC, 1<<5)
	b.SetMatchWins(accB)
	b.SetMatchWins(accC)
	b.SetStart(s0)
	return mustBuild(t, b)
}

func branchPrecalc() []*result.PreCalc {
	return []*result.PreCalc{
		result.MustPreCalc([]int{0, 2, 1, 2, -1, -1}),
		result.MustPreCalc([]int{0, 2, -1, -1, 1, 2}),
	}
}

// forwardLiteralAB builds the unanchored forward automaton for the
// literal "ab" (single-precalc tests).
func forwardLiteralAB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{})
	scan := b.AddState()
	sa := b.AddState()
	acc := b.AddState()

	b.AddTransition(scan, 0, 'a'-1, scan)
	b.AddTransition(scan, 'a', 'a', sa)
	b.AddTransition(scan, 'b', 0xFF, scan)

	b.AddTransition(sa, 0, 'a'-1, scan)
	b.AddTransition(sa, 'a', 'a', sa)
	b.AddTransition(sa, 'b', 'b', acc)
	b.AddTransition(sa, 'c', 0xFF, scan)

	b.SetMatchWins(acc)
	b.SetStart(scan)
	return mustBuild(t, b)
}

// tailAnchoredBackwardAB builds the anchored right-to-left automaton for
// a pattern ending the input with "ab": one backward scan from the last
// byte resolves the whole match.
func tailAnchoredBackwardAB(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Reverse: true, Anchored: true})
	r0 := b.AddState()
	rb := b.AddState()
	acc := b.AddState()

	b.AddTransition(r0, 'b', 'b', rb)
	b.AddTransition(rb, 'a', 'a', acc)

	b.SetMatch(acc)
	b.SetStart(r0)
	return mustBuild(t, b)
}

// zeroLengthForward builds an anchored forward automaton for a*: its
// start state accepts, so a scan can succeed without consuming input.
func zeroLengthForward(t *testing.T) *dfa.DFA {
	t.Helper()
	b := dfa.NewBuilder(dfa.BuilderConfig{Anchored: true})
	s0 := b.AddState()
	b.AddTransition(s0, 'a', 'a', s0)
	b.SetMatch(s0)
	b.SetStart(s0)
	return mustBuild(t, b)
}

func mustBuild(t *testing.T, b *dfa.Builder) *dfa.DFA {
	t.Helper()
	d, err := b.Build()
	if err != nil {
		t.Fatalf("building automaton: %v", err)
	}
	return d
}

// mustEngine assembles an engine and fails the test on a handoff error.
func mustEngine(t *testing.T, p Params, config Config) *Engine {
	t.Helper()
	e, err := NewEngine(p, config)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// mustSearch runs a search and fails the test on a contract error.
func mustSearch(t *testing.T, e *Engine, input string, fromIndex int) *result.Result {
	t.Helper()
	res, err := e.Search([]byte(input), fromIndex)
	if err != nil {
		t.Fatalf("Search(%q, %d): %v", input, fromIndex, err)
	}
	return res
}
