// Package result implements the match result algebra of the runtime.
//
// A Result is a tagged variant covering the five shapes a search can
// produce: no match, a plain start/end pair, a pair whose start is
// computed on demand by a backward scan, lazily computed capture groups,
// and a trace-finder result whose group layout is selected from a
// precalculated set by a deferred discriminator scan.
//
// Deferred fields are resolved on first access and cached; after
// resolution the result is observably immutable and repeated accesses
// return identical values. Results are single-owner objects: one Result
// must not be shared between goroutines, which is how the runtime keeps
// resolution idempotent without synchronization. The automata behind the
// deferred closures are themselves safe for concurrent use, so distinct
// Results may resolve in parallel.
package result

import "fmt"

// Kind is the variant tag of a Result.
type Kind uint8

const (
	// KindNoMatch - the pattern does not occur at/after fromIndex
	KindNoMatch Kind = iota

	// KindSingle - start and end both known, no capture groups
	KindSingle

	// KindSingleLazyStart - end known, start computed on demand by a
	// backward scan, no capture groups
	KindSingleLazyStart

	// KindLazyCaptureGroups - end known, start and group boundaries
	// possibly deferred to backward and capture-group scans
	KindLazyCaptureGroups

	// KindTraceFinder - end known, group layout selected from a
	// precalculated set by a deferred discriminator scan
	KindTraceFinder
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNoMatch:
		return "NoMatch"
	case KindSingle:
		return "Single"
	case KindSingleLazyStart:
		return "SingleLazyStart"
	case KindLazyCaptureGroups:
		return "LazyCaptureGroups"
	case KindTraceFinder:
		return "TraceFinder"
	default:
		return fmt.Sprintf("UnknownKind(%d)", k)
	}
}

// Result is a match result. The zero value is not meaningful; use the
// constructors or the NoMatch sentinel.
//
// Positional accessors (Start, End, GroupStart, GroupEnd, ...) must only
// be called after IsMatch has been checked; they panic on NoMatch.
type Result struct {
	kind  Kind
	input []byte

	// start is -1 until resolved for deferred-start variants
	start int
	end   int

	// groups holds resolved capture slots [start0, end0, start1, end1, ...];
	// nil until resolved for deferred-group variants
	groups    []int
	numGroups int

	// deferred computations; nil once resolved (or never needed)
	findStart     func() int
	findGroups    func(start int) []int
	discriminator func() int
	precalc       []*PreCalc
}

// NoMatch is the shared sentinel for "the pattern does not occur".
// It is a successful outcome, not an error.
var NoMatch = &Result{kind: KindNoMatch, start: -1, end: -1}

// NewSingle creates a fully resolved result with no capture groups.
func NewSingle(input []byte, start, end int) *Result {
	return &Result{
		kind:      KindSingle,
		input:     input,
		start:     start,
		end:       end,
		numGroups: 1,
	}
}

// NewSingleLazyStart creates a result whose end is known and whose start
// is produced by findStart on first access.
func NewSingleLazyStart(input []byte, end int, findStart func() int) *Result {
	return &Result{
		kind:      KindSingleLazyStart,
		input:     input,
		start:     -1,
		end:       end,
		numGroups: 1,
		findStart: findStart,
	}
}

// NewLazyCaptureGroups creates a capture-group result. If start is
// already known pass it with findStart nil; otherwise pass start -1 and a
// findStart closure. findGroups receives the resolved start and returns
// the full slot array.
func NewLazyCaptureGroups(input []byte, start, end, numGroups int, findStart func() int, findGroups func(start int) []int) *Result {
	return &Result{
		kind:       KindLazyCaptureGroups,
		input:      input,
		start:      start,
		end:        end,
		numGroups:  numGroups,
		findStart:  findStart,
		findGroups: findGroups,
	}
}

// NewEagerCaptureGroups creates a fully resolved capture-group result
// from a complete slot array (as produced by an eager capture scan).
func NewEagerCaptureGroups(input []byte, slots []int, numGroups int) *Result {
	return &Result{
		kind:      KindLazyCaptureGroups,
		input:     input,
		start:     slots[0],
		end:       slots[1],
		groups:    slots,
		numGroups: numGroups,
	}
}

// NewTraceFinder creates a result whose group layout is one of the given
// precalculated factories; discriminator selects which one on first
// access to any deferred field.
func NewTraceFinder(input []byte, end int, discriminator func() int, precalc []*PreCalc) *Result {
	numGroups := 1
	if len(precalc) > 0 {
		numGroups = precalc[0].NumGroups()
	}
	return &Result{
		kind:          KindTraceFinder,
		input:         input,
		start:         -1,
		end:           end,
		numGroups:     numGroups,
		discriminator: discriminator,
		precalc:       precalc,
	}
}

// Kind returns the variant tag.
func (r *Result) Kind() Kind {
	return r.kind
}

// IsMatch reports whether the pattern occurred.
func (r *Result) IsMatch() bool {
	return r.kind != KindNoMatch
}

// Start returns the inclusive start offset of the match, resolving it via
// the backward scan on first access if it was deferred.
func (r *Result) Start() int {
	r.mustMatch("Start")
	if r.start < 0 {
		r.resolveStart()
	}
	return r.start
}

// End returns the exclusive end offset of the match.
func (r *Result) End() int {
	r.mustMatch("End")
	return r.end
}

// GroupCount returns the number of capture groups, including group 0
// (the entire match).
func (r *Result) GroupCount() int {
	return r.numGroups
}

// GroupStart returns the inclusive start offset of capture group i, or -1
// if the group did not participate in the match. Group 0 is the entire
// match. Accessing a deferred group triggers resolution.
func (r *Result) GroupStart(i int) int {
	r.mustMatch("GroupStart")
	if i == 0 {
		return r.Start()
	}
	r.checkGroup(i)
	r.resolveGroups()
	return r.groups[i*2]
}

// GroupEnd returns the exclusive end offset of capture group i, or -1 if
// the group did not participate in the match.
func (r *Result) GroupEnd(i int) int {
	r.mustMatch("GroupEnd")
	if i == 0 {
		return r.End()
	}
	r.checkGroup(i)
	r.resolveGroups()
	return r.groups[i*2+1]
}

// Group returns the bytes of capture group i as a view into the input,
// or nil if the group did not participate. The returned slice is not a
// copy.
func (r *Result) Group(i int) []byte {
	start, end := r.GroupStart(i), r.GroupEnd(i)
	if start < 0 || end < 0 {
		return nil
	}
	return r.input[start:end]
}

// Bytes returns the matched bytes as a view into the input (not a copy).
func (r *Result) Bytes() []byte {
	return r.input[r.Start():r.End()]
}

// String returns the matched text. This allocates a new string; for
// zero-allocation access use Bytes.
func (r *Result) String() string {
	if r.kind == KindNoMatch {
		return "<no match>"
	}
	return string(r.Bytes())
}

// Len returns the length of the match in bytes.
func (r *Result) Len() int {
	return r.End() - r.Start()
}

// IsEmpty returns true if the match has zero length.
func (r *Result) IsEmpty() bool {
	return r.Start() == r.End()
}

// resolveStart computes and caches the deferred start offset.
func (r *Result) resolveStart() {
	switch {
	case r.kind == KindTraceFinder:
		r.materialize()
	case r.findStart != nil:
		r.start = r.findStart()
		r.findStart = nil
	}
	if r.start < 0 {
		panic("regexec: result has no resolvable start")
	}
}

// resolveGroups computes and caches the deferred capture slots.
func (r *Result) resolveGroups() {
	if r.groups != nil {
		return
	}
	switch r.kind {
	case KindTraceFinder:
		r.materialize()
	case KindLazyCaptureGroups:
		start := r.Start()
		r.groups = r.findGroups(start)
		r.findGroups = nil
	default:
		// Single-shape results expose only group 0.
		r.groups = []int{r.Start(), r.End()}
	}
	if r.groups == nil {
		panic("regexec: capture group scan disagreed with forward search")
	}
}

// materialize runs the trace-finder discriminator and copies the selected
// precalculated layout into this result, anchored at the known end.
func (r *Result) materialize() {
	if r.discriminator == nil {
		return
	}
	idx := r.discriminator()
	r.discriminator = nil
	if idx < 0 || idx >= len(r.precalc) {
		panic(fmt.Sprintf("regexec: trace-finder discriminator %d out of range (have %d precalculated results)", idx, len(r.precalc)))
	}
	r.precalc[idx].fillFromEnd(r, r.end)
}

// mustMatch panics if the accessor is invoked on NoMatch.
func (r *Result) mustMatch(accessor string) {
	if r.kind == KindNoMatch {
		panic("regexec: " + accessor + " called on NoMatch result; check IsMatch first")
	}
}

// checkGroup panics on an out-of-range group index.
func (r *Result) checkGroup(i int) {
	if i < 0 || i >= r.numGroups {
		panic(fmt.Sprintf("regexec: capture group %d out of range (pattern has %d groups)", i, r.numGroups))
	}
}
