package dfa

import (
	"github.com/coregx/regexec/internal/conv"
)

// BuilderConfig carries the automaton-level properties the external
// compiler determined for the pattern.
type BuilderConfig struct {
	// Reverse marks a right-to-left automaton (backward executor).
	Reverse bool

	// Anchored marks an automaton whose scanned-toward boundary is fixed:
	// match start for forward automata, match end for backward automata.
	Anchored bool

	// PrefixLength is the number of states consumed before semantic input
	// starts; it bounds how far below fromIndex a backward scan may run.
	PrefixLength int

	// NumCaptures is the number of capture groups tracked, including
	// group 0. Zero builds a position automaton.
	NumCaptures int
}

// Builder assembles a DFA from explicit states and byte-range transitions.
//
// This is the handoff contract with the external compiler: the compiler
// lowers its automaton into AddState/AddTransition calls and Build
// validates determinism and packs the dense table. State 0 is reserved as
// the dead state; AddState numbers states from 1.
//
// Example:
//
//	b := dfa.NewBuilder(dfa.BuilderConfig{Anchored: true})
//	s0 := b.AddState()
//	s1 := b.AddState()
//	b.AddTransition(s0, 'a', 'a', s1)
//	b.SetMatch(s1)
//	b.SetStart(s0)
//	d, err := b.Build()
type Builder struct {
	config BuilderConfig

	transitions []transitionSpec

	// per-state marks, indexed by StateID (entry 0 is the dead state)
	match      []bool
	matchValue []int32
	matchSlot  []uint32
	matchWin   []bool

	starts   [startKindCount]StateID
	startSet bool

	err error
}

type transitionSpec struct {
	from  StateID
	lo    byte
	hi    byte
	to    StateID
	slots uint32
	clear bool
}

// NewBuilder creates a Builder for an automaton with the given properties.
func NewBuilder(config BuilderConfig) *Builder {
	b := &Builder{
		config:     config,
		match:      []bool{false},
		matchValue: []int32{noMatchValue},
		matchSlot:  []uint32{0},
		matchWin:   []bool{false},
	}
	if config.NumCaptures > MaxCaptureGroups {
		b.setErr(buildErrorf(TooManyCaptures,
			"automaton tracks %d capture groups (max %d)", config.NumCaptures, MaxCaptureGroups))
	}
	if config.PrefixLength < 0 {
		b.setErr(buildErrorf(InvalidRange, "negative prefix length %d", config.PrefixLength))
	}
	return b
}

// AddState adds a state and returns its ID. The first call returns 1;
// state 0 is the dead state.
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.match)))
	if id > MaxStateID {
		b.setErr(buildErrorf(TooManyStates, "state count exceeds %d", MaxStateID))
		return DeadState
	}
	b.match = append(b.match, false)
	b.matchValue = append(b.matchValue, noMatchValue)
	b.matchSlot = append(b.matchSlot, 0)
	b.matchWin = append(b.matchWin, false)
	return id
}

// AddTransition adds a transition from state `from` to state `to` for
// every byte in [lo, hi].
func (b *Builder) AddTransition(from StateID, lo, hi byte, to StateID) {
	b.AddCaptureTransition(from, lo, hi, to, 0)
}

// AddCaptureTransition adds a transition that additionally records the
// pre-consume scan position into every slot named by slotMask (bit i maps
// to slot i, slot layout [start0, end0, start1, end1, ...]).
//
// Group starts are recorded by the transition consuming the group's first
// byte, group ends by the transition consuming the first byte after the
// group; groups ending at the match end are recorded via SetMatchSlots.
func (b *Builder) AddCaptureTransition(from StateID, lo, hi byte, to StateID, slotMask uint32) {
	b.addTransition(from, lo, hi, to, slotMask, false)
}

// AddRestartTransition adds a capture transition that first resets group
// slots 1+ to -1. Unanchored capture automata use it on edges that
// restart the match attempt, so groups recorded by an abandoned attempt
// do not leak into the next one; slotMask then typically re-records
// slot 0 (the new group 0 start).
func (b *Builder) AddRestartTransition(from StateID, lo, hi byte, to StateID, slotMask uint32) {
	b.addTransition(from, lo, hi, to, slotMask, true)
}

func (b *Builder) addTransition(from StateID, lo, hi byte, to StateID, slotMask uint32, clear bool) {
	if lo > hi {
		b.setErr(buildErrorf(InvalidRange, "byte range 0x%02x-0x%02x has lo > hi", lo, hi))
		return
	}
	if !b.validState(from) || !b.validState(to) {
		b.setErr(buildErrorf(InvalidState, "transition %d -> %d references unknown state", from, to))
		return
	}
	b.transitions = append(b.transitions, transitionSpec{from: from, lo: lo, hi: hi, to: to, slots: slotMask, clear: clear})
}

// SetMatch marks a state as a match state.
func (b *Builder) SetMatch(s StateID) {
	if !b.validState(s) {
		b.setErr(buildErrorf(InvalidState, "match mark references unknown state %d", s))
		return
	}
	b.match[s] = true
}

// SetMatchValue marks a state as a match state that reports the fixed
// discriminator v instead of its scan position. Used by trace-finder
// backward automata, where the accepting state identifies which
// precalculated result applies.
func (b *Builder) SetMatchValue(s StateID, v int) {
	b.SetMatch(s)
	if b.err != nil {
		return
	}
	if v < 0 {
		b.setErr(buildErrorf(InvalidRange, "negative match value %d for state %d", v, s))
		return
	}
	b.matchValue[s] = conv.IntToInt32(v)
}

// SetMatchSlots sets the slot mask applied at the match end position when
// the scan accepts in state s (capture automata only).
func (b *Builder) SetMatchSlots(s StateID, slotMask uint32) {
	b.SetMatch(s)
	if b.err != nil {
		return
	}
	b.matchSlot[s] = slotMask
}

// SetMatchWins marks match state s as terminal: the scan stops as soon as
// it enters s (leftmost-first semantics). Without this mark the scan is
// greedy and records the last match seen before the automaton dies.
func (b *Builder) SetMatchWins(s StateID) {
	b.SetMatch(s)
	if b.err != nil {
		return
	}
	b.matchWin[s] = true
}

// SetStart sets the start state for every look-behind context.
func (b *Builder) SetStart(s StateID) {
	if s != DeadState && !b.validState(s) {
		b.setErr(buildErrorf(InvalidState, "start references unknown state %d", s))
		return
	}
	for k := range b.starts {
		b.starts[k] = s
	}
	b.startSet = true
}

// SetStartFor overrides the start state for one look-behind context.
// The dead state is allowed: it makes the automaton reject immediately in
// that context (e.g. a non-multiline ^ pattern entered mid-input).
func (b *Builder) SetStartFor(kind StartKind, s StateID) {
	if s != DeadState && !b.validState(s) {
		b.setErr(buildErrorf(InvalidState, "start for %s references unknown state %d", kind, s))
		return
	}
	b.starts[kind] = s
	b.startSet = true
}

// Build validates the collected automaton and packs the dense transition
// table.
func (b *Builder) Build() (*DFA, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.startSet {
		return nil, buildErrorf(MissingStart, "no start state set")
	}

	// Compute byte equivalence classes from transition range boundaries.
	var set byteClassSet
	for _, t := range b.transitions {
		set.setRange(t.lo, t.hi)
	}
	classes := set.byteClasses()
	alphabetLen := classes.AlphabetLen()
	stride := nextPowerOf2(alphabetLen)
	stride2 := log2(stride)

	stateCount := len(b.match)
	table := make([]Transition, stateCount<<stride2)
	for _, t := range b.transitions {
		packed := NewTransition(t.to, t.slots)
		if t.clear {
			packed = packed.withClearSlots()
		}
		for c := int(t.lo); c <= int(t.hi); c++ {
			idx := (int(t.from) << stride2) + int(classes.Get(byte(c)))
			switch table[idx] {
			case 0:
				table[idx] = packed
			case packed:
				// duplicate range over the same class, consistent
			default:
				return nil, buildErrorf(ConflictingTransition,
					"state %d has conflicting transitions on byte 0x%02x", t.from, c)
			}
		}
	}

	d := &DFA{
		table:        table,
		classes:      classes,
		alphabetLen:  alphabetLen,
		stride:       stride,
		stride2:      stride2,
		matchStates:  b.match,
		matchValues:  b.matchValue,
		matchSlots:   b.matchSlot,
		matchWins:    b.matchWin,
		numCaptures:  b.config.NumCaptures,
		anchored:     b.config.Anchored,
		reverse:      b.config.Reverse,
		prefixLength: b.config.PrefixLength,
		stateCount:   stateCount,
	}
	d.starts.states = b.starts
	d.starts.initByteMap()
	return d, nil
}

// validState reports whether s names an added state (the dead state is
// not a valid transition endpoint source; use it as a target by omitting
// the transition instead).
func (b *Builder) validState(s StateID) bool {
	return s != DeadState && int(s) < len(b.match)
}

// setErr records the first error; later calls keep the original.
func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}
