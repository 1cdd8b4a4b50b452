// Package dfa implements the deterministic automaton executor of the
// matching runtime.
//
// A DFA is a dense transition-table automaton produced by an external
// compiler and handed over through the Builder. Three executor roles exist,
// distinguished only by how the automaton was built:
//
//   - forward: scans left-to-right and reports the match end offset
//   - backward: scans right-to-left (Reverse) and reports the index just
//     before the match start, or a trace-finder discriminator
//   - capture: scans left-to-right and records capture group boundaries
//     through per-transition slot masks
//
// The transition table is organized as:
//
//	table[stateID * stride + byteClass] -> Transition
//
// where stride is the next power of 2 >= alphabetLen, enabling fast
// indexing via table[sid << stride2 + class].
//
// Thread safety: a DFA is immutable after Build and safe for concurrent
// use. Execute allocates no shared state; capture scans write into a
// caller-supplied slot buffer.
package dfa

// StateID is a DFA state identifier (21 bits max = 2M states).
type StateID uint32

// NoMatch is the sentinel scan outcome meaning the automaton rejected.
const NoMatch = -1

// MaxCaptureGroups is the maximum number of capture groups a capture
// automaton may track, including group 0 (32 slots).
const MaxCaptureGroups = 16

// noMatchValue marks a match state that reports its scan position rather
// than a fixed discriminator.
const noMatchValue = int32(-1)

// DFA is a dense deterministic automaton.
//
// Anchoring and scan direction are properties of the compiled table, not
// of the executor: an unanchored forward automaton encodes its own
// restart loop, a backward automaton is built over the reversed pattern.
type DFA struct {
	// Transition table: dense array indexed by [stateID][byteClass]
	table []Transition

	// Byte equivalence classes; maps each byte to a class ID [0, alphabetLen)
	classes ByteClasses

	// Alphabet size (number of byte equivalence classes)
	alphabetLen int

	// Stride for indexing: next power of 2 >= alphabetLen
	stride  int
	stride2 uint

	// Start states per look-behind context
	starts StartTable

	// matchStates[sid] is true if state sid is a match state
	matchStates []bool

	// matchValues[sid] holds the trace-finder discriminator reported when
	// the scan accepts in state sid, or noMatchValue to report the scan
	// position instead
	matchValues []int32

	// matchSlots[sid] is the slot mask applied at the match end position
	// when the scan accepts in state sid (capture automata only)
	matchSlots []uint32

	// matchWins[sid] is true if entering state sid terminates the scan
	// immediately (leftmost-first semantics); otherwise the scan is greedy
	// and keeps going until the automaton dies
	matchWins []bool

	// numCaptures is the number of capture groups tracked, including
	// group 0; zero for position automata
	numCaptures int

	anchored     bool
	reverse      bool
	prefixLength int
	stateCount   int
}

// Outcome is the result of a single executor run.
//
// Pos is the automaton's integer outcome: for forward automata the match
// end offset, for backward automata the index just before the match start
// (so the start is Pos+1), for trace-finder automata the discriminator
// index of the precalculated result that applies. Pos is NoMatch when the
// automaton rejected.
//
// Slots holds capture group offsets as (start, end) pairs for capture
// automata, nil otherwise. Unset slots are -1.
type Outcome struct {
	Pos   int
	Slots []int
}

// IsAnchored reports whether the automaton requires the match boundary it
// scans toward to be at a fixed position.
func (d *DFA) IsAnchored() bool {
	return d.anchored
}

// IsReverse reports whether the automaton scans right-to-left.
func (d *DFA) IsReverse() bool {
	return d.reverse
}

// PrefixLength returns the number of states the automaton consumes before
// semantic input starts. It bounds how far below fromIndex a backward
// scan may run.
func (d *DFA) PrefixLength() int {
	return d.prefixLength
}

// NumCaptures returns the number of capture groups tracked by this
// automaton, including group 0. Zero means a position automaton.
func (d *DFA) NumCaptures() int {
	return d.numCaptures
}

// StateCount returns the number of states, including the dead state.
func (d *DFA) StateCount() int {
	return d.stateCount
}

// getTransition retrieves the transition for the given state and byte class.
func (d *DFA) getTransition(state StateID, class byte) Transition {
	idx := (int(state) << d.stride2) + int(class)
	if idx >= len(d.table) {
		return 0
	}
	return d.table[idx]
}

// isMatchState returns true if the given state is a match state.
func (d *DFA) isMatchState(state StateID) bool {
	if int(state) >= len(d.matchStates) {
		return false
	}
	return d.matchStates[state]
}

// matchOutcome returns the integer outcome reported when the scan accepts
// in state at scan position pos: the state's discriminator if it has one,
// otherwise pos itself.
func (d *DFA) matchOutcome(state StateID, pos int) int {
	if v := d.matchValues[state]; v != noMatchValue {
		return int(v)
	}
	return pos
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// log2 returns the base-2 logarithm of n (must be power of 2).
func log2(n int) uint {
	if n <= 0 {
		return 0
	}
	var log uint
	for n > 1 {
		n >>= 1
		log++
	}
	return log
}
