package dfa

// Execute runs the automaton over input.
//
// The scan starts at startIndex and is bounded by maxIndex: exclusive
// upper bound for forward automata, exclusive lower floor for backward
// automata (the backward scan consumes input[startIndex], input[startIndex-1],
// ... down to but not including input[maxIndex]; maxIndex may be -1).
// fromIndex is the logical start of the search. The start-state table
// keys entry context off the byte adjacent to startIndex (already past
// any prefilter skip), which subsumes fromIndex; it is carried so the
// executor signature matches the engine handoff.
//
// Execute never mutates the DFA and is safe for concurrent use. For
// capture automata it allocates the slot buffers; use ExecuteWithSlots to
// supply a reusable working buffer.
func (d *DFA) Execute(input []byte, fromIndex, startIndex, maxIndex int) Outcome {
	return d.ExecuteWithSlots(input, fromIndex, startIndex, maxIndex, nil)
}

// ExecuteWithSlots is Execute with a caller-supplied working slot buffer
// for capture automata. The buffer must hold at least 2*NumCaptures
// entries; it is overwritten. The Outcome's Slots are freshly allocated
// and do not alias the working buffer. Position automata ignore it.
func (d *DFA) ExecuteWithSlots(input []byte, fromIndex, startIndex, maxIndex int, work []int) Outcome {
	if d.reverse {
		return Outcome{Pos: d.executeBackward(input, startIndex, maxIndex)}
	}
	if d.numCaptures > 0 {
		return d.executeCaptures(input, startIndex, maxIndex, work)
	}
	return Outcome{Pos: d.executeForward(input, startIndex, maxIndex)}
}

// executeForward scans input[startIndex:maxIndex] left-to-right and
// returns the end offset of the match, the accepting state's
// discriminator, or NoMatch.
func (d *DFA) executeForward(input []byte, startIndex, maxIndex int) int {
	state := d.startState(input, startIndex)
	last := NoMatch
	if d.isMatchState(state) {
		// zero-length match at the entry point
		last = d.matchOutcome(state, startIndex)
		if d.matchWins[state] {
			return last
		}
	}
	for pos := startIndex; pos < maxIndex; pos++ {
		t := d.getTransition(state, d.classes.Get(input[pos]))
		if t.IsDead() {
			break
		}
		state = t.NextState()
		if d.isMatchState(state) {
			last = d.matchOutcome(state, pos+1)
			if d.matchWins[state] {
				break
			}
		}
	}
	return last
}

// executeBackward scans input[startIndex], input[startIndex-1], ... down
// to (exclusive) input[maxIndex] and returns the index just before the
// match start, the accepting state's discriminator, or NoMatch.
func (d *DFA) executeBackward(input []byte, startIndex, maxIndex int) int {
	state := d.startState(input, startIndex)
	last := NoMatch
	if d.isMatchState(state) {
		// zero-length match just after startIndex
		last = d.matchOutcome(state, startIndex)
		if d.matchWins[state] {
			return last
		}
	}
	for pos := startIndex; pos > maxIndex; pos-- {
		t := d.getTransition(state, d.classes.Get(input[pos]))
		if t.IsDead() {
			break
		}
		state = t.NextState()
		if d.isMatchState(state) {
			last = d.matchOutcome(state, pos-1)
			if d.matchWins[state] {
				break
			}
		}
	}
	return last
}

// executeCaptures scans input[startIndex:maxIndex] left-to-right,
// recording capture boundaries through transition slot masks, and returns
// the match end plus a fresh slot array, or NoMatch.
//
// Slot recording convention: transition masks record the pre-consume
// position (a group's start is recorded by the transition consuming its
// first byte, its end by the transition consuming the byte after it);
// match-state masks record the match end position. Group 0 is maintained
// by the executor itself.
func (d *DFA) executeCaptures(input []byte, startIndex, maxIndex int, work []int) Outcome {
	n := d.numCaptures * 2
	if len(work) < n {
		work = make([]int, n)
	}
	work = work[:n]
	for i := range work {
		work[i] = -1
	}
	work[0] = startIndex

	state := d.startState(input, startIndex)
	var out []int
	end := NoMatch
	if d.isMatchState(state) {
		end, out = d.acceptCaptures(state, startIndex, work, out)
		if d.matchWins[state] {
			return Outcome{Pos: end, Slots: out}
		}
	}
	for pos := startIndex; pos < maxIndex; pos++ {
		t := d.getTransition(state, d.classes.Get(input[pos]))
		if t.IsDead() {
			break
		}
		if t.ClearsSlots() {
			for i := 2; i < len(work); i++ {
				work[i] = -1
			}
		}
		t.UpdateSlots(work, pos)
		state = t.NextState()
		if d.isMatchState(state) {
			end, out = d.acceptCaptures(state, pos+1, work, out)
			if d.matchWins[state] {
				break
			}
		}
	}
	if end == NoMatch {
		return Outcome{Pos: NoMatch}
	}
	return Outcome{Pos: end, Slots: out}
}

// acceptCaptures snapshots the working slots into the outcome buffer for
// a match ending at pos, applying the accepting state's end-slot mask.
// The snapshot keeps greedy scans correct: transitions taken after this
// match may overwrite working slots without corrupting the last accepted
// result.
func (d *DFA) acceptCaptures(state StateID, pos int, work, out []int) (int, []int) {
	if out == nil {
		out = make([]int, len(work))
	}
	copy(out, work)
	Transition(d.matchSlots[state]).UpdateSlots(out, pos)
	out[1] = pos
	return pos, out
}
