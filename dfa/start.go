package dfa

// StartKind represents the look-behind context for start state selection.
//
// Different start states are needed to correctly handle assertions like
// ^ (beginning of line/text), (?m) multiline mode and \b word boundaries:
// the byte adjacent to the scan entry point determines which assertions
// hold there. For forward automata the context byte is the one just before
// startIndex; for backward automata it is the one just after (the byte at
// the known match end).
type StartKind uint8

const (
	// StartNonWord - adjacent byte was a non-word character (not [a-zA-Z0-9_])
	StartNonWord StartKind = iota

	// StartWord - adjacent byte was a word character [a-zA-Z0-9_]
	StartWord

	// StartText - scan enters at the very edge of the input (index 0 for
	// forward automata, index len(input) for backward automata)
	StartText

	// StartLineLF - adjacent byte was \n (for ^ and $ in multiline mode)
	StartLineLF

	// StartLineCR - adjacent byte was \r (for CRLF handling)
	StartLineCR

	// startKindCount is the number of start kinds (not exported)
	startKindCount
)

// String returns a human-readable representation of the StartKind
func (k StartKind) String() string {
	switch k {
	case StartNonWord:
		return "NonWord"
	case StartWord:
		return "Word"
	case StartText:
		return "Text"
	case StartLineLF:
		return "LineLF"
	case StartLineCR:
		return "LineCR"
	default:
		return "Unknown"
	}
}

// StartTable holds the start state for each look-behind context, plus an
// O(1) byte -> StartKind map for the context byte.
type StartTable struct {
	states  [startKindCount]StateID
	byteMap [256]StartKind
}

// initByteMap fills the byte -> StartKind lookup table.
func (st *StartTable) initByteMap() {
	for b := 0; b < 256; b++ {
		switch {
		case b == '\n':
			st.byteMap[b] = StartLineLF
		case b == '\r':
			st.byteMap[b] = StartLineCR
		case isWordByte(byte(b)):
			st.byteMap[b] = StartWord
		default:
			st.byteMap[b] = StartNonWord
		}
	}
}

// startState selects the start state for a scan entering at startIndex,
// keyed by the context byte adjacent to the entry point.
func (d *DFA) startState(input []byte, startIndex int) StateID {
	var kind StartKind
	if d.reverse {
		if startIndex+1 >= len(input) {
			kind = StartText
		} else {
			kind = d.starts.byteMap[input[startIndex+1]]
		}
	} else {
		if startIndex == 0 {
			kind = StartText
		} else {
			kind = d.starts.byteMap[input[startIndex-1]]
		}
	}
	return d.starts.states[kind]
}

// isWordByte returns true for [a-zA-Z0-9_].
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}
