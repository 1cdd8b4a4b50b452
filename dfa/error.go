package dfa

import "fmt"

// Error types for DFA construction.
//
// Execution never fails: a scan either completes with an Outcome or
// reports NoMatch. Only the Builder, which validates the compiler
// handoff, can produce errors.

// ErrorKind classifies builder errors into categories
type ErrorKind uint8

const (
	// InvalidState indicates a transition or mark referenced a state that
	// was never added
	InvalidState ErrorKind = iota

	// ConflictingTransition indicates two transitions from the same state
	// overlap on a byte but disagree on target or slots
	ConflictingTransition

	// TooManyStates indicates the state count exceeded MaxStateID
	TooManyStates

	// TooManyCaptures indicates more than MaxCaptureGroups capture groups
	TooManyCaptures

	// MissingStart indicates Build was called before any start state was set
	MissingStart

	// InvalidRange indicates a byte range with lo > hi
	InvalidRange
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case InvalidState:
		return "InvalidState"
	case ConflictingTransition:
		return "ConflictingTransition"
	case TooManyStates:
		return "TooManyStates"
	case TooManyCaptures:
		return "TooManyCaptures"
	case MissingStart:
		return "MissingStart"
	case InvalidRange:
		return "InvalidRange"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// BuildError represents an error detected while assembling a DFA from
// compiler output
type BuildError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *BuildError) Error() string {
	return e.Message
}

// Is implements error comparison for errors.Is
func (e *BuildError) Is(target error) bool {
	t, ok := target.(*BuildError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// buildErrorf constructs a BuildError with a formatted message.
func buildErrorf(kind ErrorKind, format string, args ...any) *BuildError {
	return &BuildError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
