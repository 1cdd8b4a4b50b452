package meta

import "fmt"

// Error types for engine construction and the search entry point.
//
// NoMatch is never an error: it is a first-class successful outcome
// (result.NoMatch). Errors here are contract violations - a malformed
// compiler handoff or an out-of-range fromIndex - which fail fast and are
// never retried.

// ErrorKind classifies engine errors into categories
type ErrorKind uint8

const (
	// FromIndexOutOfRange indicates a caller-supplied fromIndex outside
	// [0, len(input)]
	FromIndexOutOfRange ErrorKind = iota

	// MissingForwardAutomaton indicates a handoff without the required
	// forward automaton
	MissingForwardAutomaton

	// AutomatonMismatch indicates handoff components that contradict each
	// other (wrong scan direction, inconsistent group counts, missing
	// discriminator automaton)
	AutomatonMismatch

	// InvalidConfig indicates configuration validation failed
	InvalidConfig

	// PrefilterBuild indicates the literal prefilter could not be built
	PrefilterBuild
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case FromIndexOutOfRange:
		return "FromIndexOutOfRange"
	case MissingForwardAutomaton:
		return "MissingForwardAutomaton"
	case AutomatonMismatch:
		return "AutomatonMismatch"
	case InvalidConfig:
		return "InvalidConfig"
	case PrefilterBuild:
		return "PrefilterBuild"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// EngineError represents a contract violation detected by the engine
type EngineError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *EngineError) Error() string {
	return e.Message
}

// Is implements error comparison for errors.Is
func (e *EngineError) Is(target error) bool {
	t, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// engineErrorf constructs an EngineError with a formatted message.
func engineErrorf(kind ErrorKind, format string, args ...any) *EngineError {
	return &EngineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
