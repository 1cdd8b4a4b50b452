package meta

import (
	"sync/atomic"

	"github.com/coregx/regexec/dfa"
	"github.com/coregx/regexec/result"
)

// searchEager runs the eager capture-group automaton directly: one pass
// produces the match boundaries and every group boundary, fully resolved.
// Used once profiling shows callers request capture groups on (nearly)
// every match, making the upfront cost cheaper than lazy-then-resolve.
func (e *Engine) searchEager(captures *dfa.DFA, input []byte, fromIndex int) *result.Result {
	atomic.AddUint64(&e.stats.CaptureScans, 1)
	work := e.slots.get()
	defer e.slots.put(work)
	out := captures.ExecuteWithSlots(input, fromIndex, fromIndex, len(input), work)
	if out.Pos == dfa.NoMatch {
		return result.NoMatch
	}
	return result.NewEagerCaptureGroups(input, out.Slots, captures.NumCaptures())
}
