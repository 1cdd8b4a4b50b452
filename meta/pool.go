package meta

import (
	"sync"

	"github.com/coregx/regexec/dfa"
)

// slotPool provides thread-safe reuse of capture-slot working buffers.
// Each capture scan needs a scratch array for in-flight slot updates;
// pooling it keeps concurrent searches on one engine allocation-free on
// that path, following the stdlib regexp pattern of pooling per-search
// mutable state.
//
// Buffers are sized for the maximum group count so one pool serves both
// the lazy capture automaton and a later eager automaton.
type slotPool struct {
	pool sync.Pool
}

func newSlotPool() *slotPool {
	p := &slotPool{}
	p.pool = sync.Pool{
		New: func() any {
			buf := make([]int, 2*dfa.MaxCaptureGroups)
			return &buf
		},
	}
	return p
}

// get retrieves a working buffer from the pool.
// Caller must call put when done.
func (p *slotPool) get() []int {
	return *p.pool.Get().(*[]int)
}

// put returns a working buffer to the pool for reuse.
func (p *slotPool) put(buf []int) {
	p.pool.Put(&buf)
}
