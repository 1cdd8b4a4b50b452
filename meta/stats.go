package meta

import "sync/atomic"

// Stats tracks execution statistics for performance analysis.
//
// Counters are updated with atomic adds; Stats() returns a snapshot.
type Stats struct {
	// ForwardScans counts forward automaton executions
	ForwardScans uint64

	// BackwardScans counts backward automaton executions (lazy start
	// resolution, anchored-backward searches, trace-finder discriminators)
	BackwardScans uint64

	// CaptureScans counts capture-group automaton executions (lazy group
	// resolution and eager searches)
	CaptureScans uint64

	// PrefilterHits counts literal prefilter queries that produced a
	// candidate position
	PrefilterHits uint64

	// PrefilterMisses counts literal prefilter queries that proved no
	// match exists
	PrefilterMisses uint64

	// EagerSwitches counts Lazy -> Eager strategy transitions (0 or 1)
	EagerSwitches uint64
}

// Stats returns a snapshot of the execution statistics.
//
// Example:
//
//	stats := engine.Stats()
//	println("forward scans:", stats.ForwardScans)
func (e *Engine) Stats() Stats {
	return Stats{
		ForwardScans:    atomic.LoadUint64(&e.stats.ForwardScans),
		BackwardScans:   atomic.LoadUint64(&e.stats.BackwardScans),
		CaptureScans:    atomic.LoadUint64(&e.stats.CaptureScans),
		PrefilterHits:   atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterMisses: atomic.LoadUint64(&e.stats.PrefilterMisses),
		EagerSwitches:   atomic.LoadUint64(&e.stats.EagerSwitches),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.ForwardScans, 0)
	atomic.StoreUint64(&e.stats.BackwardScans, 0)
	atomic.StoreUint64(&e.stats.CaptureScans, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
	atomic.StoreUint64(&e.stats.EagerSwitches, 0)
}
