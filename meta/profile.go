package meta

import "sync/atomic"

// Profile is the per-engine adaptive counter pair gating the one-shot
// Lazy -> Eager strategy switch.
//
// Counters are updated with atomic adds but carry no further
// synchronization: exactness is not required, only approximate trend
// detection. Lost updates under concurrent increment merely delay or
// advance the switch by a few calls, which is harmless.
//
// Profiles live for the lifetime of the engine and are never persisted.
type Profile struct {
	// calls and matches MUST stay 8-byte aligned for 32-bit platforms;
	// keep them first and uint64.
	calls   uint64
	matches uint64
}

// incCalls increments the call counter and returns the new value.
func (p *Profile) incCalls() uint64 {
	return atomic.AddUint64(&p.calls, 1)
}

// incMatches increments the match counter.
func (p *Profile) incMatches() {
	atomic.AddUint64(&p.matches, 1)
}

// Calls returns the number of searches observed.
func (p *Profile) Calls() uint64 {
	return atomic.LoadUint64(&p.calls)
}

// Matches returns the number of searches that found a match.
func (p *Profile) Matches() uint64 {
	return atomic.LoadUint64(&p.matches)
}

// MatchRatio returns matches/calls, or 0 before the first call.
func (p *Profile) MatchRatio() float64 {
	calls := p.Calls()
	if calls == 0 {
		return 0
	}
	return float64(p.Matches()) / float64(calls)
}

// shouldUseEagerMatching is the switch heuristic: enough call volume and
// a high enough match ratio mean callers are paying the lazy-then-resolve
// cost on nearly every search, so eager matching is the cheaper mode.
// Thresholds are configuration, not constants; see Config.
func (p *Profile) shouldUseEagerMatching(config Config) bool {
	if p.Calls() < config.EagerMinCalls {
		return false
	}
	return p.MatchRatio() >= config.EagerMatchRatio
}
