package dfa

// Transition encodes a DFA state transition + slot updates in 64 bits.
//
// Bit layout (from high to low):
//   - Bits 43-63 (21 bits): Next StateID (max 2M states)
//   - Bit 42 (1 bit): ClearSlots flag - reset group slots 1+ to -1 before
//     applying the slot mask. Set on transitions that restart the match
//     attempt in unanchored capture automata, so groups recorded by an
//     abandoned attempt do not leak into the next one.
//   - Bits 0-31 (32 bits): Slot update mask (one bit per slot)
//
// This encoding enables a single uint64 lookup per scanned byte with all
// metadata included. The zero Transition leads to the dead state.
type Transition uint64

const (
	stateIDBits  = 21
	stateIDShift = 64 - stateIDBits // 43
	stateIDMask  = (1 << stateIDBits) - 1

	clearSlotsShift = 42
	clearSlotsMask  = uint64(1) << clearSlotsShift

	slotMask = 0xFFFFFFFF // bits 0-31

	// DeadState represents a dead/fail state (no valid transition)
	DeadState StateID = 0

	// MaxStateID is the maximum valid state ID (21 bits)
	MaxStateID StateID = (1 << stateIDBits) - 1
)

// NewTransition creates a new transition with the given next state and
// slot mask.
func NewTransition(next StateID, slots uint32) Transition {
	return Transition(next)<<stateIDShift | Transition(slots)
}

// withClearSlots returns the transition with the ClearSlots flag set.
func (t Transition) withClearSlots() Transition {
	return t | Transition(clearSlotsMask)
}

// ClearsSlots returns true if the transition resets group slots 1+ before
// applying its slot mask.
func (t Transition) ClearsSlots() bool {
	return t&Transition(clearSlotsMask) != 0
}

// NextState extracts the next state ID from the transition.
func (t Transition) NextState() StateID {
	//nolint:gosec // G115: masked value is within StateID range (21 bits max), safe conversion
	return StateID((t >> stateIDShift) & stateIDMask)
}

// IsDead returns true if this transition leads to the dead state.
func (t Transition) IsDead() bool {
	return t.NextState() == DeadState
}

// SlotMask returns the 32-bit slot update mask.
// Each bit indicates whether to save the current position to that slot.
func (t Transition) SlotMask() uint32 {
	//nolint:gosec // G115: slotMask is 32-bit constant, safe conversion
	return uint32(t & slotMask)
}

// UpdateSlots applies the slot updates to the given slots array.
// For each bit set in the slot mask, slots[i] is set to pos.
func (t Transition) UpdateSlots(slots []int, pos int) {
	mask := t.SlotMask()
	if mask == 0 {
		return
	}
	for i := 0; i < 32 && mask != 0; i++ {
		if mask&1 != 0 {
			if i < len(slots) {
				slots[i] = pos
			}
		}
		mask >>= 1
	}
}
