package dfa

// ByteClasses maps each byte value to its equivalence class.
//
// ByteClasses is an alphabet reduction technique: two bytes belong to the
// same class if no transition in the automaton distinguishes them, so a
// state row needs one entry per class (typically 4-64) instead of 256.
type ByteClasses struct {
	// classes maps each byte (0-255) to its equivalence class
	classes [256]byte
}

// Get returns the equivalence class for the given byte.
// This is an O(1) lookup.
func (bc *ByteClasses) Get(b byte) byte {
	return bc.classes[b]
}

// AlphabetLen returns the total number of equivalence classes.
func (bc *ByteClasses) AlphabetLen() int {
	maxClass := byte(0)
	for _, c := range bc.classes {
		if c > maxClass {
			maxClass = c
		}
	}
	return int(maxClass) + 1
}

// byteClassSet tracks byte boundaries while the Builder collects
// transitions.
//
// For each byte range [lo, hi] with a distinct transition, lo-1 and hi are
// boundary bytes. Classes are assigned by walking all 256 bytes and
// incrementing the class number after each boundary.
type byteClassSet struct {
	// bits is a 256-bit bitset where bit i is set if byte i is a class boundary
	bits [4]uint64
}

// setRange marks a byte range [lo, hi] as having distinct transitions.
func (bcs *byteClassSet) setRange(lo, hi byte) {
	if lo > 0 {
		bcs.setBit(lo - 1)
	}
	bcs.setBit(hi)
}

func (bcs *byteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *byteClassSet) getBit(b byte) bool {
	return (bcs.bits[b/64] & (1 << (b % 64))) != 0
}

// byteClasses converts the boundary set into a ByteClasses lookup table.
func (bcs *byteClassSet) byteClasses() ByteClasses {
	var bc ByteClasses
	class := byte(0)

	for b := 0; b < 256; b++ {
		bc.classes[b] = class
		if bcs.getBit(byte(b)) && b < 255 {
			class++
		}
	}

	return bc
}
