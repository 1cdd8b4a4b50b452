package result

import "fmt"

// PreCalc is a precalculated result factory.
//
// For some patterns the compiler can prove that only a small fixed set of
// distinct group layouts is possible regardless of scan content (e.g.
// fixed alternations). Each PreCalc holds one such layout as offsets
// relative to the match start, plus the overall match length; anchoring
// it to a known start or end boundary yields a complete result in O(1)
// with no capture-group scan.
//
// A PreCalc is immutable after construction and safe for concurrent use.
type PreCalc struct {
	// slots holds group offsets relative to the match start, as
	// (start, end) pairs; -1 means the group did not participate
	slots []int

	// length is the overall match length (slots[1])
	length int
}

// NewPreCalc creates a factory from a slot template relative to the match
// start. slots must be even-length with slots[0] == 0; slots[1] is the
// overall match length.
func NewPreCalc(slots []int) (*PreCalc, error) {
	if len(slots) == 0 || len(slots)%2 != 0 {
		return nil, fmt.Errorf("precalculated slots must be a non-empty even-length sequence, got %d entries", len(slots))
	}
	if slots[0] != 0 || slots[1] < 0 {
		return nil, fmt.Errorf("precalculated group 0 must be (0, length), got (%d, %d)", slots[0], slots[1])
	}
	p := &PreCalc{
		slots:  make([]int, len(slots)),
		length: slots[1],
	}
	copy(p.slots, slots)
	for i := 2; i < len(slots); i += 2 {
		s, e := slots[i], slots[i+1]
		if s == -1 && e == -1 {
			continue
		}
		if s < 0 || e < s || e > p.length {
			return nil, fmt.Errorf("precalculated group %d has offsets (%d, %d) outside match length %d", i/2, s, e, p.length)
		}
	}
	return p, nil
}

// MustPreCalc is NewPreCalc that panics on error, for compiler-generated
// tables known to be well formed.
func MustPreCalc(slots []int) *PreCalc {
	p, err := NewPreCalc(slots)
	if err != nil {
		panic(err)
	}
	return p
}

// NumGroups returns the number of capture groups in the layout,
// including group 0.
func (p *PreCalc) NumGroups() int {
	return len(p.slots) / 2
}

// Length returns the overall match length.
func (p *PreCalc) Length() int {
	return p.length
}

// FromStart materializes a result anchored at a known match start.
func (p *PreCalc) FromStart(input []byte, start int) *Result {
	r := &Result{
		kind:      KindLazyCaptureGroups,
		input:     input,
		numGroups: p.NumGroups(),
	}
	p.fill(r, start)
	return r
}

// FromEnd materializes a result anchored at a known match end.
func (p *PreCalc) FromEnd(input []byte, end int) *Result {
	return p.FromStart(input, end-p.length)
}

// fillFromEnd copies the layout into an existing result (trace-finder
// resolution), anchored at the known end.
func (p *PreCalc) fillFromEnd(r *Result, end int) {
	p.fill(r, end-p.length)
}

// fill resolves r's start and groups from the template shifted to start.
func (p *PreCalc) fill(r *Result, start int) {
	slots := make([]int, len(p.slots))
	for i, v := range p.slots {
		if v == -1 {
			slots[i] = -1
		} else {
			slots[i] = v + start
		}
	}
	r.start = start
	r.end = start + p.length
	r.groups = slots
}
