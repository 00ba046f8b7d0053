package gf

import "fmt"

// SerialMixedMultiplier multiplies one shared dual-basis operand
// against up to N standard-basis lanes, one output bit per lane per
// step, over M steps. The single M-bit register holds a sliding window
// of the dual operand's trace extension; advancing it one step is
// exactly multiplication of the dual operand by the root, with the
// field's own modulus as the feedback polynomial (unlike the Sequencer,
// whose polynomial is an arbitrary counter modulus).
type SerialMixedMultiplier struct {
	f     *Field
	lanes []Element
	reg   uint32
	step  int
	outs  []DualElement
	live  bool
}

// NewSerialMixedMultiplier returns an idle multiplier with capacity for
// lanes parallel standard-basis operands. Dual-basis unit: pentanomial
// moduli are rejected here, before any step can run.
func NewSerialMixedMultiplier(f *Field, lanes int) (*SerialMixedMultiplier, error) {
	if f.pentanomial {
		return nil, fmt.Errorf("GF(2^%d) serial mixed multiplier: %w", f.m, ErrPentanomial)
	}
	if lanes < 1 {
		return nil, fmt.Errorf("serial mixed multiplier: need at least one lane, got %d", lanes)
	}
	return &SerialMixedMultiplier{
		f:     f,
		lanes: make([]Element, lanes),
		outs:  make([]DualElement, lanes),
	}, nil
}

// Start loads the dual operand into the window register and latches
// the standard-basis lane operands. Must be called exactly once per
// multiply; the previous result is discarded.
func (s *SerialMixedMultiplier) Start(d DualElement, operands []Element) error {
	if len(operands) != len(s.lanes) {
		return fmt.Errorf("serial mixed multiplier: got %d operands for %d lanes", len(operands), len(s.lanes))
	}
	for i, op := range operands {
		s.lanes[i] = Element(uint32(op) & s.f.mask)
	}
	s.reg = uint32(d) & s.f.mask
	s.step = 0
	for i := range s.outs {
		s.outs[i] = 0
	}
	s.live = true
	return nil
}

// Step emits output bit number step (dual coordinate step) for every
// lane as the inner product of the lane operand with the window
// register, then advances the window by the modulus recurrence.
// Stepping without a start, or past the M-th bit, is reported rather
// than returning stale bits.
func (s *SerialMixedMultiplier) Step() ([]uint32, error) {
	if !s.live {
		return nil, ErrNotStarted
	}

	bits := make([]uint32, len(s.lanes))
	for i, op := range s.lanes {
		b := parity(s.reg & uint32(op))
		bits[i] = b
		s.outs[i] |= DualElement(b << uint(s.step))
	}

	top := parity(s.reg & s.f.polyLow)
	s.reg = s.reg>>1 | top<<uint(s.f.m-1)

	s.step++
	if s.step == s.f.m {
		s.live = false
	}
	return bits, nil
}

// Busy reports whether output bits remain to be produced.
func (s *SerialMixedMultiplier) Busy() bool {
	return s.live
}

// Outputs returns the accumulated dual-basis product for every lane,
// valid once all M steps have run.
func (s *SerialMixedMultiplier) Outputs() ([]DualElement, error) {
	if s.live {
		return nil, ErrBusy
	}
	if s.step != s.f.m {
		return nil, ErrNotStarted
	}
	out := make([]DualElement, len(s.outs))
	copy(out, s.outs)
	return out, nil
}
