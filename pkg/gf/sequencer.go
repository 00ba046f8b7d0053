package gf

import "fmt"

// Sequencer is a maximal-length LFSR used as a step counter: it walks
// every nonzero value of its width exactly once per period, so "n steps
// elapsed" is detected by comparing against the precomputed value at
// step n instead of keeping a binary counter. The feedback polynomial
// comes from the same modulus table as the fields, but the width is the
// sequencer's own; it is a small GF instance of its own, not tied to
// the M-bit field it paces.
type Sequencer struct {
	width int
	poly  uint32
	mask  uint32
	state uint32
}

// sequencer seed; Reset always returns here.
const seqSeed = 1

// NewSequencer returns a sequencer of the given register width, seeded
// and ready to step. Widths without a known modulus are a configuration
// error.
func NewSequencer(width int) (*Sequencer, error) {
	poly, ok := moduli[width]
	if !ok {
		return nil, fmt.Errorf("sequencer width %d: %w", width, ErrUnsupportedDegree)
	}
	return &Sequencer{
		width: width,
		poly:  poly,
		mask:  1<<uint(width) - 1,
		state: seqSeed,
	}, nil
}

// sequencerWidth picks the smallest supported register width whose
// period 2^w - 1 covers steps distinct values.
func sequencerWidth(steps int) int {
	w := 2
	for 1<<uint(w)-1 < steps {
		w++
	}
	return w
}

// Reset forces the register back to the seed, regardless of prior
// state.
func (s *Sequencer) Reset() {
	s.state = seqSeed
}

// Step applies one linear-feedback update (shift left, XOR the modulus
// when the shifted-out bit was set) and returns the new value. The
// register never reaches zero, so the period is 2^width - 1.
func (s *Sequencer) Step() uint32 {
	s.state <<= 1
	if s.state&(1<<uint(s.width)) != 0 {
		s.state ^= s.poly
	}
	return s.state
}

// Value returns the current register value without stepping.
func (s *Sequencer) Value() uint32 {
	return s.state
}

// ValueAfter returns the register value n steps after a reset, without
// disturbing the live state. Callers comparing against a step index
// must use this, not the raw count.
func (s *Sequencer) ValueAfter(n int) uint32 {
	v := uint32(seqSeed)
	for i := 0; i < n; i++ {
		v <<= 1
		if v&(1<<uint(s.width)) != 0 {
			v ^= s.poly
		}
	}
	return v
}

// Width returns the register width.
func (s *Sequencer) Width() int {
	return s.width
}
