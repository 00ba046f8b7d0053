package gf

// Mul multiplies two standard-basis elements combinationally. The
// shared operand walks the multiply-by-root chain while the second
// operand selects which staged values fold into the product.
func (f *Field) Mul(a, b Element) Element {
	block := Element(uint32(a) & f.mask)
	bv := uint32(b) & f.mask
	var r Element
	for ; bv != 0; bv >>= 1 {
		if bv&1 != 0 {
			r ^= block
		}
		block = f.mulByRoot(block)
	}
	return r
}

// MulMany multiplies one shared standard-basis operand a against every
// operand in bs, reusing a single multiply-by-root block chain:
// blocks[0] holds a, blocks[i] holds blocks[i-1] times the root. Each
// lane then folds the blocks its own operand selects. Cost grows with
// M^2 terms but there is no step latency.
func (f *Field) MulMany(a Element, bs []Element) []Element {
	blocks := make([]Element, f.m)
	blocks[0] = Element(uint32(a) & f.mask)
	for i := 1; i < f.m; i++ {
		blocks[i] = f.mulByRoot(blocks[i-1])
	}

	out := make([]Element, len(bs))
	for j, b := range bs {
		bv := uint32(b) & f.mask
		var r Element
		for k := 0; k < f.m; k++ {
			if bv>>uint(k)&1 != 0 {
				r ^= blocks[k]
			}
		}
		out[j] = r
	}
	return out
}

// SerialMultiplier is the MSB-first multiply-accumulate final stage: it
// consumes one pre-masked summand per step over M steps. The caller
// selects the operand bits (highest first) and passes either the shared
// operand or zero; the unit itself never inspects the second operand.
type SerialMultiplier struct {
	f       *Field
	acc     Element
	started bool
}

// NewSerialMultiplier returns an idle serial multiplier for f.
func NewSerialMultiplier(f *Field) *SerialMultiplier {
	return &SerialMultiplier{f: f}
}

// Start loads the accumulator with the first masked summand (the
// shared operand when the top bit of the second operand is set, zero
// otherwise), discarding any in-flight state.
func (s *SerialMultiplier) Start(masked Element) {
	s.acc = Element(uint32(masked) & s.f.mask)
	s.started = true
}

// Step advances one multiply-accumulate stage: shift the accumulator
// toward the root, reduce by the modulus when the shifted-out
// coefficient is set, and XOR in this step's masked summand. When run
// is false the accumulator holds. The enable looks redundant with
// masked==0 but is part of the unit's contract.
func (s *SerialMultiplier) Step(masked Element, run bool) error {
	if !s.started {
		return ErrNotStarted
	}
	if !run {
		return nil
	}
	s.acc = s.f.mulByRoot(s.acc) ^ Element(uint32(masked)&s.f.mask)
	return nil
}

// Acc returns the current accumulator. After Start plus M-1 running
// steps it holds the full product.
func (s *SerialMultiplier) Acc() (Element, error) {
	if !s.started {
		return 0, ErrNotStarted
	}
	return s.acc, nil
}

// Reset returns the multiplier to idle.
func (s *SerialMultiplier) Reset() {
	s.acc = 0
	s.started = false
}

// MulSerial drives a SerialMultiplier through a complete M-step
// multiply of a by b, MSB of b first. It exists for callers that want
// the serial datapath without owning the step loop.
func (f *Field) MulSerial(a, b Element) Element {
	s := NewSerialMultiplier(f)
	masked := func(k int) Element {
		if uint32(b)>>uint(k)&1 != 0 {
			return a
		}
		return 0
	}
	s.Start(masked(f.m - 1))
	for k := f.m - 2; k >= 0; k-- {
		s.Step(masked(k), true)
	}
	out, _ := s.Acc()
	return out
}
