package gf

import "fmt"

// Divider computes numerator * denominator^-1 by Fermat's method:
// the inverse is the product of the denominator's successive squares,
// a^-1 = a^2 * a^4 * ... * a^(2^(M-1)). It composes the squarer, the
// parallel mixed multiplier and a Sequencer that paces the M-1 folding
// steps. The contract is two-phase: Start plus Step until Busy clears
// computes the inverse, then Apply folds the numerator in as the final
// multiplicand. No numerator is consumed while busy.
type Divider struct {
	f      *Field
	seq    *Sequencer
	target uint32 // sequencer value at M-2 elapsed steps

	pow  Element // squaring chain, denominator^(2^k)
	acc  DualElement
	busy bool
	done bool // busy was high and has dropped
}

// NewDivider builds a divider over f. The inverter's basis-conversion
// step is defined only for trinomial moduli, so pentanomial fields are
// a configuration error here, before any step executes. The sequencer
// and its completion target are derived once.
func NewDivider(f *Field) (*Divider, error) {
	if f.pentanomial {
		return nil, fmt.Errorf("GF(2^%d) divider: %w", f.m, ErrPentanomial)
	}
	seq, err := NewSequencer(sequencerWidth(f.m - 1))
	if err != nil {
		return nil, fmt.Errorf("GF(2^%d) divider: %w", f.m, err)
	}
	return &Divider{
		f:      f,
		seq:    seq,
		target: seq.ValueAfter(f.m - 2),
	}, nil
}

// Start loads the denominator into the squaring chain, resets the dual
// accumulator to the identity's dual representation and raises busy.
// Zero has no inverse and is rejected up front.
func (d *Divider) Start(den Element) error {
	den &= Element(d.f.mask)
	if den == 0 {
		return ErrZeroDivisor
	}
	d.pow = den
	d.acc = d.f.DualOne()
	d.seq.Reset()
	d.busy = true
	d.done = false
	return nil
}

// Step folds one power-of-two term: square the chain to the next power
// and multiply it into the running dual accumulator. Busy deasserts on
// the step where the sequencer has reached the M-2-steps-elapsed
// target, which makes exactly M-1 folds in total.
func (d *Divider) Step() error {
	if !d.busy {
		return ErrNotStarted
	}

	d.pow = d.f.Square(d.pow)
	d.acc = d.f.MixedMul(d.acc, d.pow)

	if d.seq.Value() == d.target {
		d.busy = false
		d.done = true
	} else {
		d.seq.Step()
	}
	return nil
}

// Busy reports whether folding steps remain; outputs are not valid
// while busy.
func (d *Divider) Busy() bool { return d.busy }

// Done reports that a started division has run to completion.
func (d *Divider) Done() bool { return d.done }

// Reset aborts any in-flight computation and returns to idle. Partial
// results are discarded.
func (d *Divider) Reset() {
	d.pow = 0
	d.acc = 0
	d.busy = false
	d.done = false
	d.seq.Reset()
}

// InverseDual returns the computed inverse in the dual basis.
func (d *Divider) InverseDual() (DualElement, error) {
	if d.busy {
		return 0, ErrBusy
	}
	if !d.done {
		return 0, ErrNotStarted
	}
	return d.acc, nil
}

// Inverse returns the computed inverse converted to the standard basis.
func (d *Divider) Inverse() (Element, error) {
	acc, err := d.InverseDual()
	if err != nil {
		return 0, err
	}
	return d.f.DualToStandard(acc), nil
}

// Apply performs the post-completion multiply by the numerator,
// returning numerator * denominator^-1 in the standard basis.
func (d *Divider) Apply(num Element) (Element, error) {
	acc, err := d.InverseDual()
	if err != nil {
		return 0, err
	}
	return d.f.DualToStandard(d.f.MixedMul(acc, num)), nil
}

// Inverse runs a divider to completion and returns a^-1. Convenience
// over the step surface; trinomial moduli only.
func (f *Field) Inverse(a Element) (Element, error) {
	div, err := NewDivider(f)
	if err != nil {
		return 0, err
	}
	if err := div.Start(a); err != nil {
		return 0, err
	}
	for div.Busy() {
		if err := div.Step(); err != nil {
			return 0, err
		}
	}
	return div.Inverse()
}

// Div returns num * den^-1. Convenience over the step surface;
// trinomial moduli only.
func (f *Field) Div(num, den Element) (Element, error) {
	div, err := NewDivider(f)
	if err != nil {
		return 0, err
	}
	if err := div.Start(den); err != nil {
		return 0, err
	}
	for div.Busy() {
		if err := div.Step(); err != nil {
			return 0, err
		}
	}
	return div.Apply(num)
}
