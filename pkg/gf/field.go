// Package gf implements the GF(2^M) arithmetic core of a BCH codec:
// field constants, standard- and dual-basis multipliers, squaring and
// cubing units, a Fermat-method divider and the LFSR sequencer that
// paces the multi-step units. Elements are M-bit values with bit 0 as
// the least-significant coefficient of whichever basis is in effect.
package gf

import (
	"errors"
	"fmt"
	"math/bits"
)

// Element is a field element in the standard (polynomial) basis.
type Element uint32

// DualElement is a field element in the trace-dual basis. The two
// representations encode the same values differently; operations state
// which basis they expect.
type DualElement uint32

var (
	// ErrUnsupportedDegree is returned when no modulus is known for the
	// requested field degree.
	ErrUnsupportedDegree = errors.New("unsupported field degree")

	// ErrPentanomial is returned when a dual-basis unit is constructed
	// over a pentanomial modulus; the basis conversion behind those
	// units is defined for trinomial moduli only.
	ErrPentanomial = errors.New("dual basis requires a trinomial modulus")

	// ErrNotStarted is returned when a sequenced unit is stepped or read
	// without a preceding start.
	ErrNotStarted = errors.New("unit not started")

	// ErrBusy is returned when a sequenced unit's output is read before
	// its busy flag has cleared.
	ErrBusy = errors.New("unit still busy")

	// ErrZeroDivisor is returned when inversion of zero is requested.
	ErrZeroDivisor = errors.New("zero has no multiplicative inverse")
)

// moduli maps the field degree M to its irreducible modulus polynomial,
// x^M included. All entries are primitive, so x generates the whole
// multiplicative group.
var moduli = map[int]uint32{
	2:  0x7,     // x^2 + x + 1
	3:  0xB,     // x^3 + x + 1
	4:  0x13,    // x^4 + x + 1
	5:  0x25,    // x^5 + x^2 + 1
	6:  0x43,    // x^6 + x + 1
	7:  0x89,    // x^7 + x^3 + 1
	8:  0x11D,   // x^8 + x^4 + x^3 + x^2 + 1
	9:  0x211,   // x^9 + x^4 + 1
	10: 0x409,   // x^10 + x^3 + 1
	11: 0x805,   // x^11 + x^2 + 1
	12: 0x1053,  // x^12 + x^6 + x^4 + x + 1
	13: 0x201B,  // x^13 + x^4 + x^3 + x + 1
	14: 0x4443,  // x^14 + x^10 + x^6 + x + 1
	15: 0x8003,  // x^15 + x + 1
	16: 0x1100B, // x^16 + x^12 + x^3 + x + 1
}

// Field holds the constants for one GF(2^M) instance. Every per-degree
// table (alpha powers, logs, squaring/cubing terms, basis conversion)
// is built once here and shared by the operation units.
type Field struct {
	m           int
	poly        uint32 // modulus, x^M term included
	polyLow     uint32 // modulus with the x^M term stripped
	mask        uint32 // 2^M - 1
	order       int    // multiplicative order, 2^M - 1
	pentanomial bool

	alphaPow []Element // alphaPow[i] = alpha^i
	logTable []int     // logTable[e] = i with alpha^i = e; e > 0

	sqTerm    []Element   // sqTerm[i] = alpha^(2i)
	cubeDiag  []Element   // cubeDiag[i] = alpha^(3i)
	cubeCross [][]Element // cubeCross[i][j] = alpha^(2i+j) ^ alpha^(2j+i), i < j

	// Dual-basis conversion, trinomial moduli only (nil otherwise).
	traceSeq uint32   // bit j = Tr(alpha^j), j < 2M-1
	toDual   []uint32 // row k: standard->dual inner-product mask
	fromDual []uint32 // row k: dual->standard inner-product mask
}

// New constructs the field GF(2^M) for a supported degree M. The
// modulus, the power table of the primitive root and, for trinomial
// moduli, the standard/dual conversion tables are all derived here;
// nothing is recomputed per operation.
func New(m int) (*Field, error) {
	poly, ok := moduli[m]
	if !ok {
		return nil, fmt.Errorf("GF(2^%d): %w", m, ErrUnsupportedDegree)
	}

	f := &Field{
		m:           m,
		poly:        poly,
		polyLow:     poly &^ (1 << uint(m)),
		mask:        1<<uint(m) - 1,
		order:       1<<uint(m) - 1,
		pentanomial: bits.OnesCount32(poly) == 5,
	}

	if err := f.buildPowerTables(); err != nil {
		return nil, err
	}
	f.buildSquareTerms()
	f.buildCubeTerms()
	if !f.pentanomial {
		f.buildDualTables()
	}

	return f, nil
}

// buildPowerTables fills the alpha power and log tables by repeated
// multiplication by the root, checked against the table's claim that
// the modulus is primitive.
func (f *Field) buildPowerTables() error {
	f.alphaPow = make([]Element, f.order)
	f.logTable = make([]int, f.mask+1)

	x := Element(1)
	for i := 0; i < f.order; i++ {
		if x == 1 && i != 0 {
			return fmt.Errorf("GF(2^%d): modulus %#x is not primitive", f.m, f.poly)
		}
		f.alphaPow[i] = x
		f.logTable[x] = i
		x = f.mulByRoot(x)
	}
	if x != 1 {
		return fmt.Errorf("GF(2^%d): power table did not close", f.m)
	}
	return nil
}

// mulByRoot multiplies by alpha: shift left one, reduce by the modulus
// when the shifted-out coefficient is set.
func (f *Field) mulByRoot(a Element) Element {
	v := uint32(a) << 1
	if v&(1<<uint(f.m)) != 0 {
		v ^= f.poly
	}
	return Element(v)
}

// M returns the field degree.
func (f *Field) M() int { return f.m }

// Modulus returns the defining polynomial, x^M term included.
func (f *Field) Modulus() uint32 { return f.poly }

// Order returns the multiplicative order 2^M - 1.
func (f *Field) Order() int { return f.order }

// Pentanomial reports whether the modulus has five nonzero terms.
// Pentanomial fields cannot construct dual-basis units.
func (f *Field) Pentanomial() bool { return f.pentanomial }

// AlphaPower returns alpha^i, the i-th power of the primitive root,
// with i taken modulo the multiplicative order.
func (f *Field) AlphaPower(i int) Element {
	i %= f.order
	if i < 0 {
		i += f.order
	}
	return f.alphaPow[i]
}

// Log returns the discrete logarithm of a to base alpha. The logarithm
// of zero is undefined; zero is reported for it, matching the power
// table convention for callers that mask zero out themselves.
func (f *Field) Log(a Element) int {
	return f.logTable[uint32(a)&f.mask]
}

// parity is the GF(2) inner product of two bit vectors.
func parity(v uint32) uint32 {
	return uint32(bits.OnesCount32(v)) & 1
}
