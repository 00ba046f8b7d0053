package gf

import "fmt"

// Dual-basis support. Coordinate k of an element b in the dual basis is
// Tr(alpha^k * b), so the standard-to-dual conversion rows are windows
// of the trace sequence Tr(alpha^j), and extending those windows past
// j = M-1 follows the modulus-polynomial recurrence the mixed
// multipliers rely on. The conversion is built for trinomial moduli
// only; pentanomial fields reject dual-basis units at construction.

// trace returns Tr(y) = y + y^2 + y^4 + ... + y^(2^(M-1)), which is
// always 0 or 1.
func (f *Field) trace(y Element) uint32 {
	s := y
	t := y
	for k := 1; k < f.m; k++ {
		s = f.Square(s)
		t ^= s
	}
	return uint32(t) & 1
}

// buildDualTables derives the trace sequence, the standard-to-dual
// conversion rows and, by GF(2) elimination, the dual-to-standard
// inverse rows.
func (f *Field) buildDualTables() {
	for j := 0; j < 2*f.m-1; j++ {
		f.traceSeq |= f.trace(f.AlphaPower(j)) << uint(j)
	}

	f.toDual = make([]uint32, f.m)
	for k := 0; k < f.m; k++ {
		f.toDual[k] = (f.traceSeq >> uint(k)) & f.mask
	}

	f.fromDual = invertBitMatrix(f.toDual, f.m)
}

// invertBitMatrix inverts an m x m matrix over GF(2) by Gauss-Jordan
// elimination. Row k is an m-bit mask over the input coordinates. The
// conversion matrix is a change of basis and therefore always
// invertible; a singular input is a construction bug.
func invertBitMatrix(rows []uint32, m int) []uint32 {
	a := make([]uint32, m)
	inv := make([]uint32, m)
	for i := 0; i < m; i++ {
		a[i] = rows[i]
		inv[i] = 1 << uint(i)
	}

	for col := 0; col < m; col++ {
		pivot := -1
		for r := col; r < m; r++ {
			if a[r]&(1<<uint(col)) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			panic(fmt.Sprintf("gf: singular %dx%d conversion matrix", m, m))
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]
		for r := 0; r < m; r++ {
			if r != col && a[r]&(1<<uint(col)) != 0 {
				a[r] ^= a[col]
				inv[r] ^= inv[col]
			}
		}
	}
	return inv
}

// dualReady panics when the field cannot host dual-basis values. The
// combinational conversions treat this as a contract violation; the
// sequenced units surface it as ErrPentanomial from their constructors
// before any step runs.
func (f *Field) dualReady() {
	if f.toDual == nil {
		panic("gf: " + ErrPentanomial.Error())
	}
}

// StandardToDual converts a standard-basis element to the dual basis.
// Trinomial moduli only.
func (f *Field) StandardToDual(a Element) DualElement {
	f.dualReady()
	v := uint32(a) & f.mask
	var d uint32
	for k := 0; k < f.m; k++ {
		d |= parity(v&f.toDual[k]) << uint(k)
	}
	return DualElement(d)
}

// DualToStandard converts a dual-basis element back to the standard
// basis; it is the exact inverse of StandardToDual.
func (f *Field) DualToStandard(d DualElement) Element {
	f.dualReady()
	v := uint32(d) & f.mask
	var a uint32
	for k := 0; k < f.m; k++ {
		a |= parity(v&f.fromDual[k]) << uint(k)
	}
	return Element(a)
}

// DualOne returns the dual-basis representation of the multiplicative
// identity alpha^0.
func (f *Field) DualOne() DualElement {
	f.dualReady()
	return DualElement(f.traceSeq & f.mask)
}

// MixedMul multiplies a dual-basis operand by a standard-basis operand,
// producing the dual-basis product. The dual operand is extended to a
// 2M-1-bit window by the modulus recurrence (one inner product against
// the modulus per auxiliary bit); output bit k is then the inner
// product of the standard operand against the window starting at k.
// Combinational; trinomial moduli only.
func (f *Field) MixedMul(d DualElement, s Element) DualElement {
	f.dualReady()
	ext := uint32(d) & f.mask
	for t := 0; t < f.m-1; t++ {
		ext |= parity((ext>>uint(t))&f.polyLow) << uint(f.m+t)
	}

	sv := uint32(s) & f.mask
	var r uint32
	for k := 0; k < f.m; k++ {
		r |= parity((ext>>uint(k))&f.mask&sv) << uint(k)
	}
	return DualElement(r)
}
