package gf

// buildSquareTerms precomputes alpha^(2i) for each coefficient position;
// squaring is linear over GF(2), so these terms are all it takes.
func (f *Field) buildSquareTerms() {
	f.sqTerm = make([]Element, f.m)
	for i := 0; i < f.m; i++ {
		f.sqTerm[i] = f.AlphaPower(2 * i)
	}
}

// Square returns x^2 in the standard basis. Squaring distributes over
// the coefficients, so the result is the XOR of alpha^(2i) for every
// set input bit. Pure; no failure modes.
func (f *Field) Square(x Element) Element {
	v := uint32(x) & f.mask
	var r Element
	for i := 0; v != 0; i++ {
		if v&1 != 0 {
			r ^= f.sqTerm[i]
		}
		v >>= 1
	}
	return r
}
