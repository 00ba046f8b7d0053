package gf

// buildCubeTerms precomputes the cubing unit's term tables. Cubing is
// quadratic, not linear, so it needs its own derivation instead of the
// multiplier paths: (sum a_i alpha^i)^3 expands to the diagonal terms
// alpha^(3i) for each set bit plus, for each pair i < j of set bits,
// the cross term alpha^(2i+j) ^ alpha^(2j+i).
func (f *Field) buildCubeTerms() {
	f.cubeDiag = make([]Element, f.m)
	f.cubeCross = make([][]Element, f.m)
	for i := 0; i < f.m; i++ {
		f.cubeDiag[i] = f.AlphaPower(3 * i)
		f.cubeCross[i] = make([]Element, f.m)
		for j := i + 1; j < f.m; j++ {
			f.cubeCross[i][j] = f.AlphaPower(2*i+j) ^ f.AlphaPower(2*j+i)
		}
	}
}

// Cube returns x^3 in the standard basis, independent of the other
// multiplier paths. Each selected diagonal or pairwise term XORs into
// the result; selection is the a_i (resp. a_i AND a_j) gate of the
// precomputed tables.
func (f *Field) Cube(x Element) Element {
	v := uint32(x) & f.mask
	var r Element
	for i := 0; i < f.m; i++ {
		if v>>uint(i)&1 == 0 {
			continue
		}
		r ^= f.cubeDiag[i]
		for j := i + 1; j < f.m; j++ {
			if v>>uint(j)&1 != 0 {
				r ^= f.cubeCross[i][j]
			}
		}
	}
	return r
}
