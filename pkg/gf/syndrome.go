package gf

// CombineSyndromes folds T+1 candidate terms into one syndrome
// coefficient: regrouped per output bit position, the T+1 contributions
// to each bit XOR-reduce to a single bit. Word-wide XOR performs every
// per-bit group at once; there is no arithmetic beyond the reduction.
func (f *Field) CombineSyndromes(terms []Element) Element {
	var out Element
	for _, t := range terms {
		out ^= t
	}
	return out & Element(f.mask)
}
