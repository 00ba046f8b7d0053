package test

import (
	"testing"

	"github.com/Davincible/bchfield/internal/validation"
	"github.com/Davincible/bchfield/pkg/gf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteMul is an independent shift-and-XOR reference multiplier.
func bruteMul(m int, poly, a, b uint32) uint32 {
	var r uint32
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			r ^= a
		}
		a <<= 1
		if a&(1<<uint(m)) != 0 {
			a ^= poly
		}
	}
	return r
}

func bruteInverse(t *testing.T, m int, poly, a uint32) uint32 {
	t.Helper()
	for b := uint32(1); b < 1<<uint(m); b++ {
		if bruteMul(m, poly, a, b) == 1 {
			return b
		}
	}
	t.Fatalf("no inverse for %#x", a)
	return 0
}

// TestSyndromePipeline walks the path a decoder takes for one syndrome
// coefficient: raise the locator to successive powers through the
// multiplier units, fold the T+1 evaluations with the combiner, and
// cross-check every stage against brute-force arithmetic.
func TestSyndromePipeline(t *testing.T) {
	f, err := gf.New(5)
	require.NoError(t, err)

	loc := gf.Element(0b10011)

	// Candidate terms: loc^1 .. loc^4 via the shared-operand parallel
	// multiplier, seeded by the squarer and cubing unit.
	square := f.Square(loc)
	cube := f.Cube(loc)
	terms := f.MulMany(loc, []gf.Element{1, loc, square, cube})

	want := uint32(0)
	for p := 1; p <= 4; p++ {
		v := uint32(1)
		for i := 0; i < p; i++ {
			v = bruteMul(5, f.Modulus(), v, uint32(loc))
		}
		want ^= v
	}
	assert.Equal(t, gf.Element(want), f.CombineSyndromes(terms))
}

// TestDivisionPipeline runs every divider against brute-force GF
// arithmetic across a trinomial and near the spec's M=4 scenario.
func TestDivisionPipeline(t *testing.T) {
	for _, m := range []int{4, 5, 7} {
		f, err := gf.New(m)
		require.NoError(t, err)

		div, err := gf.NewDivider(f)
		require.NoError(t, err)

		mask := uint32(1)<<uint(m) - 1
		for den := uint32(1); den <= mask; den++ {
			require.NoError(t, div.Start(gf.Element(den)))
			for div.Busy() {
				require.NoError(t, div.Step())
			}

			num := den ^ mask | 1 // arbitrary nonzero companion
			got, err := div.Apply(gf.Element(num))
			require.NoError(t, err)

			want := bruteMul(m, f.Modulus(), num, bruteInverse(t, m, f.Modulus(), den))
			assert.Equal(t, gf.Element(want), got, "GF(2^%d): %#x / %#x", m, num, den)
		}
	}
}

// TestSerialUnitsAgree drives the two serial datapaths and checks them
// against their combinational twins for the same operands.
func TestSerialUnitsAgree(t *testing.T) {
	f, err := gf.New(4)
	require.NoError(t, err)

	lanes := []gf.Element{0b0001, 0b0111, 0b1100}
	for a := gf.Element(1); a <= 0b1111; a++ {
		d := f.StandardToDual(a)

		sm, err := gf.NewSerialMixedMultiplier(f, len(lanes))
		require.NoError(t, err)
		require.NoError(t, sm.Start(d, lanes))
		for sm.Busy() {
			_, err := sm.Step()
			require.NoError(t, err)
		}
		outs, err := sm.Outputs()
		require.NoError(t, err)

		for i, b := range lanes {
			assert.Equal(t, f.StandardToDual(f.Mul(a, b)), outs[i])
			assert.Equal(t, f.Mul(a, b), f.MulSerial(a, b))
		}
	}
}

// TestValidatedInputWorkflow mirrors what the CLI does: parse elements
// with the validation layer, then push them through the arithmetic.
func TestValidatedInputWorkflow(t *testing.T) {
	m := 4
	require.NoError(t, validation.ValidateDegree(m))

	f, err := gf.New(m)
	require.NoError(t, err)

	a, err := validation.ParseElement("0b0010", m)
	require.NoError(t, err)
	b, err := validation.ParseElement("0x3", m)
	require.NoError(t, err)

	out, err := f.Div(gf.Element(a), gf.Element(b))
	require.NoError(t, err)

	want := bruteMul(m, f.Modulus(), a, bruteInverse(t, m, f.Modulus(), b))
	assert.Equal(t, gf.Element(want), out)

	_, err = validation.ParseElement("0b10000", m)
	assert.Error(t, err)
	assert.Error(t, validation.ValidateDegree(1))
}
