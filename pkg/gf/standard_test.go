package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driveSerial runs the serial multiplier through a full M-step multiply
// with the caller-side masking the unit's contract requires.
func driveSerial(t *testing.T, f *Field, a, b Element) Element {
	t.Helper()

	masked := func(k int) Element {
		if uint32(b)>>uint(k)&1 != 0 {
			return a
		}
		return 0
	}

	s := NewSerialMultiplier(f)
	s.Start(masked(f.M() - 1))
	for k := f.M() - 2; k >= 0; k-- {
		require.NoError(t, s.Step(masked(k), true))
	}
	out, err := s.Acc()
	require.NoError(t, err)
	return out
}

func TestSerialMatchesParallel(t *testing.T) {
	for _, m := range []int{2, 3, 4, 5} {
		f, err := New(m)
		require.NoError(t, err)

		for a := Element(0); a <= Element(f.mask); a++ {
			for b := Element(0); b <= Element(f.mask); b++ {
				assert.Equal(t, f.Mul(a, b), driveSerial(t, f, a, b),
					"GF(2^%d): %#x * %#x", m, a, b)
			}
		}
	}
}

func TestSerialSquaresX(t *testing.T) {
	// GF(16), modulus x^4+x+1: multiplying x by itself over 4 serial
	// steps must equal the parallel squarer's one-shot output.
	f, err := New(4)
	require.NoError(t, err)

	x := Element(0b0010)
	assert.Equal(t, f.Square(x), driveSerial(t, f, x, x))
}

func TestSerialRunHold(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	s := NewSerialMultiplier(f)
	s.Start(0b0110)

	// A step with run deasserted holds the accumulator.
	require.NoError(t, s.Step(0b0001, false))
	acc, err := s.Acc()
	require.NoError(t, err)
	assert.Equal(t, Element(0b0110), acc)

	require.NoError(t, s.Step(0b0001, true))
	acc, err = s.Acc()
	require.NoError(t, err)
	assert.Equal(t, f.mulByRoot(0b0110)^Element(0b0001), acc)
}

func TestSerialStepWithoutStart(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	s := NewSerialMultiplier(f)
	assert.ErrorIs(t, s.Step(0b0001, true), ErrNotStarted)
	_, err = s.Acc()
	assert.ErrorIs(t, err, ErrNotStarted)

	s.Start(0b0001)
	require.NoError(t, s.Step(0, true))
	s.Reset()
	assert.ErrorIs(t, s.Step(0, true), ErrNotStarted)
}

func TestMulManyMatchesMul(t *testing.T) {
	f, err := New(5)
	require.NoError(t, err)

	a := Element(0b10110)
	bs := []Element{0, 1, 0b00010, 0b11111, 0b01101}
	outs := f.MulMany(a, bs)
	require.Len(t, outs, len(bs))
	for i, b := range bs {
		assert.Equal(t, f.Mul(a, b), outs[i], "lane %d", i)
	}
}

func TestMulSerialDriver(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	for a := Element(0); a <= Element(f.mask); a++ {
		for b := Element(0); b <= Element(f.mask); b++ {
			assert.Equal(t, f.Mul(a, b), f.MulSerial(a, b))
		}
	}
}
