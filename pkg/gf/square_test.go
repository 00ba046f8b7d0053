package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareMatchesMul(t *testing.T) {
	for _, m := range []int{2, 3, 4, 5, 8, 10} {
		f, err := New(m)
		require.NoError(t, err)

		for a := Element(0); a <= Element(f.mask); a++ {
			assert.Equal(t, f.Mul(a, a), f.Square(a), "GF(2^%d): %#x", m, a)
		}
	}
}

func TestSquareFixedPoints(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	assert.Equal(t, Element(0), f.Square(0))
	assert.Equal(t, Element(1), f.Square(1))

	// x squared is alpha^2.
	assert.Equal(t, f.AlphaPower(2), f.Square(0b0010))
}

func TestSquareFrobeniusOrder(t *testing.T) {
	// Applying the squarer M times is the identity map.
	f, err := New(5)
	require.NoError(t, err)

	for a := Element(0); a <= Element(f.mask); a++ {
		v := a
		for i := 0; i < f.M(); i++ {
			v = f.Square(v)
		}
		assert.Equal(t, a, v)
	}
}
