package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineSyndromes(t *testing.T) {
	f, err := New(4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		terms []Element
		want  Element
	}{
		{name: "no terms", terms: nil, want: 0},
		{name: "single term", terms: []Element{0b1010}, want: 0b1010},
		{name: "pair cancels", terms: []Element{0b1010, 0b1010}, want: 0},
		{name: "three terms", terms: []Element{0b0001, 0b0010, 0b0100}, want: 0b0111},
		{name: "t plus one terms", terms: []Element{0b1111, 0b1010, 0b0011, 0b0001}, want: 0b0111},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.CombineSyndromes(tt.terms))
		})
	}
}

func TestCombineSyndromesPerBit(t *testing.T) {
	// The fold equals the explicit per-bit transpose-and-reduce.
	f, err := New(5)
	require.NoError(t, err)

	terms := []Element{0b10110, 0b01101, 0b11111, 0b00010}
	var want Element
	for bit := 0; bit < f.M(); bit++ {
		var group uint32
		for _, term := range terms {
			group ^= uint32(term) >> uint(bit) & 1
		}
		want |= Element(group << uint(bit))
	}
	assert.Equal(t, want, f.CombineSyndromes(terms))
}
