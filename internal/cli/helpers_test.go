package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatElement(t *testing.T) {
	tests := []struct {
		name  string
		v     uint32
		m     int
		radix string
		want  string
	}{
		{name: "binary pads to degree", v: 0b101, m: 5, radix: "bin", want: "0b00101"},
		{name: "hex pads to nibbles", v: 0xA, m: 8, radix: "hex", want: "0x0a"},
		{name: "decimal", v: 29, m: 5, radix: "dec", want: "29"},
		{name: "unknown radix falls back to binary", v: 3, m: 4, radix: "", want: "0b0011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatElement(tt.v, tt.m, tt.radix))
		})
	}
}

func TestPolyString(t *testing.T) {
	assert.Equal(t, "x^4 + x + 1", polyString(0x13))
	assert.Equal(t, "x^8 + x^4 + x^3 + x^2 + 1", polyString(0x11D))
	assert.Equal(t, "x^2 + x + 1", polyString(0x7))
}
