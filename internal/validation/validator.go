package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	binPattern = regexp.MustCompile(`^(0b)?[01]+$`)
	hexPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	decPattern = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateDegree checks that a field degree is in the supported range.
func ValidateDegree(m int) error {
	if m < 2 || m > 16 {
		return fmt.Errorf("field degree must be between 2 and 16 (got %d)", m)
	}
	return nil
}

// ParseElement parses a field element written in binary (0b... or bare
// digits of 0/1), hex (0x...) or decimal, and checks it fits in M bits.
func ParseElement(input string, m int) (uint32, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("element cannot be empty")
	}

	var (
		v   uint64
		err error
	)
	switch {
	case hexPattern.MatchString(input):
		v, err = strconv.ParseUint(input[2:], 16, 32)
	case binPattern.MatchString(input):
		v, err = strconv.ParseUint(strings.TrimPrefix(input, "0b"), 2, 32)
	case decPattern.MatchString(input):
		v, err = strconv.ParseUint(input, 10, 32)
	default:
		return 0, fmt.Errorf("invalid element format: %q", input)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to parse element %q: %w", input, err)
	}

	if v >= 1<<uint(m) {
		return 0, fmt.Errorf("element %#x does not fit in %d bits", v, m)
	}
	return uint32(v), nil
}

// ValidateRadix checks an output radix name.
func ValidateRadix(radix string) error {
	switch radix {
	case "bin", "hex", "dec":
		return nil
	}
	return fmt.Errorf("radix must be bin, hex or dec (got %q)", radix)
}

// ValidateLaneCount checks a multiplier lane count.
func ValidateLaneCount(lanes int) error {
	if lanes < 1 || lanes > 64 {
		return fmt.Errorf("lane count must be between 1 and 64 (got %d)", lanes)
	}
	return nil
}

// SanitizeInput normalizes line endings and trims surrounding space.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}
