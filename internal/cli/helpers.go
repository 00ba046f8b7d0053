package cli

import (
	"fmt"
	"strings"

	"github.com/Davincible/bchfield/internal/validation"
	"github.com/Davincible/bchfield/pkg/config"
	"github.com/Davincible/bchfield/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// loadConfig returns the saved configuration, falling back to defaults
// when no config file is usable.
func loadConfig() *config.Config {
	cm, err := config.NewConfigManager()
	if err != nil {
		return config.DefaultConfig()
	}
	return cm.GetConfig()
}

// configureColors applies the configured color preference to all
// colored output.
func configureColors() {
	if !loadConfig().UI.UseColor {
		color.NoColor = true
	}
}

// fieldFromFlags resolves the degree flag (config default when unset)
// and constructs the field.
func fieldFromFlags(cmd *cobra.Command) (*gf.Field, error) {
	m, err := cmd.Flags().GetInt("degree")
	if err != nil {
		return nil, err
	}
	if m == 0 {
		m = loadConfig().Defaults.Degree
	}

	if err := validation.ValidateDegree(m); err != nil {
		return nil, err
	}

	f, err := gf.New(m)
	if err != nil {
		return nil, fmt.Errorf("failed to construct field: %w", err)
	}
	return f, nil
}

// parseElements parses the positional arguments as field elements.
func parseElements(args []string, m int) ([]gf.Element, error) {
	elems := make([]gf.Element, len(args))
	for i, arg := range args {
		v, err := validation.ParseElement(arg, m)
		if err != nil {
			return nil, err
		}
		elems[i] = gf.Element(v)
	}
	return elems, nil
}

// resolveRadix picks the output radix from the flag or config default.
func resolveRadix(cmd *cobra.Command) (string, error) {
	radix, err := cmd.Flags().GetString("radix")
	if err != nil {
		return "", err
	}
	if radix == "" {
		radix = loadConfig().Defaults.Radix
	}
	if err := validation.ValidateRadix(radix); err != nil {
		return "", err
	}
	return radix, nil
}

// formatElement renders an M-bit value in the requested radix.
func formatElement(v uint32, m int, radix string) string {
	switch radix {
	case "hex":
		return fmt.Sprintf("0x%0*x", (m+3)/4, v)
	case "dec":
		return fmt.Sprintf("%d", v)
	default:
		return "0b" + fmt.Sprintf("%0*b", m, v)
	}
}

// addFieldFlags attaches the flags every arithmetic command shares.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("degree", "m", 0, "Field degree M (default from config)")
	cmd.Flags().StringP("radix", "r", "", "Output radix: bin, hex, dec (default from config)")
}

// polyString renders a modulus polynomial as its term sum.
func polyString(poly uint32) string {
	var terms []string
	for bit := 31; bit >= 0; bit-- {
		if poly>>uint(bit)&1 == 0 {
			continue
		}
		switch bit {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", bit))
		}
	}
	return strings.Join(terms, " + ")
}
