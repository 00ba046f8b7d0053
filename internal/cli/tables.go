package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the constant tables for a field degree",
		Long: `Print the configuration-time constants for GF(2^M): the modulus
polynomial, its classification, the power table of the primitive root
and, for trinomial moduli, the dual-basis representation of each power.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}
			radix, err := resolveRadix(cmd)
			if err != nil {
				return err
			}

			configureColors()
			yellow := color.New(color.FgYellow)
			cyan := color.New(color.FgCyan)

			shape := "trinomial"
			if f.Pentanomial() {
				shape = "pentanomial"
			}

			yellow.Printf("GF(2^%d)\n", f.M())
			fmt.Printf("  Modulus: %s (%#x, %s)\n", polyString(f.Modulus()), f.Modulus(), shape)
			fmt.Printf("  Order:   %d\n", f.Order())
			fmt.Println()

			cyan.Println("Power table:")
			for i := 0; i < f.Order(); i++ {
				e := f.AlphaPower(i)
				if f.Pentanomial() {
					fmt.Printf("  alpha^%-3d = %s\n", i, formatElement(uint32(e), f.M(), radix))
					continue
				}
				d := f.StandardToDual(e)
				fmt.Printf("  alpha^%-3d = %s  dual %s\n", i,
					formatElement(uint32(e), f.M(), radix),
					formatElement(uint32(d), f.M(), radix))
			}

			if f.Pentanomial() {
				fmt.Println()
				fmt.Println("Dual basis unavailable: pentanomial modulus.")
			}

			return nil
		},
	}

	addFieldFlags(cmd)
	return cmd
}
