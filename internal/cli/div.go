package cli

import (
	"fmt"

	"github.com/Davincible/bchfield/pkg/gf"
	"github.com/spf13/cobra"
)

func NewDivCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "div [numerator] [denominator]",
		Short: "Divide field elements via the Fermat inverter",
		Long: `Compute numerator * denominator^-1 by stepping the divider: the
denominator's successive squares fold into a dual-basis accumulator
over M-1 steps, then the numerator multiplies in after busy clears.

Requires a trinomial modulus; pentanomial degrees are rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}
			radix, err := resolveRadix(cmd)
			if err != nil {
				return err
			}
			trace, err := cmd.Flags().GetBool("trace")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("trace") {
				trace = loadConfig().UI.TraceSteps
			}

			elems, err := parseElements(args, f.M())
			if err != nil {
				return err
			}
			num, den := elems[0], elems[1]

			div, err := gf.NewDivider(f)
			if err != nil {
				return err
			}
			if err := div.Start(den); err != nil {
				return fmt.Errorf("failed to start division: %w", err)
			}

			steps := 0
			for div.Busy() {
				if err := div.Step(); err != nil {
					return err
				}
				steps++
				if trace {
					inv, _ := div.InverseDual()
					if div.Busy() {
						fmt.Printf("  step %-2d busy\n", steps)
					} else {
						fmt.Printf("  step %-2d done, inverse (dual) = %s\n",
							steps, formatElement(uint32(inv), f.M(), radix))
					}
				}
			}

			inv, err := div.Inverse()
			if err != nil {
				return err
			}
			out, err := div.Apply(num)
			if err != nil {
				return err
			}

			fmt.Printf("%s^-1 = %s (%d steps)\n",
				formatElement(uint32(den), f.M(), radix),
				formatElement(uint32(inv), f.M(), radix), steps)
			fmt.Printf("%s / %s = %s\n",
				formatElement(uint32(num), f.M(), radix),
				formatElement(uint32(den), f.M(), radix),
				formatElement(uint32(out), f.M(), radix))
			return nil
		},
	}

	addFieldFlags(cmd)
	cmd.Flags().Bool("trace", false, "Print per-step divider state")
	return cmd
}
