package cli

import (
	"fmt"

	"github.com/Davincible/bchfield/internal/validation"
	"github.com/spf13/cobra"
)

func NewMulCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul [a] [b]...",
		Short: "Multiply field elements in the standard basis",
		Long: `Multiply a shared operand a against one or more operands b through the
parallel multiplier. With --serial the M-step serial datapath is used
instead; both produce identical products.

Elements are binary by default (0b1011 or 1011), with 0x for hex.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}
			radix, err := resolveRadix(cmd)
			if err != nil {
				return err
			}
			serial, err := cmd.Flags().GetBool("serial")
			if err != nil {
				return err
			}

			elems, err := parseElements(args, f.M())
			if err != nil {
				return err
			}
			a, bs := elems[0], elems[1:]
			if err := validation.ValidateLaneCount(len(bs)); err != nil {
				return err
			}

			if serial {
				for _, b := range bs {
					out := f.MulSerial(a, b)
					fmt.Printf("%s * %s = %s\n",
						formatElement(uint32(a), f.M(), radix),
						formatElement(uint32(b), f.M(), radix),
						formatElement(uint32(out), f.M(), radix))
				}
				return nil
			}

			outs := f.MulMany(a, bs)
			for i, b := range bs {
				fmt.Printf("%s * %s = %s\n",
					formatElement(uint32(a), f.M(), radix),
					formatElement(uint32(b), f.M(), radix),
					formatElement(uint32(outs[i]), f.M(), radix))
			}
			return nil
		},
	}

	addFieldFlags(cmd)
	cmd.Flags().Bool("serial", false, "Use the M-step serial multiplier")
	return cmd
}
