package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCubeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cube [a]...",
		Short: "Cube field elements through the dedicated cubing unit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}
			radix, err := resolveRadix(cmd)
			if err != nil {
				return err
			}

			elems, err := parseElements(args, f.M())
			if err != nil {
				return err
			}
			for _, a := range elems {
				fmt.Printf("%s^3 = %s\n",
					formatElement(uint32(a), f.M(), radix),
					formatElement(uint32(f.Cube(a)), f.M(), radix))
			}
			return nil
		},
	}

	addFieldFlags(cmd)
	return cmd
}
