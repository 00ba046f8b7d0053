package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSyndromeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syndrome [term]...",
		Short: "Combine candidate terms into one syndrome coefficient",
		Long: `XOR-reduce T+1 candidate evaluation terms into a single syndrome
coefficient, the way the decoder folds multiple evaluations together.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}
			radix, err := resolveRadix(cmd)
			if err != nil {
				return err
			}

			terms, err := parseElements(args, f.M())
			if err != nil {
				return err
			}

			out := f.CombineSyndromes(terms)
			fmt.Printf("combined %d terms: %s\n", len(terms),
				formatElement(uint32(out), f.M(), radix))
			return nil
		},
	}

	addFieldFlags(cmd)
	return cmd
}
