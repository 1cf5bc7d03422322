package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"martianoff/sumtypes/adt"
	"martianoff/sumtypes/internal/demo/calc"
	"martianoff/sumtypes/internal/demo/tree"
)

var demos = map[string]func() (*adt.SumType, error){
	"tree": func() (*adt.SumType, error) {
		t, err := tree.Declare()
		if err != nil {
			return nil, err
		}
		return t.Sum, nil
	},
	"calc": func() (*adt.SumType, error) {
		c, err := calc.Declare()
		if err != nil {
			return nil, err
		}
		return c.Sum, nil
	},
}

func newDescribeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "describe tree|calc",
		Short:     "Print the structure of a declared sum type",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"calc", "tree"},
		RunE: func(cmd *cobra.Command, args []string) error {
			declare, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown sum type %q", args[0])
			}
			sum, err := declare()
			if err != nil {
				return err
			}
			e.log.Printf("%s: %d members, %d constructors, %d categories",
				sum.Name(), len(sum.Members()), len(sum.Constructors()), len(sum.Categories()))
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}
