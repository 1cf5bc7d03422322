package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"martianoff/sumtypes/adt"
	"martianoff/sumtypes/internal/demo/tree"
)

func newTreeCmd(e *env) *cobra.Command {
	var balanced int
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build a tree and measure its depth",
		Long: `Tree declares

  Tree = Empty() | Leaf(int) | Node(left Tree, right Tree)

builds Node(Empty(), Node(Leaf(1), Leaf(2))), or a complete tree with
--balanced levels, and prints it with its depth. Empty and Leaf have depth 0
and each Node adds one.

Examples:
  adt tree
  adt tree --balanced 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := tree.Declare()
			if err != nil {
				return err
			}
			e.log.Printf("declared %s with %d constructors", t.Sum.Name(), len(t.Sum.Constructors()))

			var v *adt.Instance
			if balanced > 0 {
				v = t.Balanced(balanced)
			} else {
				v = t.Sample()
			}
			d, err := t.Depth(v)
			if err != nil {
				return fmt.Errorf("measuring depth: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, v)
			fmt.Fprintf(out, "depth: %d\n", d)
			return nil
		},
	}
	cmd.Flags().IntVarP(&balanced, "balanced", "b", 0, "Build a complete tree with this many levels instead of the sample")
	return cmd
}
