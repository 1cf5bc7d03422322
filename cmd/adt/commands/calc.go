package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"martianoff/sumtypes/adt"
	"martianoff/sumtypes/internal/demo/calc"
)

func newCalcCmd(e *env) *cobra.Command {
	var (
		source  string
		showAST bool
	)
	cmd := &cobra.Command{
		Use:   "calc [file]",
		Short: "Run a calc script",
		Long: `Calc parses a script into Calc values and evaluates it.

Statements are "name = expr" and "print expr", separated by newlines or ';'.
Without a file or -e, the built-in program is run:

  x = 10
  print x / 2

A bare file name that does not exist in the working directory is looked up
in the scripts directory under the adt home.

Examples:
  adt calc
  adt calc prog.calc
  adt calc -e 'r = 2; print 3.14 * r * r'
  adt calc --ast -e 'print 1 + 2'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calc.Declare()
			if err != nil {
				return err
			}

			var prog *adt.Instance
			switch {
			case source != "" && len(args) > 0:
				return fmt.Errorf("give either a file or -e, not both")
			case source != "":
				prog, err = c.Parse(source)
			case len(args) > 0:
				path := e.cfg.ResolveScript(args[0])
				e.log.Printf("reading %s", path)
				var data []byte
				if data, err = os.ReadFile(path); err != nil {
					return fmt.Errorf("failed to read script: %w", err)
				}
				prog, err = c.Parse(string(data))
				if err != nil {
					err = fmt.Errorf("%s:%w", path, err)
				}
			default:
				prog = c.Sample()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showAST {
				fmt.Fprintln(out, prog)
				return nil
			}
			in := c.NewInterpreter(out)
			in.Log = e.log
			return in.Exec(prog)
		},
	}
	cmd.Flags().StringVarP(&source, "expr", "e", "", "Script source given inline")
	cmd.Flags().BoolVar(&showAST, "ast", false, "Print the parsed program instead of running it")
	return cmd
}
