// Package commands provides the CLI commands for the adt tool.
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"martianoff/sumtypes/internal/config"
)

// state shared by the subcommands of one invocation
type env struct {
	verbose bool
	home    string

	cfg *config.Config
	log *log.Logger
}

// NewRootCmd builds the adt command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "adt",
		Short: "Algebraic data types declared at run time",
		Long: `adt declares sum types at run time and takes their values apart by
structural pattern matching.

Usage:
  adt tree                 Build a sample tree and measure its depth
  adt calc [file]          Run a calc script (a built-in program if no file)
  adt repl                 Interactive calc session
  adt describe tree|calc   Print the structure of a declared sum type
  adt version              Print version`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			e.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().StringVar(&e.home, "home", "", "Data directory (default $"+config.HomeEnv+" or ~/.adt)")

	root.AddCommand(newTreeCmd(e))
	root.AddCommand(newCalcCmd(e))
	root.AddCommand(newReplCmd(e))
	root.AddCommand(newDescribeCmd(e))
	root.AddCommand(newVersionCmd(e))
	return root
}

func (e *env) setup(stderr io.Writer) {
	if e.home != "" {
		e.cfg = config.FromHome(e.home)
	} else {
		e.cfg = config.DefaultConfig()
	}
	out := io.Discard
	if e.verbose {
		out = stderr
	}
	e.log = log.New(out, "adt: ", 0)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
