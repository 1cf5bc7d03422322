package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"martianoff/sumtypes/internal/vcs"
)

// Version information - can be set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of adt",
		Long: `Print the version information for the adt tool.

When no commit was stamped at build time, the commit is read from the git
repository enclosing the working directory, if there is one.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "adt version %s\n", Version)
			if commit := gitCommit(e); commit != "" {
				fmt.Fprintf(out, "  Git commit: %s\n", commit)
			}
			if BuildDate != "unknown" {
				fmt.Fprintf(out, "  Build date: %s\n", BuildDate)
			}
		},
	}
}

func gitCommit(e *env) string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	c, err := vcs.HeadCommit(wd)
	if err != nil {
		e.log.Printf("no commit information: %v", err)
		return ""
	}
	if c.Branch != "" {
		return fmt.Sprintf("%s (%s)", c.Short(), c.Branch)
	}
	return c.Short()
}
