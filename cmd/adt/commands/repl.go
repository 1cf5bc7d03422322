package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"martianoff/sumtypes/internal/demo/calc"
)

const (
	promptMain = "calc> "
	replHelp   = `Enter calc statements or expressions. An expression is evaluated and
its value printed.

  :vars        list defined variables
  :ast <src>   show the Calc value a line parses to
  :help        show this help
  :quit        leave the session`
)

func newReplCmd(e *env) *cobra.Command {
	var history string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calc session",
		Long: `Repl reads calc statements line by line and runs them against one
environment, so variables persist between lines.

History is kept in the adt home unless --history is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calc.Declare()
			if err != nil {
				return err
			}
			if history == "" {
				if err := e.cfg.EnsureDirs(); err != nil {
					e.log.Printf("history disabled: %v", err)
				} else {
					history = e.cfg.HistoryFile
				}
			}
			s := newSession(c, cmd.OutOrStdout(), cmd.ErrOrStderr())
			s.in.Log = e.log
			return runLiner(s, history)
		},
	}
	cmd.Flags().StringVar(&history, "history", "", "History file (default <home>/history)")
	return cmd
}

func runLiner(s *session, history string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(history); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(s.out, "calc session, :help for commands")
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.handle(line) {
			return nil
		}
	}
}

// session evaluates REPL lines against one interpreter.
type session struct {
	calc   *calc.Calc
	in     *calc.Interpreter
	out    io.Writer
	errOut io.Writer
}

func newSession(c *calc.Calc, out, errOut io.Writer) *session {
	return &session{calc: c, in: c.NewInterpreter(out), out: out, errOut: errOut}
}

// handle runs one line and reports whether the session should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ":") {
		return s.command(line)
	}

	if expr, err := s.calc.ParseExpr(line); err == nil {
		x, err := s.in.Eval(expr)
		if err != nil {
			fmt.Fprintln(s.errOut, "error:", err)
			return false
		}
		fmt.Fprintln(s.out, calc.Format(x))
		return false
	}

	prog, err := s.calc.Parse(line)
	if err != nil {
		fmt.Fprintln(s.errOut, "error:", err)
		return false
	}
	if err := s.in.Exec(prog); err != nil {
		fmt.Fprintln(s.errOut, "error:", err)
	}
	return false
}

func (s *session) command(line string) bool {
	name, rest, _ := strings.Cut(line, " ")
	switch strings.ToLower(name) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(s.out, replHelp)
	case ":vars":
		for _, v := range s.in.Vars() {
			x, _ := s.in.Lookup(v)
			fmt.Fprintf(s.out, "%s = %s\n", v, calc.Format(x))
		}
	case ":ast":
		prog, err := s.calc.Parse(rest)
		if err != nil {
			fmt.Fprintln(s.errOut, "error:", err)
			break
		}
		fmt.Fprintf(s.out, "%+v\n", prog)
	default:
		fmt.Fprintf(s.errOut, "unknown command %s. Type :help for commands.\n", name)
	}
	return false
}
