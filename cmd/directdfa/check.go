package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"directdfa/internal/automaton"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <regex> [input...]",
		Short: "Check strings against a regular expression",
		Long: "Check every input against the DFA of the regular expression. " +
			"Without inputs, strings are read one per line from stdin.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trace, _ := cmd.Flags().GetBool("trace")
			minimize, _ := cmd.Flags().GetBool("minimize")

			dfa, err := a.compile(args[0], minimize)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) > 1 {
				for _, input := range args[1:] {
					a.check(out, dfa, input, trace)
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				a.check(out, dfa, sc.Text(), trace)
			}
			return errors.Annotate(sc.Err(), "read inputs")
		},
	}
	cmd.Flags().BoolP("trace", "t", false, "Print every transition taken")
	cmd.Flags().BoolP("minimize", "m", false, "Check against the minimized DFA")
	return cmd
}

func (a *app) check(w io.Writer, dfa *automaton.Automaton, input string, trace bool) {
	if trace {
		fmt.Fprint(w, dfa.Trace(input))
		return
	}
	ok := dfa.Accepts(input)
	a.logger.Debug("input checked", zap.String("input", input), zap.Bool("accepted", ok))
	verdict := "rejected"
	if ok {
		verdict = "accepted"
	}
	fmt.Fprintf(w, "%q: %s\n", input, verdict)
}
