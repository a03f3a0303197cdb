package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"directdfa/internal/automaton"
)

func (a *app) equivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equiv <regex> <regex>",
		Short: "Check whether two regular expressions denote the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.compile(args[0], true)
			if err != nil {
				return err
			}
			y, err := a.compile(args[1], true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ok, w := automaton.Equivalent(x, y)
			if ok {
				fmt.Fprintln(out, "equivalent")
				return nil
			}
			only := args[1]
			if x.Accepts(w) {
				only = args[0]
			}
			fmt.Fprintf(out, "different: %q is accepted by %s only\n", w, only)
			return nil
		},
	}
}
