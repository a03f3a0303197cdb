package main

import (
	"io"

	"github.com/spf13/cobra"

	"directdfa/internal/automaton"
)

func (a *app) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <regex>",
		Short: "Print the DFA of a regular expression in description format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minimize, _ := cmd.Flags().GetBool("minimize")
			out, _ := cmd.Flags().GetString("out")

			dfa, err := a.compile(args[0], minimize)
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, out, func(w io.Writer) error {
				return automaton.Describe(w, dfa)
			})
		},
	}
	cmd.Flags().BoolP("minimize", "m", false, "Minimize before printing")
	cmd.Flags().StringP("out", "o", "-", "Output file, - for stdout")
	return cmd
}
