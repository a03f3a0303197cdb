package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"directdfa/internal/automaton"
)

func (a *app) minimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimize <file.fa>",
		Short: "Minimize an automaton read from a description file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			dfa, err := automaton.LoadFile(args[0])
			if err != nil {
				return err
			}
			eq := automaton.Partition(dfa, automaton.WithLogger(a.logger))
			a.logger.Info("partition computed",
				zap.String("file", args[0]),
				zap.Int("classes", eq.Count()),
				zap.Int("merged", eq.Merges()))

			minimal := automaton.Minimize(dfa, automaton.WithLogger(a.logger))
			return a.writeOutput(cmd, out, func(w io.Writer) error {
				return automaton.Describe(w, minimal)
			})
		},
	}
	cmd.Flags().StringP("out", "o", "-", "Output file, - for stdout")
	return cmd
}
