package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"directdfa/internal/syntax"
)

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <regex>",
		Short: "Dump the annotated syntax tree and the followpos table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := syntax.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "augmented: %s\n", t)
			t.Dump(out)
			return nil
		},
	}
}
