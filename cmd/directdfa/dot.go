package main

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"directdfa/internal/automaton"
	"directdfa/internal/syntax"
)

func (a *app) dotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot <regex>",
		Short: "Export an automaton or syntax tree as Graphviz DOT",
		Long: "Export the minimized DFA of a regular expression as DOT. " +
			"--raw skips minimization, --tree exports the annotated syntax tree and " +
			"--fa reads the automaton from a description file instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			fromFile, _ := cmd.Flags().GetBool("fa")
			tree, _ := cmd.Flags().GetBool("tree")
			out, _ := cmd.Flags().GetString("out")
			png, _ := cmd.Flags().GetBool("png")

			if png && out == "-" {
				return errors.New("--png needs an output file (-o)")
			}

			var g interface{}
			switch {
			case tree:
				t, err := syntax.Parse(args[0])
				if err != nil {
					return err
				}
				g = t
			case fromFile:
				dfa, err := automaton.LoadFile(args[0])
				if err != nil {
					return err
				}
				if !raw {
					dfa = automaton.Minimize(dfa, automaton.WithLogger(a.logger))
				}
				g = dfa
			default:
				dfa, err := a.compile(args[0], !raw)
				if err != nil {
					return err
				}
				g = dfa
			}

			var buf bytes.Buffer
			if err := automaton.ExportDOT(&buf, g); err != nil {
				return err
			}
			if png {
				return a.renderPNG(cmd, &buf, out)
			}
			return a.writeOutput(cmd, out, func(w io.Writer) error {
				_, err := io.Copy(w, &buf)
				return err
			})
		},
	}
	cmd.Flags().Bool("raw", false, "Export the DFA before minimization")
	cmd.Flags().Bool("fa", false, "Treat the argument as a description file")
	cmd.Flags().Bool("tree", false, "Export the annotated syntax tree")
	cmd.Flags().StringP("out", "o", "-", "Output file, - for stdout")
	cmd.Flags().Bool("png", false, "Render PNG through dot -Tpng")
	return cmd
}

func (a *app) renderPNG(cmd *cobra.Command, src io.Reader, out string) error {
	c := exec.CommandContext(cmd.Context(), "dot", "-Tpng", "-o", out)
	c.Stdin = src
	c.Stderr = cmd.ErrOrStderr()
	if err := c.Run(); err != nil {
		return errors.Annotate(err, "dot failed")
	}
	a.logger.Info("png written", zap.String("path", out))
	return nil
}
