package main

import (
	"io"
	"os"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"directdfa/internal/automaton"
)

// app carries what every subcommand shares: the viper settings and the
// logger built from them before a command runs.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "directdfa",
		Short: "Compile regular expressions into minimal DFAs",
		Long: "directdfa builds a DFA straight from the syntax tree of a regular expression " +
			"(followpos construction), minimizes it with the table-filling algorithm and " +
			"checks strings against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(a.v.GetBool("verbose"), a.v.GetString("log_format"), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Debug logging")
	pf.String("log-format", "console", "Log encoding: console or json")
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("log_format", pf.Lookup("log-format"))
	a.v.SetEnvPrefix("DIRECTDFA")
	a.v.AutomaticEnv()

	root.AddCommand(
		a.buildCmd(),
		a.checkCmd(),
		a.minimizeCmd(),
		a.dotCmd(),
		a.treeCmd(),
		a.equivCmd(),
	)
	return root
}

func newLogger(verbose bool, format string, w io.Writer) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	var enc zapcore.Encoder
	switch format {
	case "console":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}

func (a *app) compile(pattern string, minimize bool) (*automaton.Automaton, error) {
	dfa, err := automaton.Compile(pattern, automaton.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	if minimize {
		dfa = automaton.Minimize(dfa, automaton.WithLogger(a.logger))
	}
	return dfa, nil
}

// writeOutput runs write against stdout when path is "-", or against a newly
// created file otherwise.
func (a *app) writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Annotatef(err, "close %s", path)
	}
	a.logger.Info("output written", zap.String("path", path))
	return nil
}
