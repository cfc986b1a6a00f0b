package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scaledint/decimal"
)

const (
	loggerName = "decround"
	modeEnv    = "DECROUND_MODE"
)

// options holds the persistent flags and the state derived from them.
type options struct {
	modeName string
	verbose  bool
	json     bool

	mode decimal.RoundingMode
	log  *zap.Logger
}

// effectiveMode returns the mode the library actually applies.
func (o *options) effectiveMode() decimal.RoundingMode {
	if o.mode == decimal.RoundDefault {
		return decimal.DefaultRoundingMode()
	}
	return o.mode
}

// print writes v as JSON if requested, and text otherwise.
func (o *options) print(w io.Writer, v any, text string) error {
	if o.json {
		return json.NewEncoder(w).Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

// Execute runs the root command with the process's standard streams.
func Execute() error {
	return New(os.Stdout, os.Stderr).Execute()
}

// New builds the root command writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer) *cobra.Command {
	opts := &options{log: zap.NewNop()}

	root := &cobra.Command{
		Use:          "decround",
		Short:        "Rounded fixed-point decimal arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = newLogger(errOut, opts.verbose)

			name := opts.modeName
			if name == "" {
				name = os.Getenv(modeEnv)
			}
			if name == "" {
				name = decimal.RoundHalfEven.String()
			}
			m, err := decimal.ParseRoundingMode(name)
			if err != nil {
				return fmt.Errorf("parsing rounding mode: %w", err)
			}
			if m != decimal.RoundDefault {
				if err := decimal.SetDefaultRoundingMode(m); err != nil {
					return err
				}
			}
			opts.mode = m

			opts.log.Debug("rounding mode configured",
				zap.Stringer("mode", opts.effectiveMode()),
				zap.Bool("json", opts.json),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&opts.modeName, "mode", "m", "", "rounding mode (default $"+modeEnv+" or half-even)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages to stderr")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")

	for _, op := range operations {
		root.AddCommand(arithCmd(op, opts))
	}
	root.AddCommand(modesCmd(opts))
	return root
}

// newLogger returns a console logger named after the CLI.
// Debug entries are only written when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named(loggerName)
}
