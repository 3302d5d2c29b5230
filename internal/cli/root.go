// Package cli implements the tmatrix command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tmatrix/textio"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Verb    string

	config Config
	logger *slog.Logger
}

// Logger returns the logger configured by the root command.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}

	return o.logger
}

// errorLogger returns the logger failures are reported through. When the
// root command failed before building one, it falls back to the configured
// level, or to error level when that level is itself invalid.
func (o *RootOptions) errorLogger(w io.Writer) *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	logger, err := newLogger(w, o.config.LogLevel, false)
	if err != nil {
		logger, _ = newLogger(w, "error", false)
	}

	return logger
}

// textOptions returns the output options selected by the global flags.
func (o *RootOptions) textOptions() []textio.Option {
	return []textio.Option{textio.WithVerb(o.Verb)}
}

// NewRootCommand creates the root command for the tmatrix CLI.
// Errors are returned, not printed; Run reports them through slog.
func NewRootCommand(cfg Config) *cobra.Command {
	cmd, _ := newRootCommand(cfg)

	return cmd
}

// Run executes the command tree with args and logs a failure as one
// error record on stderr.
func Run(cfg Config, args []string) error {
	cmd, opts := newRootCommand(cfg)
	cmd.SetArgs(args)

	return execute(cmd, opts)
}

func execute(cmd *cobra.Command, opts *RootOptions) error {
	if err := cmd.Execute(); err != nil {
		opts.errorLogger(cmd.ErrOrStderr()).Error("command failed", "error", err)
		return err
	}

	return nil
}

func newRootCommand(cfg Config) (*cobra.Command, *RootOptions) {
	opts := &RootOptions{config: cfg}

	cmd := &cobra.Command{
		Use:   "tmatrix",
		Short: "tmatrix - vector and square matrix arithmetic",
		Long: "Evaluate vector and square matrix operations on whitespace-separated\n" +
			"values read from stdin, or on operands described in a YAML job file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasPrefix(opts.Verb, "%") {
				return fmt.Errorf("invalid verb %q: must be a fmt directive such as %%g", opts.Verb)
			}
			logger, err := newLogger(cmd.ErrOrStderr(), opts.config.LogLevel, opts.Verbose)
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Verb, "verb", cfg.Verb, "fmt verb used to print each value")

	// Add subcommands
	cmd.AddCommand(NewVecCommand(opts))
	cmd.AddCommand(NewMatCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd, opts
}
