// Package cli implements the chsim command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chsim/internal/config"
	"github.com/katalvlaran/chsim/internal/render"
)

// RootOptions holds global flags and the resolved configuration.
type RootOptions struct {
	ConfigPath string
	Format     string
	Verbose    bool

	cfg config.Config
	log *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatPlain, config.FormatPretty}

// NewRootCommand creates the root command for the chsim CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "chsim",
		Short:         "chsim - CH-form stabilizer simulator",
		Long:          "Simulate Clifford circuits in CH-form: amplitudes, overlaps and Z-basis measurements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatPlain, "output format (plain|pretty)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewInnerCommand(opts))
	cmd.AddCommand(NewMeasureCommand(opts))

	return cmd
}

// resolve loads the config file, lets explicit flags win and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
		o.cfg = cfg
	}
	if cmd.Flags().Changed("format") || o.ConfigPath == "" {
		if !slices.Contains(ValidFormats, o.Format) {
			return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
		}
		o.cfg.Format = o.Format
	}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.log.Debug("configuration resolved",
		"config", o.ConfigPath,
		"format", o.cfg.Format,
		"seed", o.cfg.Seed,
		"precision", o.cfg.Precision)

	return nil
}

// renderer returns a renderer on w honouring the resolved config.
func (o *RootOptions) renderer(w io.Writer) *render.Renderer {
	return render.New(w, o.cfg.Format == config.FormatPretty, o.cfg.Precision, o.cfg.Tolerance)
}

// logger returns the resolved logger, or a discarding one before resolve ran.
func (o *RootOptions) logger() *slog.Logger {
	if o.log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.log
}
