// Package cli wires the rootfind engines to a cobra command tree: one
// subcommand per method plus a batch runner for YAML problem files.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "csv" | "table"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"csv", "table"}

// NewRootCommand creates the root command for the rootfind CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rootfind",
		Short: "Iterative root-finding for scalar functions",
		Long: `rootfind locates zeros of scalar functions with five classic
iterative methods (bisection, false position, secant, Newton, fixed
point) and renders the full per-iteration trace of each run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose run logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "table", "trace output format (csv|table)")

	// Add subcommands
	cmd.AddCommand(NewBisectCommand(opts))
	cmd.AddCommand(NewFalsePositionCommand(opts))
	cmd.AddCommand(NewSecantCommand(opts))
	cmd.AddCommand(NewNewtonCommand(opts))
	cmd.AddCommand(NewFixedPointCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger builds the CLI's logger: a development logger when verbose,
// a no-op logger otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
