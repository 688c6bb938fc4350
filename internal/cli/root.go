// Package cli implements the tcount command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/PolyhedraZK/BloqCostCollection/resource"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tcount",
		Short: "T-count resource estimation for bloqs",
		Long:  "Count the T gates needed to run a bloq or a sigma profile fault tolerantly.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			setupLogger(opts, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSigmaCommand(opts))
	cmd.AddCommand(NewFixtureCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// setupLogger points the shared logger at w; debug messages are shown with --verbose only
func setupLogger(opts *RootOptions, w io.Writer) {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger())
}

func sigmaOptions() []resource.SigmaOption {
	return []resource.SigmaOption{resource.WithLogger(logger.Logger())}
}
