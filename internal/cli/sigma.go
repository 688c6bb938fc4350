package cli

import (
	"github.com/PolyhedraZK/BloqCostCollection/profile"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

func NewSigmaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sigma <profile.yaml>",
		Short: "Count the T gates of a sigma profile",
		Long: `Read a YAML sigma profile and print the T count of every gate and the total.

Gate counts may be integers or symbol names, in which case the total is a
polynomial in those symbols.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSigma(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runSigma(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	log := logger.Logger()

	sigma, err := profile.LoadFile(path, sigmaOptions()...)
	if err != nil {
		return formatter.Error(ExitCommandError, "load profile", err)
	}
	log.Debug().Str("path", path).Int("nbGates", sigma.Len()).Msg("profile loaded")

	report, err := NewReport(sigma)
	if err != nil {
		return formatter.Error(ExitFailure, "count T gates", err)
	}
	return formatter.Success(report)
}
