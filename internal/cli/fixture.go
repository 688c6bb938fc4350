package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/fortesting"
	"github.com/PolyhedraZK/BloqCostCollection/resource"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"
)

// maxCheckBitsize bounds the exhaustive classical check, which runs 4^n simulations
const maxCheckBitsize = 8

type fixtureOptions struct {
	bitsize int
	check   bool
}

// FixtureResult is the output of the fixture command
type FixtureResult struct {
	Bloq          string  `json:"bloq"`
	Decomposition string  `json:"decomposition"`
	Cost          *Report `json:"cost"`
	Checked       bool    `json:"checked"`
}

func (r *FixtureResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n%s\n%s", r.Bloq, r.Decomposition, r.Cost)
	if r.Checked {
		sb.WriteString("\nclassical action checked")
	}
	return sb.String()
}

func NewFixtureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &fixtureOptions{}
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Decompose and cost the cast round trip fixture",
		Long: `Decompose TestCastToFrom, which casts a fixed point register to an unsigned
integer, adds it to another register and casts it back, then print its
decomposition, sigma and T count.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixture(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().IntVarP(&opts.bitsize, "bitsize", "n", 4, "register width")
	cmd.Flags().BoolVar(&opts.check, "check", false, fmt.Sprintf("check the classical action on all inputs (bitsize <= %d)", maxCheckBitsize))
	return cmd
}

func runFixture(rootOpts *RootOptions, opts *fixtureOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	log := logger.Logger()

	if opts.bitsize <= 0 {
		return formatter.Error(ExitCommandError, "invalid bitsize", fmt.Errorf("%d is not positive", opts.bitsize))
	}
	if opts.check && opts.bitsize > maxCheckBitsize {
		return formatter.Error(ExitCommandError, "invalid bitsize", fmt.Errorf("--check supports at most %d bits", maxCheckBitsize))
	}

	fixture := fortesting.TestCastToFrom{Bitsize: opts.bitsize}
	cb, err := bloq.Decompose(fixture)
	if err != nil {
		return formatter.Error(ExitFailure, "decompose", err)
	}
	var decomposition strings.Builder
	cb.Print(&decomposition)

	sigma, err := resource.GetSigma(fixture, sigmaOptions()...)
	if err != nil {
		return formatter.Error(ExitFailure, "compute sigma", err)
	}
	report, err := NewReport(sigma)
	if err != nil {
		return formatter.Error(ExitFailure, "count T gates", err)
	}

	if opts.check {
		if err := checkFixture(cb, opts.bitsize); err != nil {
			return formatter.Error(ExitFailure, "classical check", err)
		}
		log.Debug().Int("bitsize", opts.bitsize).Msg("classical action checked")
	}

	log.Info().Int("bitsize", opts.bitsize).Int("nbInstances", len(cb.Instances)).Str("tCount", report.Total).Msg("fixture costed")
	return formatter.Success(&FixtureResult{
		Bloq:          fixture.String(),
		Decomposition: strings.TrimSuffix(decomposition.String(), "\n"),
		Cost:          report,
		Checked:       opts.check,
	})
}

// checkFixture verifies (a, b) -> (a, a+b mod 2^n) on every input
func checkFixture(cb *bloq.CompositeBloq, n int) error {
	mod := int64(1) << n
	for a := int64(0); a < mod; a++ {
		for b := int64(0); b < mod; b++ {
			out, err := cb.CallClassically(map[string]*big.Int{"a": big.NewInt(a), "b": big.NewInt(b)})
			if err != nil {
				return err
			}
			if out["a"].Int64() != a || out["b"].Int64() != (a+b)%mod {
				return fmt.Errorf("a=%d b=%d: got a=%s b=%s", a, b, out["a"], out["b"])
			}
		}
	}
	return nil
}
