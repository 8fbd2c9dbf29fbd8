// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/series"
)

func newExpCommand() *cobra.Command {
	var (
		tol      float64
		maxTerms int
	)
	cmd := &cobra.Command{
		Use:   "exp <x>...",
		Short: "Approximate e^x by its Taylor series and compare with math.Exp",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !(tol >= 0) || math.IsInf(tol, 0) {
				return errors.Newf("--tol must be finite and non-negative, got %g", tol)
			}
			if maxTerms < 1 {
				return errors.Newf("--max-terms must be >= 1, got %d", maxTerms)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			table := newTable(cmd.OutOrStdout(), []string{"x", "series", "math.Exp", "rel. error", "terms"})
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Wrapf(err, "parse %q", arg)
				}
				res, err := series.Exp(x, series.WithTolerance(tol), series.WithMaxTerms(maxTerms))
				if err != nil && !errors.Is(err, series.ErrNoConvergence) {
					return err
				}
				if err != nil {
					fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
				want := math.Exp(x)
				table.Append([]string{
					arg,
					formatFloat(res.Value),
					formatFloat(want),
					strconv.FormatFloat(math.Abs(res.Value-want)/want, 'e', 2, 64),
					strconv.Itoa(res.Terms),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", series.DefaultTolerance, "stop once |term/sum| <= tol")
	cmd.Flags().IntVar(&maxTerms, "max-terms", series.DefaultMaxTerms, "maximum number of terms")

	return cmd
}
