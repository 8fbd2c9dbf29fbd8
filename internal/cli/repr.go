// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/numrep"
)

func newReprCommand() *cobra.Command {
	var asFloat bool
	cmd := &cobra.Command{
		Use:   "repr <x>...",
		Short: "Print decimal and binary digit strings, or the float64 layout with --float",
		Long: `Prints "<sign> <digits>" strings for integers. Inputs may use 0b, 0o and
0x prefixes; fractional inputs are truncated toward zero. With --float, prints
"<sign> <exponent sign> <exponent bits> <significand bits>" instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asFloat {
				table := newTable(cmd.OutOrStdout(), []string{"x", "float64"})
				for _, arg := range args {
					x, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return errors.Wrapf(err, "parse %q", arg)
					}
					s, err := numrep.BinaryStringFloat64(x)
					if err != nil {
						return err
					}
					table.Append([]string{arg, s})
				}
				table.Render()
				return nil
			}

			table := newTable(cmd.OutOrStdout(), []string{"x", "dec", "bin"})
			for _, arg := range args {
				x, err := parseInt(arg)
				if err != nil {
					return err
				}
				table.Append([]string{arg, numrep.DecimalStringInt(x), numrep.BinaryStringInt(x)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&asFloat, "float", false, "print the IEEE-754 double layout")

	return cmd
}

// parseInt accepts Go integer literals (with base prefixes) and truncates
// decimal fractions toward zero.
func parseInt(s string) (int64, error) {
	if x, err := strconv.ParseInt(s, 0, 64); err == nil {
		return x, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", s)
	}
	f = math.Trunc(f)
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.Newf("parse %q: out of int64 range", s)
	}

	return int64(f), nil
}
