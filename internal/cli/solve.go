// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/gauss"
)

type solveFlags struct {
	noPivot   bool
	splitLU   bool
	propagate bool
	pivotTol  float64
	pivotRTol float64
	format    outputFormat
}

func (f *solveFlags) options() []gauss.Option {
	// An absolute tolerance replaces the relative one when given.
	opts := []gauss.Option{gauss.WithRelativePivotTolerance(f.pivotRTol)}
	if f.pivotTol >= 0 {
		opts = append(opts, gauss.WithPivotTolerance(f.pivotTol))
	}
	if f.noPivot {
		opts = append(opts, gauss.WithoutPivoting())
	}
	if f.splitLU {
		opts = append(opts, gauss.WithSplitLU())
	}
	if f.propagate {
		opts = append(opts, gauss.WithPropagate())
	}

	return opts
}

func newSolveCommand() *cobra.Command {
	flags := &solveFlags{pivotTol: -1, format: formatTable}
	cmd := &cobra.Command{
		Use:   "solve <system file>",
		Short: "Solve A·x = b from a YAML or JSON file with keys a and b",
		Long: `Solves A·x = b by Gaussian elimination.

The file holds the coefficient matrix under "a" and the right-hand side under
"b", either as a vector or as a list of rows:

  a: [[60, 920, 160], [240, 40, 720], [700, 40, 120]]
  b: [192, 720, 688]
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("pivot-tol") && (!(flags.pivotTol >= 0) || math.IsInf(flags.pivotTol, 0)) {
				return errors.Newf("--pivot-tol must be finite and non-negative, got %g", flags.pivotTol)
			}
			if !(flags.pivotRTol >= 0) || math.IsInf(flags.pivotRTol, 0) {
				return errors.Newf("--pivot-rtol must be finite and non-negative, got %g", flags.pivotRTol)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readSystemFile(args[0])
			if err != nil {
				return err
			}
			res, err := gauss.Solve(a, b, flags.options()...)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, flags.format)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&flags.noPivot, "no-pivot", false, "disable partial pivoting")
	f.BoolVar(&flags.splitLU, "split-lu", false, "print explicit L and U instead of the combined LU matrix")
	f.BoolVar(&flags.propagate, "propagate", false, "let zero pivots propagate as Inf/NaN instead of failing")
	f.Float64Var(&flags.pivotTol, "pivot-tol", -1, "absolute threshold: pivots with |p| <= tol are singular (overrides --pivot-rtol)")
	f.Float64Var(&flags.pivotRTol, "pivot-rtol", gauss.DefaultRelativePivotTolerance, "relative threshold: pivots with |p| <= rtol·n·max|a| are singular")
	f.Var(&flags.format, "format", "output format: table or yaml")

	return cmd
}

// resultDoc is the YAML form of a gauss.Result.
type resultDoc struct {
	X           interface{} `yaml:"x"`
	LU          [][]float64 `yaml:"lu,omitempty"`
	L           [][]float64 `yaml:"l,omitempty"`
	U           [][]float64 `yaml:"u,omitempty"`
	P           [][]float64 `yaml:"p"`
	Swaps       int         `yaml:"swaps"`
	Pivoted     bool        `yaml:"pivoted"`
	Determinant float64     `yaml:"determinant"`
}

func writeResult(w io.Writer, res *gauss.Result, format outputFormat) error {
	if format == formatYAML {
		doc := resultDoc{Swaps: res.Swaps, Pivoted: res.Pivoted, Determinant: res.Determinant()}
		var err error
		if res.XVec != nil {
			doc.X = res.XVec
		} else if doc.X, err = rowsOrNil(res.X); err != nil {
			return err
		}
		if doc.LU, err = rowsOrNil(res.LU); err != nil {
			return err
		}
		if doc.L, err = rowsOrNil(res.L); err != nil {
			return err
		}
		if doc.U, err = rowsOrNil(res.U); err != nil {
			return err
		}
		if doc.P, err = rowsOrNil(res.P); err != nil {
			return err
		}
		return writeYAML(w, doc)
	}

	if res.XVec != nil {
		writeVector(w, "x", res.XVec)
	} else if err := writeMatrix(w, "X", res.X); err != nil {
		return err
	}
	if res.LU != nil {
		if err := writeMatrix(w, "LU", res.LU); err != nil {
			return err
		}
	} else {
		if err := writeMatrix(w, "L", res.L); err != nil {
			return err
		}
		if err := writeMatrix(w, "U", res.U); err != nil {
			return err
		}
	}
	if err := writeMatrix(w, "P", res.P); err != nil {
		return err
	}
	fprintf(w, "swaps: %d  pivoting: %t  det(A): %s\n", res.Swaps, res.Pivoted, formatFloat(res.Determinant()))

	return nil
}
