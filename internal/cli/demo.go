// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/gauss"
	"github.com/katalvlaran/lvnum/matrix"
)

// Reference system of the demo.
var (
	demoA = [][]float64{{60, 920, 160}, {240, 40, 720}, {700, 40, 120}}
	demoB = []float64{192, 720, 688}
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Solve the reference 3×3 system with and without pivoting and compare with gonum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	a, err := matrix.FromRows(demoA)
	if err != nil {
		return err
	}
	if err = writeMatrix(w, "A", a); err != nil {
		return err
	}
	writeVector(w, "b", demoB)

	naive, err := gauss.SolveVector(demoA, demoB, gauss.WithoutPivoting())
	if err != nil {
		return errors.Wrap(err, "naive solve")
	}
	pivoted, err := gauss.SolveVector(demoA, demoB)
	if err != nil {
		return errors.Wrap(err, "pivoted solve")
	}
	ref, err := gonumSolve(demoA, demoB)
	if err != nil {
		return err
	}
	ax, err := matrix.MatVec(a, pivoted.XVec)
	if err != nil {
		return err
	}

	table := newTable(w, []string{"i", "x naive", "x pivoted", "x gonum", "(A·x)_i", "b_i"})
	for i := range demoB {
		table.Append([]string{
			strconv.Itoa(i),
			formatFloat(naive.XVec[i]),
			formatFloat(pivoted.XVec[i]),
			formatFloat(ref[i]),
			formatFloat(ax[i]),
			formatFloat(demoB[i]),
		})
	}
	table.Render()

	if err = writeMatrix(w, "P", pivoted.P); err != nil {
		return err
	}
	fprintf(w, "max |x pivoted - x gonum| = %s\n", formatFloat(maxAbsDiff(pivoted.XVec, ref)))

	return nil
}

// gonumSolve solves the same system with gonum's LU-based solver.
func gonumSolve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	flat := make([]float64, 0, n*n)
	for _, row := range a {
		flat = append(flat, row...)
	}
	var x mat.VecDense
	if err := x.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		return nil, errors.Wrap(err, "gonum solve")
	}

	return x.RawVector().Data, nil
}

func maxAbsDiff(a, b []float64) float64 {
	var worst float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}
