// SPDX-License-Identifier: MIT
package gauss_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/gauss"
)

var (
	singularA = [][]float64{{1, 2}, {2, 4}}
	singularB = []float64{3, 6}

	// zeroLeadA is regular but has a zero leading pivot without row swaps.
	zeroLeadA = [][]float64{{0, 1}, {1, 1}}
	zeroLeadB = []float64{1, 2}
)

func TestFailFastSingular(t *testing.T) {
	_, err := gauss.SolveVector(singularA, singularB)
	require.ErrorIs(t, err, gauss.ErrSingularPivot)

	var pe *gauss.PivotError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, gauss.StageSubstitution, pe.Stage)
	require.Equal(t, 1, pe.Index)
	require.Equal(t, 0.0, pe.Value)
}

func TestFailFastZeroLeadingPivot(t *testing.T) {
	_, err := gauss.SolveVector(zeroLeadA, zeroLeadB, gauss.WithoutPivoting())
	var pe *gauss.PivotError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, gauss.StageElimination, pe.Stage)
	require.Equal(t, 0, pe.Index)

	// Pivoting removes the zero pivot.
	res, err := gauss.SolveVector(zeroLeadA, zeroLeadB)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, res.XVec, 1e-15)
}

func TestPropagateLetsNonFiniteThrough(t *testing.T) {
	res, err := gauss.SolveVector(singularA, singularB, gauss.WithPropagate())
	require.NoError(t, err)
	for _, v := range res.XVec {
		require.True(t, math.IsNaN(v), "got %v", res.XVec)
	}

	res, err = gauss.SolveVector(zeroLeadA, zeroLeadB, gauss.WithoutPivoting(), gauss.WithPropagate())
	require.NoError(t, err)
	mult, err := res.LU.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(mult, 1))
	require.True(t, math.IsNaN(res.XVec[1]))

	// Split factors carry the non-finite multiplier as well.
	l, _, err := res.Decomposition()
	require.NoError(t, err)
	v, err := l.At(1, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestPivotTolerance(t *testing.T) {
	nearly := [][]float64{{1, 1}, {1, 1 + 1e-12}}
	b := []float64{2, 2}

	_, err := gauss.SolveVector(nearly, b)
	require.NoError(t, err)

	_, err = gauss.SolveVector(nearly, b, gauss.WithPivotTolerance(1e-9))
	var pe *gauss.PivotError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 1e-9, pe.Tolerance)
	require.Contains(t, err.Error(), "singular pivot")

	// Tolerance is ignored when propagating.
	_, err = gauss.SolveVector(nearly, b, gauss.WithPivotTolerance(1e-9), gauss.WithPropagate())
	require.NoError(t, err)
}

// rankTwo is singular, but elimination leaves rounding residue rather than an
// exact zero in u(2,2).
var rankTwo = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

func scaled(a [][]float64, s float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v * s
		}
	}

	return out
}

func TestDefaultToleranceCatchesRoundingResidue(t *testing.T) {
	b := []float64{1, 0, 0}

	_, err := gauss.SolveVector(rankTwo, b)
	require.ErrorIs(t, err, gauss.ErrSingularPivot)
	var pe *gauss.PivotError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, gauss.StageSubstitution, pe.Stage)
	require.Equal(t, 2, pe.Index)
	require.NotZero(t, pe.Value)
	require.InDelta(t, gauss.DefaultRelativePivotTolerance*3*9, pe.Tolerance, 1e-30)

	// An exact-zero threshold lets the residue through and x explodes.
	res, err := gauss.SolveVector(rankTwo, b, gauss.WithPivotTolerance(0))
	require.NoError(t, err)
	require.Greater(t, math.Abs(res.XVec[1]), 1e15)
}

func TestDefaultToleranceFollowsScale(t *testing.T) {
	// The same singular matrix at a tiny scale is still rejected.
	_, err := gauss.SolveVector(scaled(rankTwo, 1e-20), []float64{1, 0, 0})
	require.ErrorIs(t, err, gauss.ErrSingularPivot)

	// A well-conditioned matrix at that scale is not.
	tiny := scaled([][]float64{{2, 1}, {1, 3}}, 1e-200)
	res, err := gauss.SolveVector(tiny, []float64{3e-200, 4e-200})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, res.XVec, 1e-12)

	// Relative tolerance can be tuned explicitly.
	_, err = gauss.SolveVector([][]float64{{1, 1}, {1, 1 + 1e-12}}, []float64{2, 2},
		gauss.WithRelativePivotTolerance(1e-9))
	require.ErrorIs(t, err, gauss.ErrSingularPivot)
}
