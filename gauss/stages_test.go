// SPDX-License-Identifier: MIT
package gauss_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/gauss"
	"github.com/katalvlaran/lvnum/matrix"
)

func TestAugment(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{5, 6}, {7, 8}})

	aug, err := gauss.Augment(a, b)
	require.NoError(t, err)
	RequireClose(t, MustDense(t, [][]float64{{1, 2, 5, 6}, {3, 4, 7, 8}}), aug, 0, 0)

	// No aliasing with the operands.
	require.NoError(t, aug.Set(0, 0, 100))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = gauss.Augment(a, MustDense(t, [][]float64{{1}, {2}, {3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = gauss.Augment(MustDense(t, [][]float64{{1, 2}}), b)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = gauss.Augment(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEliminateLeavesInputIntact(t *testing.T) {
	a := MustDense(t, refA)
	b := MustDense(t, column(refB))
	aug, err := gauss.Augment(a, b)
	require.NoError(t, err)
	before := aug.CloneDense()

	el, err := gauss.Eliminate(aug, 3)
	require.NoError(t, err)
	RequireClose(t, before, aug, 0, 0)

	require.Equal(t, 3, el.Reduced.Rows())
	require.Equal(t, 4, el.Reduced.Cols())
	require.Equal(t, 2, el.Swaps)

	upper, err := matrix.Triu(el.LU, 0)
	require.NoError(t, err)
	ok, err := matrix.IsUpperTriangular(upper)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEliminateFirstMaxOnTies(t *testing.T) {
	// Rows 1 and 2 tie on |a(i,0)| = 3; the lower index wins.
	aug := MustDense(t, [][]float64{{1, 0, 0, 1}, {-3, 1, 0, 2}, {3, 0, 1, 3}})
	el, err := gauss.Eliminate(aug, 3)
	require.NoError(t, err)

	v, err := el.P.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "row 1 must be chosen as the first pivot")
}

func TestEliminateSwapsMultipliers(t *testing.T) {
	// Step 1 stores multipliers in column 0; step 2 swaps rows 1 and 2, which
	// must carry those multipliers along so that L·U = P·A.
	a := [][]float64{{4, 1, 2}, {2, 0.5, 3}, {1, 5, 1}}
	aug, err := gauss.Augment(MustDense(t, a), MustDense(t, [][]float64{{1}, {1}, {1}}))
	require.NoError(t, err)
	el, err := gauss.Eliminate(aug, 3)
	require.NoError(t, err)
	require.Equal(t, 1, el.Swaps)

	l, u, err := gauss.SplitLU(el.LU)
	require.NoError(t, err)
	RequireClose(t, MustMul(t, el.P, MustDense(t, a)), MustMul(t, l, u), 1e-12, 1e-12)
}

func TestEliminateDimensionChecks(t *testing.T) {
	aug := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := gauss.Eliminate(aug, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = gauss.Eliminate(aug, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = gauss.Eliminate(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSubstitute(t *testing.T) {
	// Upper-triangular with junk below the diagonal, which must be ignored.
	reduced := MustDense(t, [][]float64{
		{2, 1, 1, 5, 1},
		{9, 4, 2, 10, 0},
		{9, 9, 3, 6, 3},
	})
	before := reduced.CloneDense()
	x, err := gauss.Substitute(reduced, 3)
	require.NoError(t, err)
	RequireClose(t, MustDense(t, [][]float64{{0.75, 0.25}, {1.5, -0.5}, {2, 1}}), x, 0, 1e-15)
	RequireClose(t, before, reduced, 0, 0)

	_, err = gauss.Substitute(MustDense(t, [][]float64{{1, 2}, {3, 4}}), 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSplitLU(t *testing.T) {
	lu := MustDense(t, [][]float64{{2, 3}, {0.5, 4}})
	l, u, err := gauss.SplitLU(lu)
	require.NoError(t, err)
	RequireClose(t, MustDense(t, [][]float64{{1, 0}, {0.5, 1}}), l, 0, 0)
	RequireClose(t, MustDense(t, [][]float64{{2, 3}, {0, 4}}), u, 0, 0)

	_, _, err = gauss.SplitLU(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
