// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, MustRows(t, [][]float64{{11, 22}, {33, 44}}), sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, MustRows(t, [][]float64{{9, 18}, {27, 36}}), diff)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, MustRows(t, [][]float64{{58, 64}, {139, 154}}), p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, MustRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), at)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFastPathMatchesFallback asserts the *Dense fast paths and the generic
// At/Set loops agree bit-for-bit.
func TestFastPathMatchesFallback(t *testing.T) {
	const n = 7
	a, b := MustDense(t, n, n), MustDense(t, n, n)
	RandomFill(t, a, 11)
	RandomFill(t, b, 22)

	type binary func(x, y matrix.Matrix) (matrix.Matrix, error)
	for name, op := range map[string]binary{"Add": matrix.Add, "Sub": matrix.Sub, "Mul": matrix.Mul} {
		fast, err := op(a, b)
		require.NoError(t, err, name)
		slow, err := op(hide{a}, hide{b})
		require.NoError(t, err, name)
		ok, err := matrix.AllClose(fast, slow, 0, 1e-12)
		require.NoError(t, err, name)
		require.True(t, ok, name)
	}

	fast, err := matrix.Transpose(a)
	require.NoError(t, err)
	slow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, fast, slow)

	x := []float64{1, -2, 3, -4, 5, -6, 7}
	yf, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	ys, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	require.Equal(t, yf, ys)
}

func TestIdentityIsNeutral(t *testing.T) {
	a := MustDense(t, 4, 4)
	RandomFill(t, a, 5)
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	p, err := matrix.Product(a, id)
	require.NoError(t, err)
	CompareExact(t, a, p)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
