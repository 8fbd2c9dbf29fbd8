// SPDX-License-Identifier: MIT
// Package matrix_test covers the thin constructors and copies in api.go.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

// TestZerosConstructors checks NewZeros and ZerosLike shapes and contents.
func TestZerosConstructors(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", z.String())

	_, err = matrix.NewZeros(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	src := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	like, err := matrix.ZerosLike(hide{src})
	require.NoError(t, err)
	require.Equal(t, 3, like.Rows())
	require.Equal(t, 2, like.Cols())
	eq, err := matrix.Equal(like, MustDense(t, 3, 2))
	require.NoError(t, err)
	require.True(t, eq)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestIdentityLike requires a square template.
func TestIdentityLike(t *testing.T) {
	id, err := matrix.IdentityLike(MustDense(t, 3, 3))
	require.NoError(t, err)
	ok, err := matrix.IsPermutation(id)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestCloneMatrixIsIndependent verifies the copy does not alias its source.
func TestCloneMatrixIsIndependent(t *testing.T) {
	src := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := matrix.CloneMatrix(src)
	require.IsType(t, &matrix.Dense{}, cp)

	require.NoError(t, cp.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, src, 0, 0))
	require.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}
