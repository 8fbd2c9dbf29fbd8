// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/require"
)

func TestTrilTriu(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	strictLower, err := matrix.Tril(m, -1)
	require.NoError(t, err)
	CompareExact(t, MustRows(t, [][]float64{{0, 0, 0}, {4, 0, 0}, {7, 8, 0}}), strictLower)

	upper, err := matrix.Triu(m, 0)
	require.NoError(t, err)
	CompareExact(t, MustRows(t, [][]float64{{1, 2, 3}, {0, 5, 6}, {0, 0, 9}}), upper)

	// Source is untouched.
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	viaFallback, err := matrix.Triu(hide{m}, 0)
	require.NoError(t, err)
	CompareExact(t, upper, viaFallback)

	_, err = matrix.Tril(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTriangularPredicates(t *testing.T) {
	upper := MustRows(t, [][]float64{{2, 1}, {1e-12, 3}})
	ok, err := matrix.IsUpperTriangular(upper)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsUpperTriangular(upper, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.False(t, ok)

	lower := MustRows(t, [][]float64{{1, 0}, {0.5, 1}})
	ok, err = matrix.IsUnitLowerTriangular(lower)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsUnitLowerTriangular(upper)
	require.NoError(t, err)
	require.False(t, ok)

	lax, err := matrix.FromSlice(2, 2, []float64{1, 0, math.NaN(), 1}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.IsUpperTriangular(lax)
	require.NoError(t, err)
	require.False(t, ok, "NaN is never zero")

	_, err = matrix.IsUpperTriangular(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsPermutation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"cycle", [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}}, true},
		{"duplicate column", [][]float64{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}}, false},
		{"two ones in a row", [][]float64{{1, 1, 0}, {0, 0, 0}, {0, 0, 1}}, false},
		{"non binary", [][]float64{{0.5, 0, 0}, {0, 1, 0}, {0, 0, 1}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := matrix.IsPermutation(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}
