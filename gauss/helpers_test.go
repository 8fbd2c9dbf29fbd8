// SPDX-License-Identifier: MIT
// Package gauss_test contains shared fixtures for the solver tests.

package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// refA and refB are the three-equation reference system used across tests.
var (
	refA = [][]float64{{60, 920, 160}, {240, 40, 720}, {700, 40, 120}}
	refB = []float64{192, 720, 688}

	// refX is the exact solution {2324, 78, 1926}/2705.
	refX = []float64{2324.0 / 2705, 78.0 / 2705, 1926.0 / 2705}
)

const refDet = 432800000.0

// MustDense builds a *matrix.Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustMul returns a·b as *matrix.Dense or fails the test.
func MustMul(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	d, err := matrix.AsDense(p)
	require.NoError(t, err)

	return d
}

// RequireClose fails unless a and b agree within rtol/atol.
func RequireClose(t testing.TB, want, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// DiagonallyDominant returns a random n×n strictly diagonally dominant matrix
// and an n×m right-hand side. Such systems are non-singular and need no pivoting.
func DiagonallyDominant(n, m int, seed int64) (a, b [][]float64) {
	rng := rand.New(rand.NewSource(seed))
	a = make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		var off float64
		for j := range a[i] {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			a[i][j] = v
			if v < 0 {
				off -= v
			} else {
				off += v
			}
		}
		a[i][i] = off + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			a[i][i] = -a[i][i]
		}
	}
	b = make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, m)
		for j := range b[i] {
			b[i][j] = rng.Float64()*20 - 10
		}
	}

	return a, b
}

// residual returns max |A·X − B| over all entries.
func residual(t testing.TB, a [][]float64, x *matrix.Dense, b [][]float64) float64 {
	t.Helper()
	ax := MustMul(t, MustDense(t, a), x)
	diff, err := matrix.Sub(ax, MustDense(t, b))
	require.NoError(t, err)
	var worst float64
	diff.(*matrix.Dense).Do(func(_, _ int, v float64) bool {
		if v < 0 {
			v = -v
		}
		if v > worst {
			worst = v
		}
		return true
	})

	return worst
}

// column turns a vector into an n×1 row slice.
func column(v []float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, x := range v {
		out[i] = []float64{x}
	}

	return out
}
