// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

const opSubstitute = "gauss.Substitute"

// Substitute runs backward substitution on a reduced n×(n+m) augmented matrix
// and returns the n×m solution. Only the upper triangle of the left block is
// read, so multipliers stored below the diagonal are ignored.
//
// For k = n-1..0, per right-hand column r:
//
//	x(k,r) = (b(k,r) − Σ_{j>k} u(k,j)·x(j,r)) / u(k,k)
//
// The default pivot threshold is relative to max|u| over the upper triangle.
// reduced is not modified.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when reduced is not
//     n×(n+m) with m ≥ 1.
//   - *PivotError (ErrSingularPivot) under PivotFailFast.
//
// Complexity:
//   - Time O(n²·m), Space O(n·(n+m)).
func Substitute(reduced *matrix.Dense, n int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(reduced); err != nil {
		return nil, errors.Wrap(err, opSubstitute)
	}
	if n <= 0 || reduced.Rows() != n || reduced.Cols() <= n {
		return nil, errors.Wrapf(matrix.ErrDimensionMismatch,
			"%s: %dx%d matrix for n=%d", opSubstitute, reduced.Rows(), reduced.Cols(), n)
	}

	work := reduced.CloneWithPolicy(o.numericPolicy())
	rows, err := rowViews(work)
	if err != nil {
		return nil, errors.Wrap(err, opSubstitute)
	}
	cols := work.Cols()
	limit := o.threshold(n, maxAbs(rows, n, func(i int) int { return i }))

	var j, k, r int
	var sum, diag float64
	for k = n - 1; k >= 0; k-- {
		row := rows[k]
		for r = n; r < cols; r++ {
			sum = 0
			for j = k + 1; j < n; j++ {
				sum += row[j] * rows[j][r]
			}
			row[r] -= sum
		}
		diag = row[k]
		if err = o.checkPivot(StageSubstitution, k, diag, limit); err != nil {
			return nil, err
		}
		for r = n; r < cols; r++ {
			row[r] /= diag
		}
	}

	x, err := work.Induced(seq(0, n), seq(n, cols))
	if err != nil {
		return nil, errors.Wrap(err, opSubstitute)
	}

	return x, nil
}
