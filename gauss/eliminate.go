// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

const opEliminate = "gauss.Eliminate"

// Eliminate reduces the left n×n block of the n×(n+m) augmented matrix aug to
// upper-triangular form and carries the right-hand columns along.
//
// Implementation, for k = 0..n-2:
//   - Stage 1 (pivoting only): pick the row in k..n-1 with the largest |a(i,k)|,
//     lowest index on ties, and swap it with row k in the working matrix and in P.
//   - Stage 2: check the pivot against the policy. The default threshold is
//     relative to max|a| over the input coefficient block.
//   - Stage 3: for i > k store m_i = a(i,k)/a(k,k) at (i,k) and subtract
//     m_i·row k from columns k+1.. of row i.
//
// aug is not modified; the result owns fresh buffers.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when aug is not n×(n+m).
//   - *PivotError (ErrSingularPivot) under PivotFailFast.
//
// Complexity:
//   - Time O(n²·(n+m)), Space O(n·(n+m)).
func Eliminate(aug *matrix.Dense, n int, opts ...Option) (*Elimination, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, errors.Wrap(err, opEliminate)
	}
	if n <= 0 || aug.Rows() != n || aug.Cols() < n {
		return nil, errors.Wrapf(matrix.ErrDimensionMismatch,
			"%s: %dx%d matrix for n=%d", opEliminate, aug.Rows(), aug.Cols(), n)
	}

	work := aug.CloneWithPolicy(o.numericPolicy())
	p, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, errors.Wrap(err, opEliminate)
	}
	rows, err := rowViews(work)
	if err != nil {
		return nil, errors.Wrap(err, opEliminate)
	}
	cols := work.Cols()
	limit := o.threshold(n, maxAbs(rows, n, func(int) int { return 0 }))

	swaps := 0
	var i, j, k int
	for k = 0; k < n-1; k++ {
		if o.pivoting {
			kmax, best := k, math.Abs(rows[k][k])
			for i = k + 1; i < n; i++ {
				if v := math.Abs(rows[i][k]); v > best {
					kmax, best = i, v
				}
			}
			if kmax != k {
				if err = work.SwapRows(k, kmax); err != nil {
					return nil, errors.Wrap(err, opEliminate)
				}
				if err = p.SwapRows(k, kmax); err != nil {
					return nil, errors.Wrap(err, opEliminate)
				}
				swaps++
			}
		}

		pivotRow := rows[k]
		if err = o.checkPivot(StageElimination, k, pivotRow[k], limit); err != nil {
			return nil, err
		}
		for i = k + 1; i < n; i++ {
			row := rows[i]
			mult := row[k] / pivotRow[k]
			row[k] = mult
			for j = k + 1; j < cols; j++ {
				row[j] -= mult * pivotRow[j]
			}
		}
	}

	lu, err := work.Induced(seq(0, n), seq(0, n))
	if err != nil {
		return nil, errors.Wrap(err, opEliminate)
	}

	return &Elimination{Reduced: work, LU: lu, P: p, Swaps: swaps}, nil
}

// rowViews returns aliasing views of every row of m. Views address row
// positions, so they stay valid across SwapRows.
func rowViews(m *matrix.Dense) ([][]float64, error) {
	rows := make([][]float64, m.Rows())
	var err error
	for i := range rows {
		if rows[i], err = m.RowView(i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// seq returns [from, to).
func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}
