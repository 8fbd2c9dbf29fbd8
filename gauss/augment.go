// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

const opAugment = "gauss.Augment"

// Augment returns a fresh n×(n+m) matrix [A | B]. The result validates
// NaN/Inf only when both operands do.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDimensionMismatch when B's row count differs from A's.
//
// Complexity:
//   - Time O(n·(n+m)), Space O(n·(n+m)).
func Augment(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, errors.Wrap(err, opAugment)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, errors.Wrap(err, opAugment)
	}
	n, m := a.Rows(), b.Cols()
	if b.Rows() != n {
		return nil, errors.Wrapf(matrix.ErrDimensionMismatch, "%s: A has %d rows, b has %d", opAugment, n, b.Rows())
	}

	flat := make([]float64, 0, n*(n+m))
	for i := 0; i < n; i++ {
		ra, err := a.RowView(i)
		if err != nil {
			return nil, errors.Wrap(err, opAugment)
		}
		rb, err := b.RowView(i)
		if err != nil {
			return nil, errors.Wrap(err, opAugment)
		}
		flat = append(flat, ra...)
		flat = append(flat, rb...)
	}

	policy := matrix.WithNoValidateNaNInf()
	if a.ValidatesNaNInf() && b.ValidatesNaNInf() {
		policy = matrix.WithValidateNaNInf()
	}
	aug, err := matrix.FromSlice(n, n+m, flat, policy)
	if err != nil {
		return nil, errors.Wrap(err, opAugment)
	}

	return aug, nil
}
