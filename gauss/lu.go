// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

const opSplitLU = "gauss.SplitLU"

// SplitLU splits a combined LU matrix into L = tril(lu, -1) + I and
// U = triu(lu). Non-finite entries are carried over unchanged.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func SplitLU(lu *matrix.Dense) (L, U *matrix.Dense, err error) {
	if err = matrix.ValidateSquareNonNil(lu); err != nil {
		return nil, nil, errors.Wrap(err, opSplitLU)
	}
	lower, err := matrix.Tril(lu, -1)
	if err != nil {
		return nil, nil, errors.Wrap(err, opSplitLU)
	}
	for i := 0; i < lu.Rows(); i++ {
		if err = lower.Set(i, i, 1); err != nil {
			return nil, nil, errors.Wrap(err, opSplitLU)
		}
	}
	if U, err = matrix.Triu(lu, 0); err != nil {
		return nil, nil, errors.Wrap(err, opSplitLU)
	}

	return lower, U, nil
}

// Decomposition returns explicit L and U, splitting the combined LU on demand.
func (r *Result) Decomposition() (L, U *matrix.Dense, err error) {
	if r.L != nil && r.U != nil {
		return r.L, r.U, nil
	}

	return SplitLU(r.LU)
}

// Determinant returns det(A) = sign(P)·Π u(k,k), with sign(P) = (-1)^Swaps.
func (r *Result) Determinant() float64 {
	u := r.U
	if u == nil {
		u = r.LU
	}
	if u == nil {
		return 0
	}
	det := 1.0
	if r.Swaps%2 == 1 {
		det = -1
	}
	for k := 0; k < u.Rows(); k++ {
		v, _ := u.At(k, k)
		det *= v
	}

	return det
}
