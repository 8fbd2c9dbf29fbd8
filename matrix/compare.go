// SPDX-License-Identifier: MIT

// Package matrix - tolerance-aware comparison.

package matrix

import (
	"math"
)

const opAllClose = "AllClose"

// Default tolerances for AllClose, matching the common rtol/atol convention.
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// AllClose reports whether |a(i,j) − b(i,j)| ≤ atol + rtol·|b(i,j)| for every element.
// Negative tolerances are accepted and taken by absolute value. NaN never
// compares close; equal infinities do.
//
// Errors:
//   - ErrNaNInf for NaN/±Inf tolerances.
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if !closeEnough(da.data[k], db.data[k], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true // covers equal infinities
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// NaN is never equal to anything.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Equal(a, b Matrix) (bool, error) {
	return AllClose(a, b, 0, 0)
}
