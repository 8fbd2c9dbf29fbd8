// SPDX-License-Identifier: MIT

// Package matrix - triangular extraction and structural predicates.
//
// Purpose:
//   - Tril/Triu mirror the usual "keep the k-th diagonal and below/above" semantics
//     so that factorizations can be split into explicit factors.
//   - IsUpperTriangular, IsUnitLowerTriangular and IsPermutation verify the
//     shape contracts of such factors within the numeric policy epsilon.

package matrix

import (
	"math"
)

const (
	opTril        = "Tril"
	opTriu        = "Triu"
	opIsUpper     = "IsUpperTriangular"
	opIsUnitLower = "IsUnitLowerTriangular"
	opIsPerm      = "IsPermutation"
)

// Tril returns a copy of m keeping elements on and below the k-th diagonal
// (j-i ≤ k) and zeroing the rest. k=0 keeps the main diagonal, k=-1 yields the
// strictly lower triangle.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Tril(m Matrix, k int) (*Dense, error) {
	return keepBand(m, opTril, func(i, j int) bool { return j-i <= k })
}

// Triu returns a copy of m keeping elements on and above the k-th diagonal
// (j-i ≥ k). k=0 keeps the main diagonal, k=1 yields the strictly upper triangle.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Triu(m Matrix, k int) (*Dense, error) {
	return keepBand(m, opTriu, func(i, j int) bool { return j-i >= k })
}

// keepBand materializes m as *Dense and zeroes every element for which keep is false.
func keepBand(m Matrix, tag string, keep func(i, j int) bool) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	// Kept cells are copied verbatim, so the numeric policy is not re-checked.
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if !keep(i, j) {
				out.data[i*out.c+j] = 0
			}
		}
	}

	return out, nil
}

// toDense returns an independent *Dense copy of any Matrix.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	// Generic copies keep whatever values the source holds.
	out.validateNaNInf = false
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// IsUpperTriangular reports whether every element strictly below the main
// diagonal satisfies |v| ≤ eps (eps from options, DefaultEpsilon otherwise).
// NaN below the diagonal is never considered zero.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(1).
func IsUpperTriangular(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsUpper, err)
	}
	eps := gatherOptions(opts...).eps
	n := m.Rows()
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opIsUpper, err)
			}
			if !(math.Abs(v) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUnitLowerTriangular reports whether m has ones on the diagonal and zeros
// above it, both within eps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(1).
func IsUnitLowerTriangular(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsUnitLower, err)
	}
	eps := gatherOptions(opts...).eps
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opIsUnitLower, err)
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if !(math.Abs(v-want) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsPermutation reports whether m is a permutation matrix: every entry is 0 or
// 1 within eps, with exactly one 1 per row and per column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n).
func IsPermutation(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsPerm, err)
	}
	eps := gatherOptions(opts...).eps
	n := m.Rows()
	colOnes := make([]int, n)
	for i := 0; i < n; i++ {
		rowOnes := 0
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opIsPerm, err)
			}
			switch {
			case math.Abs(v-1) <= eps:
				rowOnes++
				colOnes[j]++
			case math.Abs(v) <= eps:
			default:
				return false, nil
			}
		}
		if rowOnes != 1 {
			return false, nil
		}
	}
	for _, c := range colOnes {
		if c != 1 {
			return false, nil
		}
	}

	return true, nil
}
