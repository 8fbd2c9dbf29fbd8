// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate used by the
// solvers in this module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, row
//     interchanges (SwapRows), aliasing row access (RowView) and copy-based
//     submatrices (Induced).
//   - Kernels over the Matrix interface: Add, Sub, Mul, Transpose, MatVec.
//   - Triangular extraction (Tril, Triu) and structural predicates
//     (IsUpperTriangular, IsUnitLowerTriangular, IsPermutation).
//   - Tolerance-aware comparison (AllClose, Equal).
//
// Every kernel has a *Dense fast path and a generic At/Set fallback with the
// same loop order. Errors are sentinels (ErrNilMatrix, ErrNaNInf, ...) wrapped
// with the operation name; match them with errors.Is.
//
// A Dense rejects NaN/±Inf on Set by default. WithNoValidateNaNInf turns the
// policy off for callers that intentionally carry non-finite values.
package matrix
