// SPDX-License-Identifier: MIT

// Package gauss solves dense real linear systems A·X = B by Gaussian
// elimination with optional partial pivoting, and exposes the LU
// decomposition produced along the way.
//
// Pipeline (each stage is exported and usable on its own):
//
//	Validate  → shape checks, deep copies into *matrix.Dense (System)
//	Augment   → fresh n×(n+m) matrix [A | B]
//	Eliminate → upper-triangular reduction, multipliers below the diagonal,
//	            permutation P tracking every row interchange (Elimination)
//	Substitute→ backward substitution over all right-hand-side columns
//	Solve     → composes the above into a Result
//
// Pivoting. With pivoting on (the default) the pivot at step k is the row in
// k..n-1 with the largest |a(i,k)|; ties go to the lowest row index. Rows are
// swapped across the whole augmented matrix, including multipliers already
// stored in earlier columns, so that at the end L·U = P·A.
//
// Zero pivots. The default PivotFailFast policy returns a *PivotError (matching
// ErrSingularPivot) when |pivot| ≤ tolerance (default 0, exact zero only; NaN
// always fails). WithPropagate lets the division proceed and ±Inf/NaN flow
// into the outputs instead.
//
// Ownership. Every stage copies its input before mutating. Callers never
// observe writes to their buffers, and results never alias the inputs.
//
// Results. Result is a tagged struct: X is always set; XVec only when B was a
// vector; LU when the decomposition is combined; L and U when WithSplitLU is
// requested; P always.
//
// Errors:
//   - ErrInvalidShape via *ShapeError (Kind names the failed check).
//   - ErrSingularPivot via *PivotError (fail-fast policy).
//   - matrix.ErrNaNInf for non-finite input values.
//
// Complexity: O(n²·(n+m)) time, O(n·(n+m)) space per call. Calls share no
// state and are safe to run concurrently.
package gauss
