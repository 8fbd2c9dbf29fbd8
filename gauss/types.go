// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/katalvlaran/lvnum/matrix"
)

// System is a validated linear system: A is n×n, B is n×m with m ≥ 1.
// VectorRHS records that B was supplied as a vector.
type System struct {
	A, B      *matrix.Dense
	N, M      int
	VectorRHS bool
}

// Elimination is the output of forward elimination.
type Elimination struct {
	// Reduced is the n×(n+m) augmented matrix with an upper-triangular left
	// block. Multipliers occupy the strictly lower part.
	Reduced *matrix.Dense
	// LU is the left n×n block of Reduced.
	LU *matrix.Dense
	// P is the row permutation with L·U = P·A.
	P *matrix.Dense
	// Swaps counts row interchanges.
	Swaps int
}

// Result is the outcome of Solve.
type Result struct {
	X    *matrix.Dense // n×m, always set
	XVec []float64     // set only when B was a vector

	LU   *matrix.Dense // set only when the combined form was requested
	L, U *matrix.Dense // set only with WithSplitLU

	P       *matrix.Dense // always set; identity without pivoting
	Swaps   int
	Pivoted bool
}
