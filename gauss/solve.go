// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvnum/matrix"
)

const opSolve = "gauss.Solve"

// Solve solves A·X = B by Gaussian elimination.
//
// Options: WithPivoting/WithoutPivoting (default pivoting), WithSplitLU,
// WithPropagate/WithFailFast (default fail-fast), WithPivotTolerance.
//
// When no pivot is singular, L·U = P·A and A·X = B up to rounding.
//
// Errors:
//   - ErrInvalidShape (*ShapeError), matrix.ErrNaNInf from validation.
//   - ErrSingularPivot (*PivotError) under the fail-fast policy.
func Solve(a, b Array, opts ...Option) (*Result, error) {
	sys, err := Validate(a, b)
	if err != nil {
		return nil, errors.Wrap(err, opSolve)
	}

	return SolveSystem(sys, opts...)
}

// SolveSystem runs augmentation, elimination and substitution on an already
// validated System. sys is not modified.
func SolveSystem(sys *System, opts ...Option) (*Result, error) {
	if sys == nil {
		return nil, errors.Wrap(matrix.ErrNilMatrix, opSolve)
	}
	o := gatherOptions(opts...)

	aug, err := Augment(sys.A, sys.B)
	if err != nil {
		return nil, errors.Wrap(err, opSolve)
	}
	el, err := Eliminate(aug, sys.N, opts...)
	if err != nil {
		return nil, errors.Wrap(err, opSolve)
	}

	res := &Result{P: el.P, Swaps: el.Swaps, Pivoted: o.pivoting}
	if o.splitLU {
		if res.L, res.U, err = SplitLU(el.LU); err != nil {
			return nil, errors.Wrap(err, opSolve)
		}
	} else {
		res.LU = el.LU
	}

	if res.X, err = Substitute(el.Reduced, sys.N, opts...); err != nil {
		return nil, errors.Wrap(err, opSolve)
	}
	if sys.VectorRHS {
		if res.XVec, err = matrix.Column(res.X, 0); err != nil {
			return nil, errors.Wrap(err, opSolve)
		}
	}

	return res, nil
}

// SolveVector solves A·x = b for row-sliced A and vector b.
func SolveVector(a [][]float64, b []float64, opts ...Option) (*Result, error) {
	return Solve(Rows(a), Vector(b...), opts...)
}

// SolveMatrix solves A·X = B for row-sliced A and B.
func SolveMatrix(a, b [][]float64, opts ...Option) (*Result, error) {
	return Solve(Rows(a), Rows(b), opts...)
}

// Inverse returns A⁻¹ by solving against the identity.
func Inverse(a [][]float64, opts ...Option) (*matrix.Dense, error) {
	n := len(a)
	id := make([]float64, n*n)
	for i := 0; i < n; i++ {
		id[i*n+i] = 1
	}
	res, err := Solve(Rows(a), Array{Shape: []int{n, n}, Data: id}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "gauss.Inverse")
	}

	return res.X, nil
}

// Solution returns X shaped like the original B: 1-D when B was a vector.
//
// Errors:
//   - matrix.ErrNilMatrix when the Result holds no solution (e.g. zero value).
func (r *Result) Solution() (Array, error) {
	if r.XVec != nil {
		return Vector(r.XVec...), nil
	}
	rows, err := matrix.ToRows(r.X)
	if err != nil {
		return Array{}, errors.Wrap(err, "gauss.Result.Solution")
	}

	return Rows(rows), nil
}
