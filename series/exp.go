// SPDX-License-Identifier: MIT

package series

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoConvergence is returned when MaxTerms terms did not reach the tolerance.
	ErrNoConvergence = errors.New("series: no convergence")

	// ErrNonFinite is returned for NaN/±Inf arguments and for sums that overflow.
	ErrNonFinite = errors.New("series: non-finite value")
)

// Result is a series evaluation.
type Result struct {
	Value float64
	// Terms is the number of terms summed.
	Terms int
	// LastRatio is |term/sum| for the last term summed.
	LastRatio float64
}

// Exp approximates e^x by Σ xⁿ/n!.
//
// Each term is derived from the previous one as term·x/n. Summation stops once
// |term/sum| ≤ tolerance.
//
// Errors:
//   - ErrNonFinite for NaN/±Inf x or when the sum overflows.
//   - ErrNoConvergence after MaxTerms terms; the partial Result is returned.
func Exp(x float64, opts ...Option) (Result, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Result{}, errors.Wrapf(ErrNonFinite, "exp(%v)", x)
	}
	o := NewOptions(opts...)

	var res Result
	term := 1.0
	for n := 0; ; {
		res.Value += term
		n++
		res.Terms = n
		if math.IsInf(res.Value, 0) || math.IsNaN(res.Value) {
			return res, errors.Wrapf(ErrNonFinite, "exp(%v) overflowed after %d terms", x, n)
		}
		res.LastRatio = math.Abs(term / res.Value)
		if res.LastRatio <= o.tol {
			return res, nil
		}
		if n >= o.maxTerms {
			return res, errors.Wrapf(ErrNoConvergence, "exp(%v): %d terms, last ratio %g", x, n, res.LastRatio)
		}
		term *= x / float64(n)
	}
}
