// SPDX-License-Identifier: MIT

package numrep

import "github.com/cockroachdb/errors"

var (
	// ErrNonFinite is returned for NaN and ±Inf inputs.
	ErrNonFinite = errors.New("numrep: value is not finite")

	// ErrExponentRange is returned when |e| does not fit the 10 exponent bits.
	ErrExponentRange = errors.New("numrep: exponent out of range")

	// ErrBase is returned for a base outside [MinBase, MaxBase].
	ErrBase = errors.New("numrep: unsupported base")
)
