// SPDX-License-Identifier: MIT

package series

import "math"

const (
	// DefaultTolerance is the relative term size at which summation stops.
	DefaultTolerance = 1e-16

	// DefaultMaxTerms bounds the number of summed terms.
	DefaultMaxTerms = 2048
)

const (
	panicToleranceInvalid = "series: WithTolerance: tol must be finite, non-negative"
	panicMaxTermsInvalid  = "series: WithMaxTerms: n must be >= 1"
)

// Option mutates series options.
type Option func(*Options)

// Options is the effective configuration of a series evaluation.
type Options struct {
	tol      float64
	maxTerms int
}

// Tolerance reports the stopping tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// MaxTerms reports the term budget.
func (o Options) MaxTerms() int { return o.maxTerms }

// WithTolerance sets the relative stopping tolerance. Panics on NaN, ±Inf or
// negative values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxTerms bounds the number of summed terms. Panics when n < 1.
func WithMaxTerms(n int) Option {
	if n < 1 {
		panic(panicMaxTermsInvalid)
	}

	return func(o *Options) { o.maxTerms = n }
}

// NewOptions resolves setters against the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, maxTerms: DefaultMaxTerms}
	for _, set := range opts {
		set(&o)
	}

	return o
}
