// SPDX-License-Identifier: MIT

// Package gauss: functional configuration of the solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against defaults.

package gauss

import (
	"math"

	"github.com/katalvlaran/lvnum/matrix"
)

// PivotPolicy selects how a zero pivot is handled.
type PivotPolicy int

const (
	// PivotFailFast stops with a *PivotError when |pivot| ≤ tolerance.
	PivotFailFast PivotPolicy = iota
	// PivotPropagate divides anyway and lets ±Inf/NaN flow into the results.
	PivotPropagate
)

func (p PivotPolicy) String() string {
	switch p {
	case PivotFailFast:
		return "fail-fast"
	case PivotPropagate:
		return "propagate"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting enables partial pivoting.
	DefaultPivoting = true

	// DefaultSplitLU returns the combined LU matrix rather than explicit L and U.
	DefaultSplitLU = false

	// DefaultPivotPolicy rejects singular pivots.
	DefaultPivotPolicy = PivotFailFast

	// DefaultRelativePivotTolerance is the float64 machine epsilon. By default
	// a pivot is singular when |p| ≤ DefaultRelativePivotTolerance·n·max|a|.
	DefaultRelativePivotTolerance = 0x1p-52
)

const (
	panicToleranceInvalid    = "gauss: WithPivotTolerance: tol must be finite, non-negative"
	panicRelToleranceInvalid = "gauss: WithRelativePivotTolerance: rtol must be finite, non-negative"
	panicPolicyInvalid    = "gauss: WithPivotPolicy: unknown policy"
)

// Option mutates solver options. Last writer wins.
type Option func(*Options)

// Options is the effective solver configuration.
type Options struct {
	pivoting bool
	splitLU  bool
	policy   PivotPolicy
	tol      float64
	relative bool // tol is scaled by n·max|a|
}

// Pivoting reports whether partial pivoting is enabled.
func (o Options) Pivoting() bool { return o.pivoting }

// SplitLU reports whether explicit L and U are requested.
func (o Options) SplitLU() bool { return o.splitLU }

// Policy reports the zero-pivot policy.
func (o Options) Policy() PivotPolicy { return o.policy }

// Tolerance reports the configured singular-pivot tolerance. It is an
// absolute threshold unless RelativeTolerance reports true.
func (o Options) Tolerance() float64 { return o.tol }

// RelativeTolerance reports whether Tolerance is scaled by n·max|a|.
func (o Options) RelativeTolerance() bool { return o.relative }

// WithPivoting enables partial pivoting.
func WithPivoting() Option { return func(o *Options) { o.pivoting = true } }

// WithoutPivoting selects naive elimination; P stays the identity.
func WithoutPivoting() Option { return func(o *Options) { o.pivoting = false } }

// WithSplitLU requests explicit L (unit lower) and U (upper) in the Result.
func WithSplitLU() Option { return func(o *Options) { o.splitLU = true } }

// WithCombinedLU requests the combined LU matrix (default).
func WithCombinedLU() Option { return func(o *Options) { o.splitLU = false } }

// WithPropagate lets zero pivots propagate as ±Inf/NaN.
func WithPropagate() Option { return WithPivotPolicy(PivotPropagate) }

// WithFailFast rejects zero pivots with a *PivotError (default).
func WithFailFast() Option { return WithPivotPolicy(PivotFailFast) }

// WithPivotPolicy sets the zero-pivot policy. Panics on unknown values.
func WithPivotPolicy(p PivotPolicy) Option {
	if p != PivotFailFast && p != PivotPropagate {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithPivotTolerance sets an absolute threshold: pivots with |p| ≤ tol are
// singular. tol = 0 rejects exact zeros only. Only meaningful with
// PivotFailFast. Panics on NaN, ±Inf or negative tol.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol, o.relative = tol, false }
}

// WithRelativePivotTolerance sets a scale-relative threshold: pivots with
// |p| ≤ rtol·n·max|a| are singular, where max|a| is taken over the
// coefficient block being reduced. Panics on NaN, ±Inf or negative rtol.
func WithRelativePivotTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 {
		panic(panicRelToleranceInvalid)
	}

	return func(o *Options) { o.tol, o.relative = rtol, true }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func defaultOptions() Options {
	return Options{
		pivoting: DefaultPivoting,
		splitLU:  DefaultSplitLU,
		policy:   DefaultPivotPolicy,
		tol:      DefaultRelativePivotTolerance,
		relative: true,
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// numericPolicy maps the pivot policy onto the dense NaN/Inf policy of the
// working buffers.
func (o Options) numericPolicy() matrix.Option {
	if o.policy == PivotPropagate {
		return matrix.WithNoValidateNaNInf()
	}

	return matrix.WithValidateNaNInf()
}

// threshold resolves the effective singular-pivot threshold for an n×n block
// whose largest magnitude is scale.
func (o Options) threshold(n int, scale float64) float64 {
	if !o.relative {
		return o.tol
	}

	return o.tol * float64(n) * scale
}

// checkPivot returns a *PivotError when |v| ≤ threshold under the fail-fast
// policy. NaN is always singular.
func (o Options) checkPivot(stage Stage, k int, v, threshold float64) error {
	if o.policy == PivotPropagate || math.Abs(v) > threshold {
		return nil
	}

	return &PivotError{Stage: stage, Index: k, Value: v, Tolerance: threshold}
}

// maxAbs returns the largest |v| over rows[i][j] for i in [0,n) and j in
// [lo(i), n). NaN entries are skipped.
func maxAbs(rows [][]float64, n int, lo func(i int) int) float64 {
	var best float64
	for i := 0; i < n; i++ {
		for _, v := range rows[i][lo(i):n] {
			if v = math.Abs(v); v > best {
				best = v
			}
		}
	}

	return best
}
