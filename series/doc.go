// SPDX-License-Identifier: MIT

// Package series approximates functions by truncated power series.
//
// Exp sums the Taylor series of e^x term by term until the relative size of
// the last term, |term/sum|, drops to the tolerance (DefaultTolerance, 1e-16).
// The loop is bounded by MaxTerms; reaching the bound returns
// ErrNoConvergence together with the partial sum.
//
// The plain series loses accuracy for large negative x through cancellation.
// It is kept as written for teaching purposes; compare with math.Exp.
package series
