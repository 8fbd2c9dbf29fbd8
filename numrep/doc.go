// SPDX-License-Identifier: MIT

// Package numrep renders numbers as sign-prefixed digit strings.
//
//	DecimalStringInt(173)      = "0 173"
//	BinaryStringInt(-173)      = "1 10101101"
//	BinaryStringFloat64(173)   = "0 0 0000001000 10101101000…"
//
// Integer strings are "<sign> <digits>" with sign 0 for non-negative and 1 for
// negative values. Digits are extracted most significant first by repeated
// comparison against powers of the base.
//
// BinaryStringFloat64 writes x = (−1)^s · f · 2^e with f in [0.5, 1) as
// "<s> <sign of e> <10 bits of |e|> <53 bits of f>", where the significand
// bits weigh 2^-1 … 2^-53. Zero is rendered with a zero exponent and zero
// significand. NaN and ±Inf have no such form and return ErrNonFinite.
package numrep
