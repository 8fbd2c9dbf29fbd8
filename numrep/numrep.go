// SPDX-License-Identifier: MIT

package numrep

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Supported bases for IntString.
const (
	MinBase = 2
	MaxBase = 16
)

const (
	// ExponentBits is the number of magnitude bits written for the exponent.
	ExponentBits = 10
	// SignificandBits is the number of fraction bits written for the significand.
	SignificandBits = 53

	maxExponent = 1<<ExponentBits - 1
	digits      = "0123456789abcdef"
)

// DecimalStringInt returns x as "<sign> <decimal digits>".
func DecimalStringInt(x int64) string {
	s, _ := IntString(x, 10)
	return s
}

// BinaryStringInt returns x as "<sign> <binary digits>".
func BinaryStringInt(x int64) string {
	s, _ := IntString(x, 2)
	return s
}

// IntString returns x in the given base as "<sign> <digits>". Zero renders
// as "0 0".
//
// Errors:
//   - ErrBase when base is outside [MinBase, MaxBase].
func IntString(x int64, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", errors.Wrapf(ErrBase, "base %d", base)
	}
	sign, mag := byte('0'), uint64(x)
	if x < 0 {
		sign, mag = '1', uint64(-(x + 1))+1
	}

	b := uint64(base)
	// Largest power of base not exceeding mag.
	place := uint64(1)
	for mag/place >= b {
		place *= b
	}

	var sb strings.Builder
	sb.WriteByte(sign)
	sb.WriteByte(' ')
	for ; place > 0; place /= b {
		d := mag / place
		sb.WriteByte(digits[d])
		mag -= d * place
	}

	return sb.String(), nil
}

// BinaryStringFloat64 returns the sign/exponent/significand layout of x.
//
// Errors:
//   - ErrNonFinite for NaN and ±Inf.
//   - ErrExponentRange when |e| > 1023: |x| ≥ 2^1023 or subnormal.
func BinaryStringFloat64(x float64) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", errors.Wrapf(ErrNonFinite, "%v", x)
	}
	sign := byte('0')
	if x < 0 {
		sign = '1'
		x = -x
	}
	frac, e := 0.0, 0
	if x != 0 {
		frac, e = math.Frexp(x)
	}
	expSign := byte('0')
	if e < 0 {
		expSign = '1'
		e = -e
	}
	if e > maxExponent {
		return "", errors.Wrapf(ErrExponentRange, "|e| = %d exceeds %d", e, maxExponent)
	}

	var sb strings.Builder
	sb.Grow(4 + ExponentBits + 1 + SignificandBits)
	sb.WriteByte(sign)
	sb.WriteByte(' ')
	sb.WriteByte(expSign)
	sb.WriteByte(' ')
	for n := ExponentBits - 1; n >= 0; n-- {
		sb.WriteByte('0' + byte(e>>n&1))
	}
	sb.WriteByte(' ')
	// frac is exact in binary, so doubling peels off one bit at a time.
	for n := 0; n < SignificandBits; n++ {
		frac *= 2
		if frac >= 1 {
			sb.WriteByte('1')
			frac--
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String(), nil
}
