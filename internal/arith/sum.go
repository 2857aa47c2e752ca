// Package arith implements the array summation exercise with explicit
// overflow handling.
//
// Sums are accumulated in 128 bits and checked once at the end, so the
// outcome (value or overflow) never depends on element order.
package arith

import (
	"math"
	"math/bits"

	apperrors "github.com/agbru/drills/internal/errors"
)

// DefaultValues is the fixed array summed when no input is given.
var DefaultValues = []int64{10, 20, 30, 40, 50}

// wide is a two's-complement 128-bit accumulator.
type wide struct {
	hi int64
	lo uint64
}

func (w *wide) add(x int64) {
	var carry uint64
	w.lo, carry = bits.Add64(w.lo, uint64(x), 0)
	w.hi += x>>63 + int64(carry)
}

// fits reports whether the accumulated value is representable as int64.
func (w wide) fits() bool {
	return w.hi == int64(w.lo)>>63
}

func accumulate(xs []int64) wide {
	var acc wide
	for _, x := range xs {
		acc.add(x)
	}
	return acc
}

// Sum returns the arithmetic sum of xs. An empty slice sums to zero. If the
// true sum does not fit in an int64, Sum returns an OverflowError.
func Sum(xs []int64) (int64, error) {
	acc := accumulate(xs)
	if !acc.fits() {
		return 0, apperrors.OverflowError{Operation: "sum", Bits: 64}
	}
	return int64(acc.lo), nil
}

// SaturatingSum returns the sum of xs clamped to [math.MinInt64, math.MaxInt64].
func SaturatingSum(xs []int64) int64 {
	acc := accumulate(xs)
	switch {
	case acc.fits():
		return int64(acc.lo)
	case acc.hi < 0:
		return math.MinInt64
	default:
		return math.MaxInt64
	}
}
