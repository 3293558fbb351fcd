// Package prim implements the numeric operations of this module for the
// fixed-width Go integers, so that a single generic algorithm serves
// uint8 through uint64 and int8 through int64.
package prim

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// Width returns the bit width of T.
func Width[T constraints.Integer]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether T is a signed type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// Max returns the largest value of T.
func Max[T constraints.Integer]() T {
	w := Width[T]()
	if Signed[T]() {
		return T(uint64(1)<<(w-1) - 1)
	}
	return T(^uint64(0) >> (64 - w))
}

// Min returns the smallest value of T.
func Min[T constraints.Integer]() T {
	if Signed[T]() {
		return ^Max[T]()
	}
	return 0
}

// magnitude returns |x| as a uint64 and whether x is negative.
func magnitude[T constraints.Integer](x T) (uint64, bool) {
	if x < 0 {
		return uint64(-int64(x)), true
	}
	return uint64(x), false
}

// fromMagnitude returns m, negated when neg is set, truncated to T.
func fromMagnitude[T constraints.Integer](m uint64, neg bool) T {
	r := T(m)
	if neg {
		r = -r
	}
	return r
}

// LowMask returns a value of T with the low bits set. bits must not exceed
// the width of T; LowMask of the full width is -1 for signed types.
func LowMask[T constraints.Integer](bits uint64) T {
	w := Width[T]()
	if bits > w {
		panic(apperrors.Contract("prim.LowMask", apperrors.ErrDomain, "bits %d > width %d", bits, w))
	}
	if bits == w {
		return ^T(0)
	}
	return T(uint64(1)<<bits - 1)
}

// IsPowerOf2 reports whether x is a power of two.
func IsPowerOf2[T constraints.Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

func checkDivisor[T constraints.Integer](op string, d T) {
	if d == 0 {
		apperrors.PanicDivisionByZero(op)
	}
}
