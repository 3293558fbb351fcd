package prim

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// The power-of-two operations mask instead of dividing. pow must not exceed
// the width of T, and inputs are assumed reduced modulo 2^pow.

func checkPow[T constraints.Unsigned](op string, pow uint64) {
	if w := Width[T](); pow > w {
		panic(apperrors.Contract(op, apperrors.ErrDomain, "pow %d > width %d", pow, w))
	}
}

// ModPowerOf2 returns x mod 2^pow. Any pow is accepted.
func ModPowerOf2[T constraints.Unsigned](x T, pow uint64) T {
	if pow >= Width[T]() {
		return x
	}
	return x & LowMask[T](pow)
}

// ModPowerOf2IsReduced reports whether x < 2^pow.
func ModPowerOf2IsReduced[T constraints.Unsigned](x T, pow uint64) bool {
	if pow >= Width[T]() {
		return true
	}
	return x>>pow == 0
}

// ModPowerOf2Neg returns -x mod 2^pow.
func ModPowerOf2Neg[T constraints.Unsigned](x T, pow uint64) T {
	checkPow[T]("prim.ModPowerOf2Neg", pow)
	return ModPowerOf2(-x, pow)
}

// ModPowerOf2Add returns (x + y) mod 2^pow.
func ModPowerOf2Add[T constraints.Unsigned](x, y T, pow uint64) T {
	checkPow[T]("prim.ModPowerOf2Add", pow)
	return ModPowerOf2(x+y, pow)
}

// ModPowerOf2Sub returns (x - y) mod 2^pow.
func ModPowerOf2Sub[T constraints.Unsigned](x, y T, pow uint64) T {
	checkPow[T]("prim.ModPowerOf2Sub", pow)
	return ModPowerOf2(x-y, pow)
}

// ModPowerOf2Mul returns (x * y) mod 2^pow.
func ModPowerOf2Mul[T constraints.Unsigned](x, y T, pow uint64) T {
	checkPow[T]("prim.ModPowerOf2Mul", pow)
	return ModPowerOf2(x*y, pow)
}

// ModPowerOf2Square returns x^2 mod 2^pow.
func ModPowerOf2Square[T constraints.Unsigned](x T, pow uint64) T {
	return ModPowerOf2Mul(x, x, pow)
}

// ModPowerOf2Pow returns x^exp mod 2^pow.
func ModPowerOf2Pow[T constraints.Unsigned](x T, exp, pow uint64) T {
	checkPow[T]("prim.ModPowerOf2Pow", pow)
	if pow == 0 {
		return 0
	}
	r := T(1)
	for i := bits.Len64(exp); i > 0; i-- {
		r *= r
		if exp>>(i-1)&1 == 1 {
			r *= x
		}
	}
	return ModPowerOf2(r, pow)
}
