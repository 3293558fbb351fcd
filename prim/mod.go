package prim

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/agbru/mpint/internal/limb"
)

// The modular operations below assume their inputs are already reduced
// modulo m.

// ModAdd returns (x + y) mod m.
func ModAdd[T constraints.Unsigned](x, y, m T) T {
	if x >= m-y {
		return x - (m - y)
	}
	return x + y
}

// ModSub returns (x - y) mod m.
func ModSub[T constraints.Unsigned](x, y, m T) T {
	if x >= y {
		return x - y
	}
	return m - y + x
}

// ModNeg returns (m - x) mod m.
func ModNeg[T constraints.Unsigned](x, m T) T {
	if x == 0 {
		return 0
	}
	return m - x
}

// ModMul returns (x * y) mod m.
func ModMul[T constraints.Unsigned](x, y, m T) T {
	checkDivisor("prim.ModMul", m)
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	_, r := bits.Div64(hi, lo, uint64(m))
	return T(r)
}

// ModPow returns x^exp mod m.
func ModPow[T constraints.Unsigned](x T, exp uint64, m T) T {
	checkDivisor("prim.ModPow", m)
	if m == 1 {
		return 0
	}
	r := T(1)
	for i := bits.Len64(exp); i > 0; i-- {
		r = ModMul(r, r, m)
		if exp>>(i-1)&1 == 1 {
			r = ModMul(r, x, m)
		}
	}
	return r
}

// ModSquare returns x^2 mod m.
func ModSquare[T constraints.Unsigned](x, m T) T {
	return ModPow(x, 2, m)
}

// ModData is a modulus prepared for repeated reduction. It is immutable and
// safe for concurrent use.
type ModData[T constraints.Unsigned] struct {
	m   T
	div limb.Divisor
}

// Precompute prepares m for the Precomputed operations. It panics when m is
// zero.
func Precompute[T constraints.Unsigned](m T) *ModData[T] {
	checkDivisor("prim.Precompute", m)
	return &ModData[T]{m: m, div: limb.NewDivisor(uint64(m))}
}

// Modulus returns the modulus the data was computed for.
func (d *ModData[T]) Modulus() T { return d.m }

// ModMulPrecomputed returns (x * y) mod d.Modulus().
func ModMulPrecomputed[T constraints.Unsigned](x, y T, d *ModData[T]) T {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	_, r := d.div.DivRem(hi, lo)
	return T(r)
}

// ModPowPrecomputed returns x^exp mod d.Modulus().
func ModPowPrecomputed[T constraints.Unsigned](x T, exp uint64, d *ModData[T]) T {
	if d.m == 1 {
		return 0
	}
	r := T(1)
	for i := bits.Len64(exp); i > 0; i-- {
		r = ModMulPrecomputed(r, r, d)
		if exp>>(i-1)&1 == 1 {
			r = ModMulPrecomputed(r, x, d)
		}
	}
	return r
}

// ModSquarePrecomputed returns x^2 mod d.Modulus().
func ModSquarePrecomputed[T constraints.Unsigned](x T, d *ModData[T]) T {
	return ModPowPrecomputed(x, 2, d)
}
