package prim

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/rounding"
)

// Mod returns x mod d with the sign of d, the remainder of floor division.
// For unsigned types it is x % d.
func Mod[T constraints.Integer](x, d T) T {
	checkDivisor("prim.Mod", d)
	r := x % d
	if r != 0 && (r < 0) != (d < 0) {
		r += d
	}
	return r
}

// NegMod returns (-x) mod d, in [0, d).
func NegMod[T constraints.Unsigned](x, d T) T {
	checkDivisor("prim.NegMod", d)
	r := x % d
	if r != 0 {
		r = d - r
	}
	return r
}

// CeilingMod returns x - d*ceil(x/d), the remainder of ceiling division,
// whose sign is opposite to d's.
func CeilingMod[T constraints.Signed](x, d T) T {
	checkDivisor("prim.CeilingMod", d)
	r := x % d
	if r != 0 && (r < 0) == (d < 0) {
		r -= d
	}
	return r
}

// DivRound returns x / d rounded with rm, and how the result compares with
// the exact quotient. It panics when d is zero, when rm is Exact and d does
// not divide x, and when the quotient overflows T.
func DivRound[T constraints.Integer](x, d T, rm rounding.Mode) (T, int) {
	checkDivisor("prim.DivRound", d)
	if Signed[T]() && x == Min[T]() && d == ^T(0) {
		panic(apperrors.Contract("prim.DivRound", apperrors.ErrDomain, "quotient overflows"))
	}
	q, r := x/d, x%d
	ra, _ := magnitude(r)
	da, dneg := magnitude(d)
	_, xneg := magnitude(x)
	neg := xneg != dneg

	// Compare 2|r| with |d| without overflowing.
	var cmp int
	switch other := da - ra; {
	case ra < other:
		cmp = -1
	case ra > other:
		cmp = 1
	}
	f := rounding.FractionOfRemainder(cmp, r == 0)
	inc := rm.Increment(neg, q&1 != 0, f)
	if inc {
		if neg {
			q--
		} else {
			q++
		}
	}
	return q, rounding.Ordering(neg, inc, f)
}

// OverflowingDiv returns x / d truncated toward zero and whether the
// division overflowed, which only happens for Min / -1.
func OverflowingDiv[T constraints.Integer](x, d T) (T, bool) {
	checkDivisor("prim.OverflowingDiv", d)
	if Signed[T]() && x == Min[T]() && d == ^T(0) {
		return x, true
	}
	return x / d, false
}

// SaturatingMul returns x * y clamped to the range of T.
func SaturatingMul[T constraints.Integer](x, y T) T {
	mx, xneg := magnitude(x)
	my, yneg := magnitude(y)
	neg := xneg != yneg
	hi, lo := bits.Mul64(mx, my)
	limit := uint64(Max[T]())
	if neg && Signed[T]() {
		limit++
	}
	if hi != 0 || lo > limit {
		if neg {
			return Min[T]()
		}
		return Max[T]()
	}
	return fromMagnitude[T](lo, neg)
}
