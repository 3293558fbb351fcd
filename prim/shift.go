package prim

import (
	"golang.org/x/exp/constraints"

	"github.com/agbru/mpint/rounding"
)

// ShrRound returns x / 2^bits rounded with rm, and how the result compares
// with the exact quotient. A negative bits shifts left instead. Shifting by
// at least the width of T yields 0 or ±1 depending on rm.
func ShrRound[T constraints.Integer](x T, bits int64, rm rounding.Mode) (T, int) {
	if bits < 0 {
		return shl(x, negAmount(bits)), 0
	}
	if bits == 0 {
		return x, 0
	}
	m, neg := magnitude(x)
	n := uint64(bits)
	var q uint64
	var half, sticky bool
	switch {
	case n < 64:
		q = m >> n
		half = m>>(n-1)&1 == 1
		sticky = m&(uint64(1)<<(n-1)-1) != 0
	case n == 64:
		half = m>>63 == 1
		sticky = m<<1 != 0
	default:
		sticky = m != 0
	}
	f := rounding.FractionOfBits(half, sticky)
	inc := rm.Increment(neg, q&1 == 1, f)
	if inc {
		q++
	}
	return fromMagnitude[T](q, neg), rounding.Ordering(neg, inc, f)
}

// ShlRound returns x * 2^bits. A negative bits shifts right, rounding with
// rm as ShrRound does. Bits shifted past the width of T are lost.
func ShlRound[T constraints.Integer](x T, bits int64, rm rounding.Mode) (T, int) {
	if bits >= 0 {
		return shl(x, uint64(bits)), 0
	}
	m := negAmount(bits)
	if m > 1<<62 {
		m = 1 << 62
	}
	return ShrRound(x, int64(m), rm)
}

func shl[T constraints.Integer](x T, n uint64) T {
	if n >= Width[T]() {
		return 0
	}
	return x << n
}

// negAmount returns -bits as a uint64 without overflowing on MinInt64.
func negAmount(bits int64) uint64 {
	return uint64(-(bits + 1)) + 1
}
