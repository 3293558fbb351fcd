// Package limb implements arithmetic on little-endian vectors of 64-bit limbs.
//
// Most operations come in several flavours that differ only in where the
// result goes:
//
//   - XxxToOut(out, xs, ys) writes the result to out, which must be long
//     enough and must not overlap xs or ys except at identical positions.
//   - XxxInPlaceLeft(xs, ys) overwrites xs.
//   - XxxInPlaceRight(xs, ys) overwrites ys.
//   - XxxSameLength variants require equal operand lengths and skip the
//     handling of the longer operand's tail.
//
// Carries and borrows are returned to the caller. Violating a length
// contract panics with an apperrors.ContractError wrapping apperrors.ErrLength.
// Slices are not required to be normalized unless a function says so.
package limb

import (
	"math/bits"
	"slices"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// Limb is one machine word of a multi-precision value.
type Limb = uint64

const (
	// Width is the number of bits in a Limb.
	Width = 64
	// LogWidth is log2(Width).
	LogWidth = 6
	// WidthMask extracts the bit offset within a limb from a bit index.
	WidthMask = Width - 1
	// Max is the largest Limb.
	Max Limb = 1<<Width - 1
	// HighBit has only the most significant bit set.
	HighBit Limb = 1 << (Width - 1)
)

func panicLength(op, format string, a ...any) {
	panic(apperrors.Contract(op, apperrors.ErrLength, format, a...))
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// SignificantLength returns the length of xs without its high zero limbs.
func SignificantLength(xs []Limb) int {
	n := len(xs)
	for n > 0 && xs[n-1] == 0 {
		n--
	}
	return n
}

// IsZero reports whether every limb of xs is zero.
func IsZero(xs []Limb) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// TrailingZeroLimbs returns the number of low zero limbs of xs.
func TrailingZeroLimbs(xs []Limb) int {
	for i, x := range xs {
		if x != 0 {
			return i
		}
	}
	return len(xs)
}

// TrailingZeros returns the number of low zero bits of xs. It returns
// len(xs)*Width when xs is zero.
func TrailingZeros(xs []Limb) uint64 {
	i := TrailingZeroLimbs(xs)
	if i == len(xs) {
		return uint64(i) * Width
	}
	return uint64(i)*Width + uint64(bits.TrailingZeros64(xs[i]))
}

// BitLen returns the position of the highest set bit plus one.
func BitLen(xs []Limb) uint64 {
	n := SignificantLength(xs)
	if n == 0 {
		return 0
	}
	return uint64(n-1)*Width + uint64(bits.Len64(xs[n-1]))
}

// CountOnes returns the population count of xs.
func CountOnes(xs []Limb) uint64 {
	var c int
	for _, x := range xs {
		c += bits.OnesCount64(x)
	}
	return uint64(c)
}

// SetZero clears xs.
func SetZero(xs []Limb) { clear(xs) }

// Clone returns a copy of xs.
func Clone(xs []Limb) []Limb { return slices.Clone(xs) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// CmpSameLength compares two equal-length vectors as numbers.
func CmpSameLength(xs, ys []Limb) int {
	if len(xs) != len(ys) {
		panicLength("limb.CmpSameLength", "len(xs)=%d != len(ys)=%d", len(xs), len(ys))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		if xs[i] != ys[i] {
			if xs[i] < ys[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares xs and ys as numbers. High zero limbs are ignored.
func Cmp(xs, ys []Limb) int {
	xn, yn := SignificantLength(xs), SignificantLength(ys)
	switch {
	case xn < yn:
		return -1
	case xn > yn:
		return 1
	}
	return CmpSameLength(xs[:xn], ys[:yn])
}

// grow extends xs to length n, zeroing the new limbs.
func grow(xs []Limb, n int) []Limb {
	if n <= len(xs) {
		return xs
	}
	old := len(xs)
	xs = slices.Grow(xs, n-old)[:n]
	clear(xs[old:])
	return xs
}

// Grow extends xs to length n with zero limbs, reusing spare capacity.
func Grow(xs []Limb, n int) []Limb { return grow(xs, n) }
