package natural

import (
	"math/bits"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/rounding"
)

// LowMask returns 2^n - 1.
func LowMask(n uint64) *Natural {
	if n <= limb.Width {
		if n == limb.Width {
			return NewUint64(limb.Max)
		}
		return NewUint64(1<<n - 1)
	}
	buf := make([]Limb, (n+limb.Width-1)/limb.Width)
	for i := range buf {
		buf[i] = limb.Max
	}
	if r := n & limb.WidthMask; r != 0 {
		buf[len(buf)-1] = 1<<r - 1
	}
	return new(Natural).setLimbs(buf)
}

// PowerOf2 returns 2^pow.
func PowerOf2(pow uint64) *Natural {
	return new(Natural).Lsh(NewUint64(1), pow)
}

// MaxShift is the largest left shift of a non-zero value. Larger results
// cannot be allocated.
const MaxShift = 1 << 46

// Lsh sets z to x * 2^n and returns z. It panics when x is non-zero and n
// exceeds MaxShift.
func (z *Natural) Lsh(x *Natural, n uint64) *Natural {
	if x.IsZero() {
		return z.setSmall(0)
	}
	if n > MaxShift {
		panic(apperrors.Contract("natural.Lsh", apperrors.ErrDomain, "shift of %d bits exceeds %d", n, uint64(MaxShift)))
	}
	if x.large == nil && n < limb.Width && bits.LeadingZeros64(x.small) >= int(n) {
		return z.setSmall(x.small << n)
	}
	var xb [1]Limb
	return z.setLimbs(limb.Shl(x.view(&xb), n))
}

// Rsh sets z to x / 2^n rounded down and returns z.
func (z *Natural) Rsh(x *Natural, n uint64) *Natural {
	if x.large == nil {
		if n >= limb.Width {
			return z.setSmall(0)
		}
		return z.setSmall(x.small >> n)
	}
	var xb [1]Limb
	return z.setLimbs(limb.Shr(x.view(&xb), n))
}

// ShrRound sets z to x / 2^n rounded with rm and returns z with the
// ordering of the result against the exact quotient. A negative n shifts
// left.
func (z *Natural) ShrRound(x *Natural, n int64, rm rounding.Mode) (*Natural, int) {
	if n <= 0 {
		return z.Lsh(x, negAmount(n)), 0
	}
	s := uint64(n)
	half := x.Bit(s - 1)
	tz, nonZero := x.TrailingZeros()
	sticky := nonZero && tz < s-1
	f := rounding.FractionOfBits(half, sticky)
	z.Rsh(x, s)
	inc := rm.Increment(false, z.Bit(0), f)
	if inc {
		z.AddUint64(z, 1)
	}
	return z, rounding.Ordering(false, inc, f)
}

// ShlRound sets z to x * 2^n and returns z. A negative n shifts right,
// rounding with rm.
func (z *Natural) ShlRound(x *Natural, n int64, rm rounding.Mode) (*Natural, int) {
	if n >= 0 {
		return z.Lsh(x, uint64(n)), 0
	}
	m := negAmount(n)
	if m > 1<<62 {
		m = 1 << 62
	}
	return z.ShrRound(x, int64(m), rm)
}

// negAmount returns -n as a uint64 for n <= 0.
func negAmount(n int64) uint64 {
	return uint64(-(n + 1)) + 1
}

// ─────────────────────────────────────────────────────────────────────────────
// Single bits
// ─────────────────────────────────────────────────────────────────────────────

// Bit reports whether bit i of x is set.
func (x *Natural) Bit(i uint64) bool {
	if x.large == nil {
		return i < limb.Width && x.small>>i&1 == 1
	}
	return limb.Bit(x.large, i)
}

// SetBit sets bit i of z and returns z.
func (z *Natural) SetBit(i uint64) *Natural {
	if z.large == nil && i < limb.Width {
		return z.setSmall(z.small | 1<<i)
	}
	zs := z.promoteInPlace()
	j := int(i >> limb.LogWidth)
	*zs = limb.Grow(*zs, j+1)
	(*zs)[j] |= 1 << (i & limb.WidthMask)
	return z.trim()
}

// ClearBit clears bit i of z and returns z.
func (z *Natural) ClearBit(i uint64) *Natural {
	if z.large == nil {
		if i < limb.Width {
			z.small &^= 1 << i
		}
		return z
	}
	if j := i >> limb.LogWidth; j < uint64(len(z.large)) {
		z.large[j] &^= 1 << (i & limb.WidthMask)
	}
	return z.trim()
}

// FlipBit toggles bit i of z and returns z.
func (z *Natural) FlipBit(i uint64) *Natural {
	if z.Bit(i) {
		return z.ClearBit(i)
	}
	return z.SetBit(i)
}

// BitLen returns the number of significant bits of x. BitLen of 0 is 0.
func (x *Natural) BitLen() uint64 {
	if x.large == nil {
		return uint64(bits.Len64(x.small))
	}
	return limb.BitLen(x.large)
}

// TrailingZeros returns the number of trailing zero bits of x and true, or
// 0 and false when x is zero.
func (x *Natural) TrailingZeros() (uint64, bool) {
	if x.IsZero() {
		return 0, false
	}
	if x.large == nil {
		return uint64(bits.TrailingZeros64(x.small)), true
	}
	return limb.TrailingZeros(x.large), true
}

// CountOnes returns the number of set bits of x.
func (x *Natural) CountOnes() uint64 {
	if x.large == nil {
		return uint64(bits.OnesCount64(x.small))
	}
	return limb.CountOnes(x.large)
}

// HammingDistance returns the number of bit positions where x and y differ.
func (x *Natural) HammingDistance(y *Natural) uint64 {
	var xb, yb [1]Limb
	xs, ys := x.view(&xb), y.view(&yb)
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	var d uint64
	for i, v := range xs {
		if i < len(ys) {
			v ^= ys[i]
		}
		d += uint64(bits.OnesCount64(v))
	}
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise logic
// ─────────────────────────────────────────────────────────────────────────────

// bitwise applies op limb by limb. Missing limbs of the shorter operand
// read as zero.
func (z *Natural) bitwise(x, y *Natural, op func(a, b Limb) Limb) *Natural {
	if x.large == nil && y.large == nil {
		return z.setSmall(op(x.small, y.small))
	}
	var xb, yb [1]Limb
	xs, ys := x.view(&xb), y.view(&yb)
	n := max(len(xs), len(ys))
	out := z.resultBuf(n, x, y)
	for i := range out {
		var a, b Limb
		if i < len(xs) {
			a = xs[i]
		}
		if i < len(ys) {
			b = ys[i]
		}
		out[i] = op(a, b)
	}
	return z.setLimbs(out)
}

// And sets z to x & y and returns z.
func (z *Natural) And(x, y *Natural) *Natural {
	return z.bitwise(x, y, func(a, b Limb) Limb { return a & b })
}

// Or sets z to x | y and returns z.
func (z *Natural) Or(x, y *Natural) *Natural {
	return z.bitwise(x, y, func(a, b Limb) Limb { return a | b })
}

// Xor sets z to x ^ y and returns z.
func (z *Natural) Xor(x, y *Natural) *Natural {
	return z.bitwise(x, y, func(a, b Limb) Limb { return a ^ b })
}

// AndNot sets z to x &^ y and returns z.
func (z *Natural) AndNot(x, y *Natural) *Natural {
	return z.bitwise(x, y, func(a, b Limb) Limb { return a &^ b })
}

// ─────────────────────────────────────────────────────────────────────────────
// Bit sequences and blocks
// ─────────────────────────────────────────────────────────────────────────────

// BitsAsc returns the bits of x, least significant first, without trailing
// zeros. Zero has no bits.
func (x *Natural) BitsAsc() []bool {
	n := x.BitLen()
	out := make([]bool, n)
	for i := range out {
		out[i] = x.Bit(uint64(i))
	}
	return out
}

// BitsDesc returns the bits of x, most significant first.
func (x *Natural) BitsDesc() []bool {
	n := x.BitLen()
	out := make([]bool, n)
	for i := range out {
		out[i] = x.Bit(n - 1 - uint64(i))
	}
	return out
}

// FromBitsAsc returns the Natural with the given bits, least significant
// first.
func FromBitsAsc(bs []bool) *Natural {
	buf := make([]Limb, (len(bs)+limb.Width-1)/limb.Width)
	for i, b := range bs {
		if b {
			buf[i>>limb.LogWidth] |= 1 << (uint(i) & limb.WidthMask)
		}
	}
	return new(Natural).setLimbs(buf)
}

// FromBitsDesc returns the Natural with the given bits, most significant
// first.
func FromBitsDesc(bs []bool) *Natural {
	asc := make([]bool, len(bs))
	for i, b := range bs {
		asc[len(bs)-1-i] = b
	}
	return FromBitsAsc(asc)
}

// GetBits sets z to bits [start, end) of x, shifted down to bit 0, and
// returns z. It panics when start > end.
func (z *Natural) GetBits(x *Natural, start, end uint64) *Natural {
	if start > end {
		panic(apperrors.Contract("natural.GetBits", apperrors.ErrDomain, "start %d > end %d", start, end))
	}
	var xb [1]Limb
	return z.setLimbs(limb.GetBits(x.view(&xb), start, end))
}

// AssignBits replaces bits [start, end) of z with the low end-start bits of
// v and returns z. It panics when start > end.
func (z *Natural) AssignBits(start, end uint64, v *Natural) *Natural {
	if start > end {
		panic(apperrors.Contract("natural.AssignBits", apperrors.ErrDomain, "start %d > end %d", start, end))
	}
	if start == end {
		return z
	}
	var field, hole, kept Natural
	field.ModPowerOf2(v, end-start)
	field.Lsh(&field, start)
	hole.Lsh(LowMask(end-start), start)
	kept.AndNot(z, &hole)
	return z.Or(&kept, &field)
}
