package natural

import (
	"math/bits"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/rounding"
)

// DivRem sets z to x / y and r to x mod y and returns both. z and r must be
// distinct. It panics when y is zero.
func (z *Natural) DivRem(x, y, r *Natural) (*Natural, *Natural) {
	if z == r {
		panic(apperrors.Contract("natural.DivRem", apperrors.ErrDomain, "quotient and remainder alias"))
	}
	if y.IsZero() {
		apperrors.PanicDivisionByZero("natural.DivRem")
	}
	if x.large == nil && y.large == nil {
		q, rem := x.small/y.small, x.small%y.small
		z.setSmall(q)
		r.setSmall(rem)
		return z, r
	}
	if x.Cmp(y) < 0 {
		r.Set(x)
		z.setSmall(0)
		return z, r
	}
	var xb, yb [1]Limb
	qs, rs := limb.DivRem(x.view(&xb), y.view(&yb))
	z.setLimbs(qs)
	r.setLimbs(rs)
	return z, r
}

// Div sets z to x / y, rounded down, and returns z.
func (z *Natural) Div(x, y *Natural) *Natural {
	var r Natural
	z.DivRem(x, y, &r)
	return z
}

// Rem sets z to x mod y and returns z. It panics when y is zero.
func (z *Natural) Rem(x, y *Natural) *Natural {
	return z.rem("natural.Rem", x, y)
}

func (z *Natural) rem(op string, x, y *Natural) *Natural {
	if y.IsZero() {
		apperrors.PanicDivisionByZero(op)
	}
	if y.large == nil {
		var xb [1]Limb
		return z.setSmall(limb.ModLimb(x.view(&xb), y.small))
	}
	if x.Cmp(y) < 0 {
		return z.Set(x)
	}
	var q Natural
	q.DivRem(x, y, z)
	return z
}

// DivRound sets z to x / y rounded with rm and returns z together with how
// the result compares with the exact quotient (-1, 0 or 1).
func (z *Natural) DivRound(x, y *Natural, rm rounding.Mode) (*Natural, int) {
	var r Natural
	z.DivRem(x, y, &r)
	if r.IsZero() {
		return z, 0
	}
	// Compare 2r with y through r and y - r.
	var d Natural
	d.Sub(y, &r)
	f := rounding.FractionOfRemainder(r.Cmp(&d), false)
	inc := rm.Increment(false, z.Bit(0), f)
	if inc {
		z.AddUint64(z, 1)
	}
	return z, rounding.Ordering(false, inc, f)
}

// DivExact sets z to x / y and returns z. It panics with an
// apperrors.ErrInexact contract error when y does not divide x.
func (z *Natural) DivExact(x, y *Natural) *Natural {
	var r Natural
	z.DivRem(x, y, &r)
	if !r.IsZero() {
		panic(apperrors.Contract("natural.DivExact", apperrors.ErrInexact, "divisor does not divide dividend"))
	}
	return z
}

// DivisibleBy reports whether y divides x. Only zero is divisible by zero.
func (x *Natural) DivisibleBy(y *Natural) bool {
	if y.IsZero() {
		return x.IsZero()
	}
	if x.IsZero() {
		return true
	}
	if y.large == nil && y.small&(y.small-1) == 0 {
		tz, _ := x.TrailingZeros()
		return tz >= uint64(bits.TrailingZeros64(y.small))
	}
	var r Natural
	return r.Rem(x, y).IsZero()
}

// ─────────────────────────────────────────────────────────────────────────────
// Roots, logarithms, gcd
// ─────────────────────────────────────────────────────────────────────────────

// Sqrt sets z to floor(sqrt(x)) and returns z.
func (z *Natural) Sqrt(x *Natural) *Natural {
	if x.large == nil {
		return z.setSmall(sqrtUint64(x.small))
	}
	// Newton's method from an overestimate 2^ceil(bitlen/2) decreases
	// monotonically to the floor of the root.
	var s, t Natural
	s.Lsh(NewUint64(1), (x.BitLen()+1)/2)
	for {
		t.Div(x, &s)
		t.Add(&t, &s)
		t.Rsh(&t, 1)
		if t.Cmp(&s) >= 0 {
			return z.Set(&s)
		}
		s, t = t, s
	}
}

// SqrtRem sets z to floor(sqrt(x)) and r to x - z^2 and returns both.
func (z *Natural) SqrtRem(x, r *Natural) (*Natural, *Natural) {
	if z == r {
		panic(apperrors.Contract("natural.SqrtRem", apperrors.ErrDomain, "root and remainder alias"))
	}
	var s, sq Natural
	s.Sqrt(x)
	sq.Mul(&s, &s)
	r.Sub(x, &sq)
	return z.Set(&s), r
}

func sqrtUint64(v uint64) uint64 {
	if v < 2 {
		return v
	}
	s := uint64(1) << ((bits.Len64(v) + 1) / 2)
	for {
		t := (s + v/s) / 2
		if t >= s {
			return s
		}
		s = t
	}
}

// Gcd sets z to the greatest common divisor of x and y and returns z.
// Gcd(0, 0) is 0.
func (z *Natural) Gcd(x, y *Natural) *Natural {
	if x.large == nil && y.large == nil {
		return z.setSmall(gcdUint64(x.small, y.small))
	}
	var a, b, r Natural
	a.Set(x)
	b.Set(y)
	for !b.IsZero() {
		if a.large == nil && b.large == nil {
			return z.setSmall(gcdUint64(a.small, b.small))
		}
		r.Rem(&a, &b)
		a, b, r = b, r, a
	}
	return z.Set(&a)
}

// gcdUint64 is the binary gcd.
func gcdUint64(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= uint(bits.TrailingZeros64(a))
	for b != 0 {
		b >>= uint(bits.TrailingZeros64(b))
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << uint(shift)
}

// Lcm sets z to the least common multiple of x and y and returns z. The lcm
// with zero is zero.
func (z *Natural) Lcm(x, y *Natural) *Natural {
	if x.IsZero() || y.IsZero() {
		return z.setSmall(0)
	}
	var g, q Natural
	g.Gcd(x, y)
	q.DivExact(x, &g)
	return z.Mul(&q, y)
}

// IsPowerOf2 reports whether x is a power of two.
func (x *Natural) IsPowerOf2() bool {
	if x.large == nil {
		return x.small != 0 && x.small&(x.small-1) == 0
	}
	tz, _ := x.TrailingZeros()
	return tz == x.BitLen()-1
}

// FloorLog2 returns floor(log2(x)). It panics when x is zero.
func (x *Natural) FloorLog2() uint64 {
	if x.IsZero() {
		panic(apperrors.Contract("natural.FloorLog2", apperrors.ErrDomain, "logarithm of zero"))
	}
	return x.BitLen() - 1
}

// CeilingLog2 returns ceil(log2(x)). It panics when x is zero.
func (x *Natural) CeilingLog2() uint64 {
	if x.IsZero() {
		panic(apperrors.Contract("natural.CeilingLog2", apperrors.ErrDomain, "logarithm of zero"))
	}
	if x.IsPowerOf2() {
		return x.BitLen() - 1
	}
	return x.BitLen()
}
