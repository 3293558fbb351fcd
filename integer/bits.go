package integer

import (
	"github.com/agbru/mpint/natural"
	"github.com/agbru/mpint/rounding"
)

var one = natural.NewUint64(1)

// Lsh sets z to x * 2^n and returns z.
func (z *Integer) Lsh(x *Integer, n uint64) *Integer {
	neg := x.neg
	z.abs.Lsh(&x.abs, n)
	z.neg = neg
	return z.norm()
}

// ShrRound sets z to x / 2^n rounded with rm and returns z with the
// ordering of the result against the exact quotient. A negative n shifts
// left. Floor of a negative value moves away from zero, so -1 >> 1 is -1
// under Floor and 0 under Down.
func (z *Integer) ShrRound(x *Integer, n int64, rm rounding.Mode) (*Integer, int) {
	neg := x.neg
	mode := rm
	if neg {
		mode = rm.Neg()
	}
	_, o := z.abs.ShrRound(&x.abs, n, mode)
	z.neg = neg
	z.norm()
	if neg {
		o = -o
	}
	return z, o
}

// ShlRound sets z to x * 2^n and returns z. A negative n shifts right,
// rounding with rm.
func (z *Integer) ShlRound(x *Integer, n int64, rm rounding.Mode) (*Integer, int) {
	if n >= 0 {
		return z.Lsh(x, uint64(n)), 0
	}
	m := uint64(-(n + 1)) + 1
	if m > 1<<62 {
		m = 1 << 62
	}
	return z.ShrRound(x, int64(m), rm)
}

// ModPowerOf2 returns x mod 2^pow as a Natural. For negative x this is the
// low pow bits of its two's complement.
func (x *Integer) ModPowerOf2(pow uint64) *natural.Natural {
	if x.neg {
		return new(natural.Natural).NegModPowerOf2(&x.abs, pow)
	}
	return new(natural.Natural).ModPowerOf2(&x.abs, pow)
}

// Bit returns bit i of the two's complement of x.
func (x *Integer) Bit(i uint64) bool {
	if !x.neg {
		return x.abs.Bit(i)
	}
	var m natural.Natural
	m.Sub(&x.abs, one)
	return !m.Bit(i)
}

// SetBit sets bit i of the two's complement of z and returns z.
func (z *Integer) SetBit(i uint64) *Integer {
	if !z.neg {
		z.abs.SetBit(i)
		return z
	}
	return z.viaComplement(func(m *natural.Natural) { m.ClearBit(i) })
}

// ClearBit clears bit i of the two's complement of z and returns z.
func (z *Integer) ClearBit(i uint64) *Integer {
	if !z.neg {
		z.abs.ClearBit(i)
		return z
	}
	return z.viaComplement(func(m *natural.Natural) { m.SetBit(i) })
}

// FlipBit toggles bit i of the two's complement of z and returns z.
func (z *Integer) FlipBit(i uint64) *Integer {
	if z.Bit(i) {
		return z.ClearBit(i)
	}
	return z.SetBit(i)
}

// viaComplement applies f to |z| - 1, whose bits are the complement of
// those of a negative z. The result stays negative.
func (z *Integer) viaComplement(f func(*natural.Natural)) *Integer {
	z.abs.Sub(&z.abs, one)
	f(&z.abs)
	z.abs.Add(&z.abs, one)
	return z
}

// CheckedHammingDistance returns the number of bit positions in which the
// two's complements of x and y differ. Values of opposite sign differ in
// infinitely many positions, and the result is then 0, false.
func (x *Integer) CheckedHammingDistance(y *Integer) (uint64, bool) {
	if x.neg != y.neg {
		return 0, false
	}
	if !x.neg {
		return x.abs.HammingDistance(&y.abs), true
	}
	var a, b natural.Natural
	a.Sub(&x.abs, one)
	b.Sub(&y.abs, one)
	return a.HammingDistance(&b), true
}

// EqModPowerOf2 reports whether x and y are congruent modulo 2^pow, that
// is whether their two's complements agree in the low pow bits.
func (x *Integer) EqModPowerOf2(y *Integer, pow uint64) bool {
	return x.ModPowerOf2(pow).Equal(y.ModPowerOf2(pow))
}

// Not sets z to ^x = -x - 1 and returns z.
func (z *Integer) Not(x *Integer) *Integer {
	if x.neg {
		z.abs.Sub(&x.abs, one)
		z.neg = false
		return z
	}
	z.abs.Add(&x.abs, one)
	z.neg = true
	return z
}

// The bitwise operations below use -a = ^(a - 1): a negative operand is
// handled through its magnitude minus one, whose bits are the complement
// of the operand's.

// And sets z to x & y and returns z.
func (z *Integer) And(x, y *Integer) *Integer {
	if x.neg == y.neg {
		if !x.neg {
			z.abs.And(&x.abs, &y.abs)
			z.neg = false
			return z
		}
		// -(a & b) with both negative: ^((a-1) | (b-1)).
		var a, b natural.Natural
		a.Sub(&x.abs, one)
		b.Sub(&y.abs, one)
		z.abs.Or(&a, &b)
		z.abs.Add(&z.abs, one)
		z.neg = true
		return z
	}
	if x.neg {
		x, y = y, x
	}
	// x >= 0, y < 0: x & ^(|y|-1)
	var b natural.Natural
	b.Sub(&y.abs, one)
	z.abs.AndNot(&x.abs, &b)
	z.neg = false
	return z
}

// Or sets z to x | y and returns z.
func (z *Integer) Or(x, y *Integer) *Integer {
	if x.neg == y.neg {
		if !x.neg {
			z.abs.Or(&x.abs, &y.abs)
			z.neg = false
			return z
		}
		var a, b natural.Natural
		a.Sub(&x.abs, one)
		b.Sub(&y.abs, one)
		z.abs.And(&a, &b)
		z.abs.Add(&z.abs, one)
		z.neg = true
		return z
	}
	if x.neg {
		x, y = y, x
	}
	// x >= 0, y < 0: ^((|y|-1) &^ x)
	var b natural.Natural
	b.Sub(&y.abs, one)
	z.abs.AndNot(&b, &x.abs)
	z.abs.Add(&z.abs, one)
	z.neg = true
	return z
}

// Xor sets z to x ^ y and returns z.
func (z *Integer) Xor(x, y *Integer) *Integer {
	if x.neg == y.neg {
		if !x.neg {
			z.abs.Xor(&x.abs, &y.abs)
			z.neg = false
			return z
		}
		var a, b natural.Natural
		a.Sub(&x.abs, one)
		b.Sub(&y.abs, one)
		z.abs.Xor(&a, &b)
		z.neg = false
		return z
	}
	if x.neg {
		x, y = y, x
	}
	// x >= 0, y < 0: ^(x ^ (|y|-1))
	var b natural.Natural
	b.Sub(&y.abs, one)
	z.abs.Xor(&x.abs, &b)
	z.abs.Add(&z.abs, one)
	z.neg = true
	return z
}
