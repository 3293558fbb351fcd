package integer

import (
	"github.com/agbru/mpint/natural"
	"github.com/agbru/mpint/rounding"
)

// add sets z to x + (-1)^yNeg * |y|.
func (z *Integer) add(x, y *Integer, yNeg bool) *Integer {
	if x.neg == yNeg {
		neg := x.neg
		z.abs.Add(&x.abs, &y.abs)
		z.neg = neg
		return z.norm()
	}
	if x.abs.Cmp(&y.abs) >= 0 {
		neg := x.neg
		z.abs.Sub(&x.abs, &y.abs)
		z.neg = neg
	} else {
		z.abs.Sub(&y.abs, &x.abs)
		z.neg = yNeg
	}
	return z.norm()
}

// Add sets z to x + y and returns z.
func (z *Integer) Add(x, y *Integer) *Integer {
	return z.add(x, y, y.neg)
}

// Sub sets z to x - y and returns z.
func (z *Integer) Sub(x, y *Integer) *Integer {
	return z.add(x, y, !y.neg && !y.abs.IsZero())
}

// Mul sets z to x * y and returns z.
func (z *Integer) Mul(x, y *Integer) *Integer {
	neg := x.neg != y.neg
	z.abs.Mul(&x.abs, &y.abs)
	z.neg = neg
	return z.norm()
}

// Sqr sets z to x * x and returns z.
func (z *Integer) Sqr(x *Integer) *Integer {
	z.abs.Mul(&x.abs, &x.abs)
	z.neg = false
	return z
}

// Pow sets z to x^exp and returns z. 0^0 is 1.
func (z *Integer) Pow(x *Integer, exp uint64) *Integer {
	neg := x.neg && exp&1 == 1
	z.abs.Pow(&x.abs, exp)
	z.neg = neg
	return z.norm()
}

// AddMul sets z to x + y*w and returns z.
func (z *Integer) AddMul(x, y, w *Integer) *Integer {
	var p Integer
	p.Mul(y, w)
	return z.Add(x, &p)
}

// ─────────────────────────────────────────────────────────────────────────────
// Division
// ─────────────────────────────────────────────────────────────────────────────

// QuoRem sets z to x / y truncated toward zero and r to x - z*y, which has
// the sign of x, and returns both. z and r must be distinct. It panics when
// y is zero.
func (z *Integer) QuoRem(x, y, r *Integer) (*Integer, *Integer) {
	qNeg, rNeg := x.neg != y.neg, x.neg
	z.abs.DivRem(&x.abs, &y.abs, &r.abs)
	z.neg, r.neg = qNeg, rNeg
	z.norm()
	r.norm()
	return z, r
}

// Quo sets z to x / y truncated toward zero and returns z.
func (z *Integer) Quo(x, y *Integer) *Integer {
	var r Integer
	z.QuoRem(x, y, &r)
	return z
}

// Rem sets z to the remainder of truncating division, which has the sign
// of x, and returns z.
func (z *Integer) Rem(x, y *Integer) *Integer {
	neg := x.neg
	z.abs.Rem(&x.abs, &y.abs)
	z.neg = neg
	return z.norm()
}

// DivMod sets z to floor(x / y) and m to x - z*y, which has the sign of y,
// and returns both. z and m must be distinct.
func (z *Integer) DivMod(x, y, m *Integer) (*Integer, *Integer) {
	var yc Integer
	yc.Set(y)
	z.QuoRem(x, &yc, m)
	if !m.IsZero() && m.neg != yc.neg {
		z.add(z, NewInt64(1), true)
		m.Add(m, &yc)
	}
	return z, m
}

// Div sets z to floor(x / y) and returns z.
func (z *Integer) Div(x, y *Integer) *Integer {
	var m Integer
	z.DivMod(x, y, &m)
	return z
}

// Mod sets z to x mod y, the remainder of floor division, which has the
// sign of y. It panics when y is zero.
func (z *Integer) Mod(x, y *Integer) *Integer {
	xNeg, yNeg := x.neg, y.neg
	var yAbs natural.Natural
	yAbs.Set(&y.abs)
	z.abs.Mod(&x.abs, &yAbs)
	z.neg = false
	if z.abs.IsZero() {
		return z
	}
	if xNeg != yNeg {
		z.abs.Sub(&yAbs, &z.abs)
	}
	z.neg = yNeg
	return z
}

// CeilingDivMod sets z to ceil(x / y) and m to x - z*y, which has the sign
// opposite to y, and returns both. z and m must be distinct.
func (z *Integer) CeilingDivMod(x, y, m *Integer) (*Integer, *Integer) {
	var yc Integer
	yc.Set(y)
	z.QuoRem(x, &yc, m)
	if !m.IsZero() && m.neg == yc.neg {
		z.add(z, NewInt64(1), false)
		m.Sub(m, &yc)
	}
	return z, m
}

// CeilingMod sets z to x - ceil(x / y)*y, which has the sign opposite to y,
// and returns z. It panics when y is zero.
func (z *Integer) CeilingMod(x, y *Integer) *Integer {
	xNeg, yNeg := x.neg, y.neg
	var yAbs natural.Natural
	yAbs.Set(&y.abs)
	z.abs.Mod(&x.abs, &yAbs)
	z.neg = false
	if z.abs.IsZero() {
		return z
	}
	if xNeg == yNeg {
		z.abs.Sub(&yAbs, &z.abs)
	}
	z.neg = !yNeg
	return z
}

// DivRound sets z to x / y rounded with rm and returns z together with how
// the result compares with the exact quotient (-1, 0 or 1).
func (z *Integer) DivRound(x, y *Integer, rm rounding.Mode) (*Integer, int) {
	neg := x.neg != y.neg
	mode := rm
	if neg {
		mode = rm.Neg()
	}
	_, o := z.abs.DivRound(&x.abs, &y.abs, mode)
	z.neg = neg
	z.norm()
	if neg {
		o = -o
	}
	return z, o
}

// DivExact sets z to x / y and returns z. It panics when y does not divide
// x.
func (z *Integer) DivExact(x, y *Integer) *Integer {
	neg := x.neg != y.neg
	z.abs.DivExact(&x.abs, &y.abs)
	z.neg = neg
	return z.norm()
}

// DivisibleBy reports whether y divides x.
func (x *Integer) DivisibleBy(y *Integer) bool {
	return x.abs.DivisibleBy(&y.abs)
}
