package limb

import (
	"math/bits"

	apperrors "github.com/agbru/mpint/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Division by an invariant limb
// ─────────────────────────────────────────────────────────────────────────────

// Divisor holds a single-limb divisor prepared for repeated division using
// the Möller–Granlund reciprocal.
type Divisor struct {
	// D is the original divisor.
	D Limb
	// Norm is D shifted left until its top bit is set.
	Norm Limb
	// Shift is the normalization shift.
	Shift uint
	// Inv is floor((B^2 - 1) / Norm) - B.
	Inv Limb
}

// NewDivisor prepares d for division. It panics when d is zero.
func NewDivisor(d Limb) Divisor {
	if d == 0 {
		apperrors.PanicDivisionByZero("limb.NewDivisor")
	}
	s := uint(bits.LeadingZeros64(d))
	norm := d << s
	return Divisor{D: d, Norm: norm, Shift: s, Inv: Reciprocal(norm)}
}

// Reciprocal returns floor((B^2 - 1) / d) - B for a normalized d.
func Reciprocal(d Limb) Limb {
	if d&HighBit == 0 {
		panic(apperrors.Contract("limb.Reciprocal", apperrors.ErrDomain, "divisor %#x is not normalized", d))
	}
	q, _ := bits.Div64(^d, Max, d)
	return q
}

// divRemPreinv divides (u1, u0) by the normalized d with reciprocal v.
// u1 must be less than d.
func divRemPreinv(u1, u0, d, v Limb) (q, r Limb) {
	qh, ql := bits.Mul64(v, u1)
	var c Limb
	ql, c = bits.Add64(ql, u0, 0)
	qh, _ = bits.Add64(qh, u1+1, c)
	r = u0 - qh*d
	if r > ql {
		qh--
		r += d
	}
	if r >= d {
		qh++
		r -= d
	}
	return qh, r
}

// DivRem divides (hi, lo) by the divisor. hi must be less than d.D.
func (d Divisor) DivRem(hi, lo Limb) (q, r Limb) {
	if d.Shift == 0 {
		return divRemPreinv(hi, lo, d.Norm, d.Inv)
	}
	u1 := hi<<d.Shift | lo>>(Width-d.Shift)
	u0 := lo << d.Shift
	q, r = divRemPreinv(u1, u0, d.Norm, d.Inv)
	return q, r >> d.Shift
}

// Mod returns (hi, lo) mod d.D for any hi.
func (d Divisor) Mod(hi, lo Limb) Limb {
	if hi >= d.D {
		_, hi = d.DivRem(0, hi)
	}
	_, r := d.DivRem(hi, lo)
	return r
}

// DivRemToOut writes xs / d.D to out[:len(xs)] and returns the remainder.
func (d Divisor) DivRemToOut(out, xs []Limb) Limb {
	if len(out) < len(xs) {
		panicLength("limb.DivRemLimbToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	var r Limb
	for i := len(xs) - 1; i >= 0; i-- {
		out[i], r = d.DivRem(r, xs[i])
	}
	return r
}

// ModOf returns xs mod d.D.
func (d Divisor) ModOf(xs []Limb) Limb {
	var r Limb
	for i := len(xs) - 1; i >= 0; i-- {
		_, r = d.DivRem(r, xs[i])
	}
	return r
}

// DivRemLimbToOut writes xs / d to out[:len(xs)] and returns the remainder.
func DivRemLimbToOut(out, xs []Limb, d Limb) Limb {
	if d == 0 {
		apperrors.PanicDivisionByZero("limb.DivRemLimbToOut")
	}
	if len(out) < len(xs) {
		panicLength("limb.DivRemLimbToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	if len(xs) < 4 {
		var r Limb
		for i := len(xs) - 1; i >= 0; i-- {
			out[i], r = bits.Div64(r, xs[i], d)
		}
		return r
	}
	return NewDivisor(d).DivRemToOut(out, xs)
}

// DivRemLimbInPlace sets xs to xs / d and returns the remainder.
func DivRemLimbInPlace(xs []Limb, d Limb) Limb {
	return DivRemLimbToOut(xs, xs, d)
}

// DivRemLimb returns xs / d in a new slice of len(xs) limbs and the
// remainder.
func DivRemLimb(xs []Limb, d Limb) ([]Limb, Limb) {
	out := make([]Limb, len(xs))
	return out, DivRemLimbToOut(out, xs, d)
}

// ModLimb returns xs mod d.
func ModLimb(xs []Limb, d Limb) Limb {
	if d == 0 {
		apperrors.PanicDivisionByZero("limb.ModLimb")
	}
	if len(xs) < 4 {
		var r Limb
		for i := len(xs) - 1; i >= 0; i-- {
			_, r = bits.Div64(r, xs[i], d)
		}
		return r
	}
	return NewDivisor(d).ModOf(xs)
}

// DivExactLimbToOut writes xs / d to out[:len(xs)]. d must divide xs.
func DivExactLimbToOut(out, xs []Limb, d Limb) {
	if r := DivRemLimbToOut(out, xs, d); r != 0 {
		panic(apperrors.Contract("limb.DivExactLimb", apperrors.ErrInexact, "remainder %d", r))
	}
}

// DivExactLimb returns xs / d in a new slice. d must divide xs.
func DivExactLimb(xs []Limb, d Limb) []Limb {
	out := make([]Limb, len(xs))
	DivExactLimbToOut(out, xs, d)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Division by a multi-limb divisor
// ─────────────────────────────────────────────────────────────────────────────

// DivRemToOut divides xs by ys with Knuth's algorithm D, writing the quotient
// to qs[:len(xs)-len(ys)+1] and the remainder to rs[:len(ys)].
// ys must have at least two limbs and a non-zero top limb, and len(xs) must
// be at least len(ys). qs and rs must not overlap the inputs.
func DivRemToOut(qs, rs, xs, ys []Limb) {
	n := len(ys)
	if n < 2 {
		panicLength("limb.DivRemToOut", "len(ys)=%d < 2", n)
	}
	if ys[n-1] == 0 {
		panic(apperrors.Contract("limb.DivRemToOut", apperrors.ErrDomain, "divisor has a zero top limb"))
	}
	if len(xs) < n {
		panicLength("limb.DivRemToOut", "len(xs)=%d < len(ys)=%d", len(xs), n)
	}
	m := len(xs) - n
	if len(qs) < m+1 || len(rs) < n {
		panicLength("limb.DivRemToOut", "len(qs)=%d, len(rs)=%d, want %d, %d", len(qs), len(rs), m+1, n)
	}

	s := uint(bits.LeadingZeros64(ys[n-1]))
	buf := Acquire(len(xs) + 1 + 2*n + 1)
	defer Release(buf)
	un := buf[:len(xs)+1]
	vn := buf[len(xs)+1 : len(xs)+1+n]
	qv := buf[len(xs)+1+n:]
	ShlToOut(vn, ys, s)
	un[len(xs)] = ShlToOut(un, xs, s)

	vtop, vsec := vn[n-1], vn[n-2]
	inv := Reciprocal(vtop)
	for j := m; j >= 0; j-- {
		qhat := Max
		if ujn := un[j+n]; ujn != vtop {
			var rhat Limb
			qhat, rhat = divRemPreinv(ujn, un[j+n-1], vtop, inv)
			// Refine qhat using the second divisor limb.
			ujn2 := un[j+n-2]
			ph, pl := bits.Mul64(qhat, vsec)
			for ph > rhat || (ph == rhat && pl > ujn2) {
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					break
				}
				ph, pl = bits.Mul64(qhat, vsec)
			}
		}
		qv[n] = MulLimbToOut(qv, vn, qhat)
		if SubSameLengthInPlaceLeft(un[j:j+n+1], qv) {
			qhat--
			if AddSameLengthInPlaceLeft(un[j:j+n], vn) {
				un[j+n]++
			}
		}
		qs[j] = qhat
	}
	clear(qs[m+1:])
	ShrToOut(rs, un[:n], s)
	clear(rs[n:])
}

// DivRem returns xs / ys and xs mod ys in new slices. ys must be normalized
// (non-zero top limb); any length is accepted, and a quotient of zero is
// returned when len(xs) < len(ys).
func DivRem(xs, ys []Limb) (q, r []Limb) {
	n := len(ys)
	if n == 0 || ys[n-1] == 0 {
		if IsZero(ys) {
			apperrors.PanicDivisionByZero("limb.DivRem")
		}
		panic(apperrors.Contract("limb.DivRem", apperrors.ErrDomain, "divisor has a zero top limb"))
	}
	if len(xs) < n {
		return []Limb{}, Clone(xs)
	}
	if n == 1 {
		q, rem := DivRemLimb(xs, ys[0])
		return q, []Limb{rem}
	}
	q = make([]Limb, len(xs)-n+1)
	r = make([]Limb, n)
	DivRemToOut(q, r, xs, ys)
	return q, r
}
