package natural

import (
	"math/bits"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
)

// Add sets z to x + y and returns z.
func (z *Natural) Add(x, y *Natural) *Natural {
	if x.large == nil && y.large == nil {
		s, c := bits.Add64(x.small, y.small, 0)
		return z.setPair(s, c)
	}
	var xb, yb [1]Limb
	switch {
	case z == x:
		zs := z.promoteInPlace()
		*zs = limb.AddInPlaceLeft(*zs, y.view(&yb))
	case z == y:
		zs := z.promoteInPlace()
		*zs = limb.AddInPlaceRight(x.view(&xb), *zs)
	default:
		xs, ys := x.view(&xb), y.view(&yb)
		if len(xs) < len(ys) {
			xs, ys = ys, xs
		}
		out := z.resultBuf(len(xs)+1, x, y)
		if limb.AddGreaterToOut(out, xs, ys) {
			out[len(xs)] = 1
		}
		z.setLimbs(out)
	}
	z.trim()
	z.assertValid("natural.Add")
	return z
}

// AddUint64 sets z to x + v and returns z.
func (z *Natural) AddUint64(x *Natural, v uint64) *Natural {
	y := Natural{small: v}
	return z.Add(x, &y)
}

// sub sets z to x - y and reports true, or leaves z unchanged and reports
// false when y > x.
func (z *Natural) sub(x, y *Natural) bool {
	if x.Cmp(y) < 0 {
		return false
	}
	if x.large == nil {
		z.setSmall(x.small - y.small)
		return true
	}
	if x == y {
		z.setSmall(0)
		return true
	}
	var xb, yb [1]Limb
	switch {
	case z == x:
		limb.SubInPlaceLeft(z.large, y.view(&yb))
	case z == y:
		zs := z.promoteInPlace()
		*zs, _ = limb.SubInPlaceRight(x.view(&xb), *zs)
	default:
		xs := x.view(&xb)
		out := z.resultBuf(len(xs), x, y)
		limb.SubToOut(out, xs, y.view(&yb))
		z.setLimbs(out)
	}
	z.trim()
	z.assertValid("natural.Sub")
	return true
}

// Sub sets z to x - y and returns z. It panics with an apperrors.ErrNegative
// contract error when y > x.
func (z *Natural) Sub(x, y *Natural) *Natural {
	if !z.sub(x, y) {
		panic(apperrors.Contract("natural.Sub", apperrors.ErrNegative, "subtrahend exceeds minuend"))
	}
	return z
}

// SubUint64 sets z to x - v and returns z. It panics when v > x.
func (z *Natural) SubUint64(x *Natural, v uint64) *Natural {
	y := Natural{small: v}
	return z.Sub(x, &y)
}

// CheckedSub sets z to x - y and returns z and true, or returns z unchanged
// and false when y > x.
func (z *Natural) CheckedSub(x, y *Natural) (*Natural, bool) {
	return z, z.sub(x, y)
}

// SaturatingSub sets z to x - y, or to 0 when y > x, and returns z.
func (z *Natural) SaturatingSub(x, y *Natural) *Natural {
	if !z.sub(x, y) {
		z.setSmall(0)
	}
	return z
}

// Mul sets z to x * y and returns z.
func (z *Natural) Mul(x, y *Natural) *Natural {
	if x.large == nil && y.large == nil {
		hi, lo := bits.Mul64(x.small, y.small)
		return z.setPair(lo, hi)
	}
	if x.IsZero() || y.IsZero() {
		return z.setSmall(0)
	}
	var xb, yb [1]Limb
	xs, ys := x.view(&xb), y.view(&yb)
	if len(ys) == 1 || len(xs) == 1 {
		if len(xs) == 1 {
			xs, ys = ys, xs
		}
		out := z.resultBuf(len(xs)+1, x, y)
		out[len(xs)] = limb.MulLimbToOut(out, xs, ys[0])
		return z.setLimbs(out)
	}
	out := z.resultBuf(len(xs)+len(ys), x, y)
	limb.MulToOut(out, xs, ys)
	z.setLimbs(out)
	z.assertValid("natural.Mul")
	return z
}

// MulUint64 sets z to x * v and returns z.
func (z *Natural) MulUint64(x *Natural, v uint64) *Natural {
	y := Natural{small: v}
	return z.Mul(x, &y)
}

// Sqr sets z to x * x and returns z.
func (z *Natural) Sqr(x *Natural) *Natural {
	return z.Mul(x, x)
}

// AddMul sets z to x + y*w and returns z.
func (z *Natural) AddMul(x, y, w *Natural) *Natural {
	var p Natural
	p.Mul(y, w)
	return z.Add(x, &p)
}

// SubMul sets z to x - y*w and returns z. It panics when y*w > x.
func (z *Natural) SubMul(x, y, w *Natural) *Natural {
	var p Natural
	p.Mul(y, w)
	if !z.sub(x, &p) {
		panic(apperrors.Contract("natural.SubMul", apperrors.ErrNegative, "product exceeds minuend"))
	}
	return z
}

// Pow sets z to x^exp and returns z. 0^0 is 1.
func (z *Natural) Pow(x *Natural, exp uint64) *Natural {
	switch {
	case exp == 0:
		return z.setSmall(1)
	case exp == 1:
		return z.Set(x)
	case x.large == nil && x.small <= 1:
		return z.setSmall(x.small)
	}
	if x.large == nil && x.small&(x.small-1) == 0 {
		// (2^k)^exp = 2^(k*exp)
		k := uint64(bits.TrailingZeros64(x.small))
		hi, shift := bits.Mul64(k, exp)
		if hi != 0 {
			panic(apperrors.Contract("natural.Pow", apperrors.ErrDomain, "result has more than 2^64 bits"))
		}
		return z.Lsh(NewUint64(1), shift)
	}
	base := x
	if z == x {
		base = x.Clone()
	}
	var acc, tmp Natural
	acc.Set(base)
	for i := bits.Len64(exp) - 2; i >= 0; i-- {
		tmp.Mul(&acc, &acc)
		acc, tmp = tmp, acc
		if exp>>uint(i)&1 == 1 {
			tmp.Mul(&acc, base)
			acc, tmp = tmp, acc
		}
	}
	return z.Set(&acc)
}
