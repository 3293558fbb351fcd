package limb

import (
	"math/bits"

	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/metrics"
)

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication by a single limb
// ─────────────────────────────────────────────────────────────────────────────

// MulLimbWithCarryToOut writes xs * y + carry to out[:len(xs)] and returns
// the high limb.
func MulLimbWithCarryToOut(out, xs []Limb, y, carry Limb) Limb {
	if len(out) < len(xs) {
		panicLength("limb.MulLimbToOut", "len(out)=%d < len(xs)=%d", len(out), len(xs))
	}
	out = out[:len(xs)]
	c := carry
	for i, x := range xs {
		hi, lo := bits.Mul64(x, y)
		var cc Limb
		lo, cc = bits.Add64(lo, c, 0)
		out[i] = lo
		c = hi + cc
	}
	return c
}

// MulLimbToOut writes xs * y to out[:len(xs)] and returns the high limb.
func MulLimbToOut(out, xs []Limb, y Limb) Limb {
	return MulLimbWithCarryToOut(out, xs, y, 0)
}

// MulLimbInPlace sets xs to xs * y and returns the high limb.
func MulLimbInPlace(xs []Limb, y Limb) Limb {
	return MulLimbWithCarryToOut(xs, xs, y, 0)
}

// MulLimb returns xs * y in a new slice, one limb longer than xs when the
// high limb is non-zero.
func MulLimb(xs []Limb, y Limb) []Limb {
	out := make([]Limb, len(xs), len(xs)+1)
	if hi := MulLimbToOut(out, xs, y); hi != 0 {
		out = append(out, hi)
	}
	return out
}

// AddMulLimb sets zs[:len(xs)] to zs[:len(xs)] + xs * y and returns the
// high limb.
func AddMulLimb(zs, xs []Limb, y Limb) Limb {
	if len(zs) < len(xs) {
		panicLength("limb.AddMulLimb", "len(zs)=%d < len(xs)=%d", len(zs), len(xs))
	}
	zs = zs[:len(xs)]
	var c Limb
	for i, x := range xs {
		hi, lo := bits.Mul64(x, y)
		var cc Limb
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		zs[i], cc = bits.Add64(zs[i], lo, 0)
		c = hi + cc
	}
	return c
}

// SubMulLimb sets zs[:len(xs)] to zs[:len(xs)] - xs * y and returns the
// limb that still has to be subtracted above position len(xs).
func SubMulLimb(zs, xs []Limb, y Limb) Limb {
	if len(zs) < len(xs) {
		panicLength("limb.SubMulLimb", "len(zs)=%d < len(xs)=%d", len(zs), len(xs))
	}
	zs = zs[:len(xs)]
	var b Limb
	for i, x := range xs {
		hi, lo := bits.Mul64(x, y)
		var cc Limb
		lo, cc = bits.Add64(lo, b, 0)
		hi += cc
		zs[i], cc = bits.Sub64(zs[i], lo, 0)
		b = hi + cc
	}
	return b
}

// ─────────────────────────────────────────────────────────────────────────────
// Full multiplication
// ─────────────────────────────────────────────────────────────────────────────

// MulBasecase writes xs * ys to out[:len(xs)+len(ys)] using schoolbook
// multiplication. out must not overlap xs or ys.
func MulBasecase(out, xs, ys []Limb) {
	n := len(xs) + len(ys)
	if len(out) < n {
		panicLength("limb.MulBasecase", "len(out)=%d < %d", len(out), n)
	}
	if len(xs) == 0 || len(ys) == 0 {
		clear(out[:n])
		return
	}
	out[len(xs)] = MulLimbToOut(out, xs, ys[0])
	for i := 1; i < len(ys); i++ {
		out[len(xs)+i] = AddMulLimb(out[i:], xs, ys[i])
	}
}

// MulToOut writes xs * ys to out[:len(xs)+len(ys)]. Operands shorter than the
// Karatsuba threshold use schoolbook multiplication. out must not overlap
// xs or ys; xs and ys may be the same slice.
func MulToOut(out, xs, ys []Limb) {
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	n := len(xs) + len(ys)
	if len(out) < n {
		panicLength("limb.MulToOut", "len(out)=%d < %d", len(out), n)
	}
	threshold := config.Current().KaratsubaLimbs
	if len(ys) < threshold {
		metrics.Observe(metrics.OpMul, metrics.AlgoBasecase)
		MulBasecase(out, xs, ys)
		return
	}
	metrics.Observe(metrics.OpMul, metrics.AlgoKaratsuba)
	mulUnbalanced(out[:n], xs, ys, threshold)
}

// Mul returns xs * ys in a new slice of len(xs)+len(ys) limbs.
func Mul(xs, ys []Limb) []Limb {
	out := make([]Limb, len(xs)+len(ys))
	MulToOut(out, xs, ys)
	return out
}

// SqrToOut writes xs * xs to out[:2*len(xs)].
func SqrToOut(out, xs []Limb) {
	MulToOut(out, xs, xs)
}

// mulDispatch multiplies without recording metrics; used by recursive steps.
func mulDispatch(out, xs, ys []Limb, threshold int) {
	if len(xs) < len(ys) {
		xs, ys = ys, xs
	}
	if len(ys) < threshold {
		MulBasecase(out, xs, ys)
		return
	}
	mulUnbalanced(out[:len(xs)+len(ys)], xs, ys, threshold)
}
