package natural

import (
	"github.com/agbru/mpint/internal/config"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/internal/metrics"
)

// Mod sets z to x mod m and returns z. It panics when m is zero.
func (z *Natural) Mod(x, m *Natural) *Natural {
	metrics.Observe(metrics.OpModReduce, metrics.AlgoDivision)
	return z.rem("natural.Mod", x, m)
}

// NegMod sets z to (-x) mod m and returns z. It panics when m is zero.
func (z *Natural) NegMod(x, m *Natural) *Natural {
	var r Natural
	r.rem("natural.NegMod", x, m)
	if r.IsZero() {
		return z.setSmall(0)
	}
	return z.Sub(m, &r)
}

// ModIsReduced reports whether x < m. It panics when m is zero.
func (x *Natural) ModIsReduced(m *Natural) bool {
	if m.IsZero() {
		apperrors.PanicDivisionByZero("natural.ModIsReduced")
	}
	return x.Cmp(m) < 0
}

// The ModXxx operations below assume their inputs are already reduced
// modulo m.

// ModNeg sets z to (m - x) mod m and returns z.
func (z *Natural) ModNeg(x, m *Natural) *Natural {
	if x.IsZero() {
		return z.setSmall(0)
	}
	return z.Sub(m, x)
}

// ModAdd sets z to (x + y) mod m and returns z.
func (z *Natural) ModAdd(x, y, m *Natural) *Natural {
	var s Natural
	s.Add(x, y)
	if s.Cmp(m) >= 0 {
		s.Sub(&s, m)
	}
	return z.Set(&s)
}

// ModSub sets z to (x - y) mod m and returns z.
func (z *Natural) ModSub(x, y, m *Natural) *Natural {
	if x.Cmp(y) >= 0 {
		return z.Sub(x, y)
	}
	var d Natural
	d.Sub(y, x)
	return z.Sub(m, &d)
}

// ModMul sets z to (x * y) mod m and returns z.
func (z *Natural) ModMul(x, y, m *Natural) *Natural {
	var p Natural
	p.Mul(x, y)
	return z.rem("natural.ModMul", &p, m)
}

// ModSquare sets z to x^2 mod m and returns z.
func (z *Natural) ModSquare(x, m *Natural) *Natural {
	return z.ModMul(x, x, m)
}

// ModPow sets z to x^e mod m and returns z. x must be reduced.
func (z *Natural) ModPow(x, e, m *Natural) *Natural {
	return z.ModPowPrecomputed(x, e, Precompute(m))
}

// ModInverse sets z to the inverse of x modulo m and returns z and true, or
// returns z unchanged and false when x and m are not coprime. x must be
// reduced.
func (z *Natural) ModInverse(x, m *Natural) (*Natural, bool) {
	if m.IsZero() {
		apperrors.PanicDivisionByZero("natural.ModInverse")
	}
	// Extended Euclid with the Bezout coefficient of x kept modulo m.
	var r0, r1, t0, t1, q, r, qt Natural
	r0.Set(m)
	r1.Set(x)
	t1.SetUint64(1)
	t1.rem("natural.ModInverse", &t1, m)
	for !r1.IsZero() {
		q.DivRem(&r0, &r1, &r)
		r0, r1, r = r1, r, r0
		qt.rem("natural.ModInverse", &q, m)
		qt.ModMul(&qt, &t1, m)
		qt.ModSub(&t0, &qt, m)
		t0, t1, qt = t1, qt, t0
	}
	if !r0.Equal(NewUint64(1)) {
		return z, false
	}
	return z.Set(&t0), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Precomputed reduction
// ─────────────────────────────────────────────────────────────────────────────

type reducer uint8

const (
	reduceReciprocal reducer = iota
	reduceDivision
	reduceBarrett
)

// ModData holds a modulus prepared for repeated reduction. It is immutable
// and safe for concurrent use.
type ModData struct {
	m   Natural
	alg reducer
	div limb.Divisor // single-limb moduli
	// Barrett data: k limbs in m, mu = floor(B^(2k) / m).
	k  int
	mu []Limb
}

// Precompute prepares m for ModMulPrecomputed, ModSquarePrecomputed and
// ModPowPrecomputed. It panics when m is zero.
func Precompute(m *Natural) *ModData {
	if m.IsZero() {
		apperrors.PanicDivisionByZero("natural.Precompute")
	}
	data := &ModData{}
	data.m.Set(m)
	switch k := m.LimbCount(); {
	case k == 1:
		data.alg = reduceReciprocal
		data.div = limb.NewDivisor(m.small)
		metrics.Observe(metrics.OpModReduce, metrics.AlgoReciprocal)
	case k < config.Current().BarrettMinLimbs:
		data.alg = reduceDivision
		metrics.Observe(metrics.OpModReduce, metrics.AlgoDivision)
	default:
		data.alg = reduceBarrett
		data.k = k
		pow := make([]Limb, 2*k+1)
		pow[2*k] = 1
		mu, _ := limb.DivRem(pow, m.large)
		data.mu = mu[:limb.SignificantLength(mu)]
		metrics.Observe(metrics.OpModReduce, metrics.AlgoBarrett)
	}
	return data
}

// Modulus returns a copy of the modulus.
func (d *ModData) Modulus() *Natural {
	return d.m.Clone()
}

// reduce sets z to x mod m for x < m^2.
func (d *ModData) reduce(z, x *Natural) *Natural {
	switch d.alg {
	case reduceReciprocal:
		var xb [1]Limb
		xs := x.view(&xb)
		if len(xs) < 2 {
			if len(xs) == 0 {
				return z.setSmall(0)
			}
			return z.setSmall(xs[0] % d.div.D)
		}
		return z.setSmall(d.div.ModOf(xs))
	case reduceDivision:
		return z.rem("natural.ModData", x, &d.m)
	}
	return d.barrett(z, x)
}

// barrett reduces x < B^(2k) with q = floor(floor(x / B^(k-1)) * mu / B^(k+1)),
// which undershoots floor(x / m) by at most two.
func (d *ModData) barrett(z, x *Natural) *Natural {
	if x.Cmp(&d.m) < 0 {
		return z.Set(x)
	}
	var xb [1]Limb
	xs := x.view(&xb)
	k := d.k
	q1 := xs[k-1:]
	q2 := make([]Limb, len(q1)+len(d.mu))
	limb.MulToOut(q2, q1, d.mu)
	var q3 []Limb
	if len(q2) > k+1 {
		q3 = q2[k+1:]
	}
	var qm, r Natural
	qm.Mul(new(Natural).setLimbs(q3), &d.m)
	r.Sub(x, &qm)
	for r.Cmp(&d.m) >= 0 {
		r.Sub(&r, &d.m)
	}
	return z.Set(&r)
}

// ModMulPrecomputed sets z to (x * y) mod m and returns z. x and y must be
// reduced.
func (z *Natural) ModMulPrecomputed(x, y *Natural, data *ModData) *Natural {
	var p Natural
	p.Mul(x, y)
	return data.reduce(z, &p)
}

// ModSquarePrecomputed sets z to x^2 mod m and returns z.
func (z *Natural) ModSquarePrecomputed(x *Natural, data *ModData) *Natural {
	return z.ModMulPrecomputed(x, x, data)
}

// ModPowPrecomputed sets z to x^e mod m and returns z. x must be reduced.
func (z *Natural) ModPowPrecomputed(x, e *Natural, data *ModData) *Natural {
	if data.m.CmpUint64(1) == 0 {
		return z.setSmall(0)
	}
	var acc, base Natural
	base.Set(x)
	acc.SetUint64(1)
	for i := e.BitLen(); i > 0; i-- {
		acc.ModSquarePrecomputed(&acc, data)
		if e.Bit(i - 1) {
			acc.ModMulPrecomputed(&acc, &base, data)
		}
	}
	return z.Set(&acc)
}
