package natural

import (
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/internal/metrics"
)

// ModPowerOf2 sets z to x mod 2^pow and returns z.
func (z *Natural) ModPowerOf2(x *Natural, pow uint64) *Natural {
	metrics.Observe(metrics.OpModReduce, metrics.AlgoPowerOf2)
	if x.BitLen() <= pow {
		return z.Set(x)
	}
	if x.large == nil {
		return z.setSmall(x.small & (1<<pow - 1))
	}
	var xb [1]Limb
	return z.setLimbs(limb.GetBits(x.view(&xb), 0, pow))
}

// ModPowerOf2IsReduced reports whether x < 2^pow.
func (x *Natural) ModPowerOf2IsReduced(pow uint64) bool {
	return x.BitLen() <= pow
}

// NegModPowerOf2 sets z to (-x) mod 2^pow and returns z. x need not be
// reduced.
func (z *Natural) NegModPowerOf2(x *Natural, pow uint64) *Natural {
	var r Natural
	r.ModPowerOf2(x, pow)
	return z.ModPowerOf2Neg(&r, pow)
}

// EqModPowerOf2 reports whether x and y agree in their low pow bits.
func (x *Natural) EqModPowerOf2(y *Natural, pow uint64) bool {
	var a, b Natural
	a.ModPowerOf2(x, pow)
	b.ModPowerOf2(y, pow)
	return a.Equal(&b)
}

// The ModPowerOf2Xxx operations below assume x and y are reduced modulo
// 2^pow.

// ModPowerOf2Neg sets z to (2^pow - x) mod 2^pow and returns z.
func (z *Natural) ModPowerOf2Neg(x *Natural, pow uint64) *Natural {
	if x.IsZero() {
		return z.setSmall(0)
	}
	return z.Sub(PowerOf2(pow), x)
}

// ModPowerOf2Add sets z to (x + y) mod 2^pow and returns z.
func (z *Natural) ModPowerOf2Add(x, y *Natural, pow uint64) *Natural {
	z.Add(x, y)
	if z.BitLen() > pow {
		z.ClearBit(pow)
	}
	return z
}

// ModPowerOf2Sub sets z to (x - y) mod 2^pow and returns z.
func (z *Natural) ModPowerOf2Sub(x, y *Natural, pow uint64) *Natural {
	if x.Cmp(y) >= 0 {
		return z.Sub(x, y)
	}
	var d Natural
	d.Sub(y, x)
	return z.ModPowerOf2Neg(&d, pow)
}

// ModPowerOf2Mul sets z to (x * y) mod 2^pow and returns z.
func (z *Natural) ModPowerOf2Mul(x, y *Natural, pow uint64) *Natural {
	z.Mul(x, y)
	return z.ModPowerOf2(z, pow)
}

// ModPowerOf2Square sets z to x^2 mod 2^pow and returns z.
func (z *Natural) ModPowerOf2Square(x *Natural, pow uint64) *Natural {
	return z.ModPowerOf2Mul(x, x, pow)
}

// ModPowerOf2Pow sets z to x^e mod 2^pow and returns z.
func (z *Natural) ModPowerOf2Pow(x, e *Natural, pow uint64) *Natural {
	if pow == 0 {
		return z.setSmall(0)
	}
	var acc, base Natural
	base.Set(x)
	acc.SetUint64(1)
	for i := e.BitLen(); i > 0; i-- {
		acc.ModPowerOf2Square(&acc, pow)
		if e.Bit(i - 1) {
			acc.ModPowerOf2Mul(&acc, &base, pow)
		}
	}
	return z.Set(&acc)
}
