package digits

import (
	"math/bits"

	"github.com/agbru/mpint/internal/config"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/internal/metrics"
)

// FromAsc returns the normalized limb vector whose base-base digits, least
// significant first, are ds. Every digit must be less than base.
func FromAsc(base uint64, ds []uint64) []Limb {
	desc := make([]uint64, len(ds))
	for i, d := range ds {
		desc[len(ds)-1-i] = d
	}
	return fromDesc("digits.FromAsc", base, desc)
}

// FromDesc is FromAsc with the most significant digit first.
func FromDesc(base uint64, ds []uint64) []Limb {
	return fromDesc("digits.FromDesc", base, ds)
}

func fromDesc(op string, base uint64, ds []uint64) []Limb {
	checkBase(op, base)
	for i, d := range ds {
		if d >= base {
			panic(apperrors.Contract(op, apperrors.ErrDomain, "digit %d at position %d is not less than base %d", d, i, base))
		}
	}
	for len(ds) > 0 && ds[0] == 0 {
		ds = ds[1:]
	}
	if len(ds) == 0 {
		return []Limb{}
	}
	if isPowerOf2(base) {
		metrics.Observe(metrics.OpFromDigits, metrics.AlgoPowerOf2)
		return powerOf2FromDesc(ds, uint(bits.TrailingZeros64(base)))
	}
	c := chunkFor(base)
	threshold := config.Current().FromDigitsDivideAndConquerDigits
	if len(ds) < threshold {
		metrics.Observe(metrics.OpFromDigits, metrics.AlgoBasecase)
		return basecaseFromDesc(ds, c)
	}
	metrics.Observe(metrics.OpFromDigits, metrics.AlgoDivideAndConquer)
	t := &powerTable{c: c, pows: [][]Limb{{c.bigBase}}}
	for t.digitsAt(len(t.pows)) < len(ds) {
		t.push()
	}
	out := t.fromDesc(ds, len(t.pows)-1, threshold)
	return out[:limb.SignificantLength(out)]
}

func powerOf2FromDesc(ds []uint64, logBase uint) []Limb {
	n := (uint64(len(ds))*uint64(logBase) + limb.Width - 1) / limb.Width
	out := make([]Limb, n)
	for i, d := range ds {
		limb.SetBitsWindow(out, uint64(len(ds)-1-i)*uint64(logBase), logBase, d)
	}
	return out[:limb.SignificantLength(out)]
}

// basecaseFromDesc runs Horner's scheme over chunks of c.k digits.
func basecaseFromDesc(ds []uint64, c chunking) []Limb {
	out := make([]Limb, 0, len(ds)/c.k+1)
	n := len(ds) % c.k
	if n == 0 {
		n = c.k
	}
	for i := 0; i < len(ds); {
		var chunk uint64
		for _, d := range ds[i : i+n] {
			chunk = chunk*c.base + d
		}
		mult := c.bigBase
		if n != c.k {
			mult = 1
			for range n {
				mult *= c.base
			}
		}
		if carry := limb.MulLimbWithCarryToOut(out, out, mult, chunk); carry != 0 {
			out = append(out, carry)
		}
		i += n
		n = c.k
	}
	return out
}

// fromDesc splits ds so that the low part has exactly digitsAt(j) digits,
// where j is the largest index not exceeding the given one with fewer
// digits than len(ds).
func (t *powerTable) fromDesc(ds []uint64, j, threshold int) []Limb {
	if len(ds) < threshold {
		return basecaseFromDesc(ds, t.c)
	}
	for j >= 0 && t.digitsAt(j) >= len(ds) {
		j--
	}
	if j < 0 {
		return basecaseFromDesc(ds, t.c)
	}
	split := len(ds) - t.digitsAt(j)
	hi := t.fromDesc(ds[:split], j, threshold)
	lo := t.fromDesc(ds[split:], j, threshold)
	hi = hi[:limb.SignificantLength(hi)]
	if len(hi) == 0 {
		return lo
	}
	p := t.pows[j]
	out := make([]Limb, len(hi)+len(p), len(hi)+len(p)+1)
	limb.MulToOut(out, hi, p)
	return limb.AddInPlaceLeft(out, lo[:limb.SignificantLength(lo)])
}
