// Package digits converts limb vectors to and from digit sequences in any
// base from 2 to 2^64-1.
//
// Power-of-two bases slice bits directly. Other bases divide by the largest
// power of the base that fits in a limb and split each chunk into digits;
// long inputs are first split by repeated squares of that power.
package digits

import (
	"math/bits"

	"github.com/agbru/mpint/internal/config"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/internal/metrics"
)

// Limb is re-exported for readability of signatures.
type Limb = limb.Limb

// chunking describes the largest power of a base that fits in one limb.
type chunking struct {
	base    uint64
	k       int    // digits per chunk
	bigBase uint64 // base^k
}

func chunkFor(base uint64) chunking {
	c := chunking{base: base, k: 1, bigBase: base}
	for {
		hi, lo := bits.Mul64(c.bigBase, base)
		if hi != 0 {
			return c
		}
		c.bigBase = lo
		c.k++
	}
}

func checkBase(op string, base uint64) {
	if base < 2 {
		panic(apperrors.Contract(op, apperrors.ErrDomain, "base %d < 2", base))
	}
}

func isPowerOf2(base uint64) bool { return base&(base-1) == 0 }

// DigitCountEstimate returns an upper bound on the number of base-base
// digits of a value of bitLen bits.
func DigitCountEstimate(bitLen uint64, base uint64) int {
	if bitLen == 0 {
		return 0
	}
	// Each digit carries at least floor(log2(base)) bits.
	perDigit := uint64(bits.Len64(base) - 1)
	return int((bitLen + perDigit - 1) / perDigit)
}

// ToAsc returns the digits of xs in base, least significant first. Zero has
// no digits. xs is not modified.
func ToAsc(xs []Limb, base uint64) []uint64 {
	checkBase("digits.ToAsc", base)
	xs = xs[:limb.SignificantLength(xs)]
	if len(xs) == 0 {
		return []uint64{}
	}
	if isPowerOf2(base) {
		metrics.Observe(metrics.OpToDigits, metrics.AlgoPowerOf2)
		return powerOf2ToAsc(xs, uint(bits.TrailingZeros64(base)))
	}
	c := chunkFor(base)
	dst := make([]uint64, 0, DigitCountEstimate(limb.BitLen(xs), base))
	threshold := config.Current().ToDigitsDivideAndConquerLimbs
	if len(xs) < threshold {
		metrics.Observe(metrics.OpToDigits, metrics.AlgoBasecase)
		return basecaseToAsc(dst, xs, c, 0)
	}
	metrics.Observe(metrics.OpToDigits, metrics.AlgoDivideAndConquer)
	t := newPowerTableFor(c, len(xs))
	j := len(t.pows) - 1
	if limb.Cmp(xs, t.pows[j]) < 0 {
		j--
	}
	return t.toAsc(dst, xs, j, 0, threshold)
}

// ToDesc returns the digits of xs in base, most significant first.
func ToDesc(xs []Limb, base uint64) []uint64 {
	ds := ToAsc(xs, base)
	reverse(ds)
	return ds
}

func reverse(ds []uint64) {
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
}

func powerOf2ToAsc(xs []Limb, logBase uint) []uint64 {
	n := (limb.BitLen(xs) + uint64(logBase) - 1) / uint64(logBase)
	out := make([]uint64, n)
	for i := range out {
		out[i] = limb.BitsWindow(xs, uint64(i)*uint64(logBase), logBase)
	}
	return out
}

// basecaseToAsc appends the digits of xs to dst by repeated division by
// c.bigBase. When width is positive the output is padded with zero digits
// to exactly width digits.
func basecaseToAsc(dst []uint64, xs []Limb, c chunking, width int) []uint64 {
	start := len(dst)
	n := limb.SignificantLength(xs)
	if n > 0 {
		work := limb.AcquireUnzeroed(n)
		defer limb.Release(work)
		copy(work, xs[:n])
		d := limb.NewDivisor(c.bigBase)
		for n > 0 {
			r := d.DivRemToOut(work[:n], work[:n])
			n = limb.SignificantLength(work[:n])
			if n > 0 {
				for range c.k {
					dst = append(dst, r%c.base)
					r /= c.base
				}
				continue
			}
			for r != 0 {
				dst = append(dst, r%c.base)
				r /= c.base
			}
		}
	}
	for len(dst)-start < width {
		dst = append(dst, 0)
	}
	return dst
}

// powerTable holds bigBase^(2^j) for increasing j. Entries are never
// modified after construction.
type powerTable struct {
	c    chunking
	pows [][]Limb
}

// digitsAt returns the number of digits represented by pows[j].
func (t *powerTable) digitsAt(j int) int { return t.c.k << j }

func (t *powerTable) push() {
	last := t.pows[len(t.pows)-1]
	sq := make([]Limb, 2*len(last))
	limb.SqrToOut(sq, last)
	t.pows = append(t.pows, sq[:limb.SignificantLength(sq)])
}

// newPowerTableFor builds squares until the next one would certainly
// exceed any value of n limbs.
func newPowerTableFor(c chunking, n int) *powerTable {
	t := &powerTable{c: c, pows: [][]Limb{{c.bigBase}}}
	for 2*len(t.pows[len(t.pows)-1])-1 <= n {
		t.push()
	}
	return t
}

// toAsc appends the digits of xs, which must be less than pows[j+1], or
// less than the square of the last power when j is the last index.
func (t *powerTable) toAsc(dst []uint64, xs []Limb, j, width, threshold int) []uint64 {
	xs = xs[:limb.SignificantLength(xs)]
	if j < 0 || len(xs) < threshold {
		return basecaseToAsc(dst, xs, t.c, width)
	}
	p := t.pows[j]
	if limb.Cmp(xs, p) < 0 {
		return t.toAsc(dst, xs, j-1, width, threshold)
	}
	q, r := limb.DivRem(xs, p)
	m := t.digitsAt(j)
	dst = t.toAsc(dst, r, j-1, m, threshold)
	hw := 0
	if width > 0 {
		hw = width - m
	}
	return t.toAsc(dst, q, j-1, hw, threshold)
}
