package natural

import (
	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/digits"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/metrics"
)

// ToDigitsAsc returns the digits of x in base, least significant first.
// Zero has no digits. It panics when base < 2.
func (x *Natural) ToDigitsAsc(base uint64) []uint64 {
	var xb [1]Limb
	return digits.ToAsc(x.view(&xb), base)
}

// ToDigitsDesc returns the digits of x in base, most significant first.
func (x *Natural) ToDigitsDesc(base uint64) []uint64 {
	var xb [1]Limb
	return digits.ToDesc(x.view(&xb), base)
}

// FromDigitsAsc returns the Natural with the given digits in base, least
// significant first. It panics when base < 2 or a digit is not less than
// base.
func FromDigitsAsc(base uint64, ds []uint64) *Natural {
	return new(Natural).setLimbs(digits.FromAsc(base, ds))
}

// FromDigitsDesc is FromDigitsAsc with the most significant digit first.
func FromDigitsDesc(base uint64, ds []uint64) *Natural {
	return new(Natural).setLimbs(digits.FromDesc(base, ds))
}

// ─────────────────────────────────────────────────────────────────────────────
// Natural-valued digits
// ─────────────────────────────────────────────────────────────────────────────

func checkNaturalBase(op string, base *Natural) {
	if base.CmpUint64(2) < 0 {
		panic(apperrors.Contract(op, apperrors.ErrDomain, "base %s < 2", base))
	}
}

// ToNaturalDigitsAsc returns the digits of x in an arbitrary base, least
// significant first. Zero has no digits. It panics when base < 2.
func (x *Natural) ToNaturalDigitsAsc(base *Natural) []*Natural {
	checkNaturalBase("natural.ToNaturalDigitsAsc", base)
	if b, ok := base.Uint64(); ok {
		ds := x.ToDigitsAsc(b)
		out := make([]*Natural, len(ds))
		for i, d := range ds {
			out[i] = NewUint64(d)
		}
		return out
	}
	if x.Cmp(base) < 0 {
		if x.IsZero() {
			return []*Natural{}
		}
		return []*Natural{x.Clone()}
	}
	metrics.Observe(metrics.OpToDigits, metrics.AlgoLargeDigitDivide)
	threshold := config.Current().ToDigitsDivideAndConquerLimbs
	pows := []*Natural{base.Clone()}
	for {
		last := pows[len(pows)-1]
		if 2*last.LimbCount()-1 > x.LimbCount() {
			break
		}
		pows = append(pows, new(Natural).Sqr(last))
	}
	j := len(pows) - 1
	if x.Cmp(pows[j]) < 0 {
		j--
	}
	return naturalDigitsAsc(nil, x, pows, j, 0, threshold)
}

// naturalDigitsAsc appends the digits of x < pows[j+1] (or below the square
// of the last power) to dst, padded to width digits when width > 0.
func naturalDigitsAsc(dst []*Natural, x *Natural, pows []*Natural, j, width, threshold int) []*Natural {
	start := len(dst)
	if j < 0 || x.LimbCount() < threshold {
		var q, r Natural
		q.Set(x)
		for !q.IsZero() {
			q.DivRem(&q, pows[0], &r)
			dst = append(dst, r.Clone())
		}
	} else if x.Cmp(pows[j]) < 0 {
		return naturalDigitsAsc(dst, x, pows, j-1, width, threshold)
	} else {
		var q, r Natural
		q.DivRem(x, pows[j], &r)
		m := 1 << j
		dst = naturalDigitsAsc(dst, &r, pows, j-1, m, threshold)
		hw := 0
		if width > 0 {
			hw = width - m
		}
		return naturalDigitsAsc(dst, &q, pows, j-1, hw, threshold)
	}
	for len(dst)-start < width {
		dst = append(dst, new(Natural))
	}
	return dst
}

// ToNaturalDigitsDesc is ToNaturalDigitsAsc with the most significant digit
// first.
func (x *Natural) ToNaturalDigitsDesc(base *Natural) []*Natural {
	ds := x.ToNaturalDigitsAsc(base)
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
	return ds
}

// FromNaturalDigitsAsc returns the Natural with the given digits in an
// arbitrary base, least significant first. It panics when base < 2 or a
// digit is not less than base.
func FromNaturalDigitsAsc(base *Natural, ds []*Natural) *Natural {
	desc := make([]*Natural, len(ds))
	for i, d := range ds {
		desc[len(ds)-1-i] = d
	}
	return fromNaturalDigitsDesc("natural.FromNaturalDigitsAsc", base, desc)
}

// FromNaturalDigitsDesc is FromNaturalDigitsAsc with the most significant
// digit first.
func FromNaturalDigitsDesc(base *Natural, ds []*Natural) *Natural {
	return fromNaturalDigitsDesc("natural.FromNaturalDigitsDesc", base, ds)
}

func fromNaturalDigitsDesc(op string, base *Natural, ds []*Natural) *Natural {
	checkNaturalBase(op, base)
	for i, d := range ds {
		if d.Cmp(base) >= 0 {
			panic(apperrors.Contract(op, apperrors.ErrDomain, "digit %s at position %d is not less than base %s", d, i, base))
		}
	}
	if b, ok := base.Uint64(); ok {
		small := make([]uint64, len(ds))
		for i, d := range ds {
			small[i], _ = d.Uint64()
		}
		return FromDigitsDesc(b, small)
	}
	metrics.Observe(metrics.OpFromDigits, metrics.AlgoLargeDigitDivide)
	threshold := config.Current().FromDigitsDivideAndConquerDigits
	pows := []*Natural{base.Clone()}
	for 1<<len(pows) < len(ds) {
		pows = append(pows, new(Natural).Sqr(pows[len(pows)-1]))
	}
	return naturalFromDigitsDesc(ds, pows, len(pows)-1, threshold)
}

// naturalFromDigitsDesc splits ds so the low part has exactly 2^j digits.
func naturalFromDigitsDesc(ds []*Natural, pows []*Natural, j, threshold int) *Natural {
	for j >= 0 && 1<<j >= len(ds) {
		j--
	}
	if j < 0 || len(ds) < threshold {
		acc := new(Natural)
		for _, d := range ds {
			acc.Mul(acc, pows[0])
			acc.Add(acc, d)
		}
		return acc
	}
	split := len(ds) - 1<<j
	hi := naturalFromDigitsDesc(ds[:split], pows, j, threshold)
	lo := naturalFromDigitsDesc(ds[split:], pows, j, threshold)
	hi.Mul(hi, pows[j])
	return hi.Add(hi, lo)
}
