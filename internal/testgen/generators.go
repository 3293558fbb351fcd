package testgen

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/agbru/mpint/integer"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/natural"
	"github.com/agbru/mpint/rounding"
)

var (
	limbsType   = reflect.TypeOf([]limb.Limb(nil))
	naturalType = reflect.TypeOf((*natural.Natural)(nil))
)

// Limb draws a limb, mostly uniform with a share of 0 and the maximum
// limb mixed in.
func Limb(c GenConfig) gopter.Gen {
	special := int(c.Get(SpecialLimbPercent))
	if special <= 0 {
		return gen.UInt64()
	}
	return gen.Weighted([]gen.WeightedGen{
		{Weight: 100 - min(special, 100), Gen: gen.UInt64()},
		{Weight: special, Gen: gen.OneConstOf(uint64(0), limb.Max, uint64(1))},
	})
}

// Limbs draws limb vectors whose length averages the mean_limb_count knob.
// Vectors may have high zero limbs.
func Limbs(c GenConfig) gopter.Gen {
	mean := int(c.Get(MeanLimbCount))
	return gen.IntRange(0, 2*mean).FlatMap(func(v any) gopter.Gen {
		return gen.SliceOfN(v.(int), Limb(c))
	}, limbsType)
}

// Naturals draws Naturals. In Exhaustive mode they count up from zero.
func Naturals(c GenConfig) gopter.Gen {
	if c.Mode == Exhaustive {
		var next uint64
		return func(*gopter.GenParameters) *gopter.GenResult {
			v := natural.NewUint64(next)
			next++
			return gopter.NewGenResult(v, gopter.NoShrinker)
		}
	}
	return gopter.CombineGens(Limbs(c), gen.UInt64Range(0, 63)).Map(func(vs []any) *natural.Natural {
		xs := vs[0].([]limb.Limb)
		n := natural.FromLimbsAsc(xs)
		// Vary the bit length inside the top limb as well.
		if len(xs) > 0 {
			n.Rsh(n, vs[1].(uint64))
		}
		return n
	})
}

// PositiveNaturals draws non-zero Naturals.
func PositiveNaturals(c GenConfig) gopter.Gen {
	return Naturals(c).Map(func(n *natural.Natural) *natural.Natural {
		if n.IsZero() {
			return natural.NewUint64(1)
		}
		return n
	})
}

// Integers draws Integers of either sign.
func Integers(c GenConfig) gopter.Gen {
	return gopter.CombineGens(Naturals(c), gen.Bool()).Map(func(vs []any) *integer.Integer {
		z := integer.FromNatural(vs[0].(*natural.Natural))
		if vs[1].(bool) {
			z.Neg(z)
		}
		return z
	})
}

// NonZeroIntegers draws Integers other than zero.
func NonZeroIntegers(c GenConfig) gopter.Gen {
	return gopter.CombineGens(PositiveNaturals(c), gen.Bool()).Map(func(vs []any) *integer.Integer {
		z := integer.FromNatural(vs[0].(*natural.Natural))
		if vs[1].(bool) {
			z.Neg(z)
		}
		return z
	})
}

// Modes draws rounding modes other than Exact.
func Modes() gopter.Gen {
	return gen.OneConstOf(rounding.Down, rounding.Up, rounding.Floor, rounding.Ceiling, rounding.Nearest)
}

// ModTriple holds two operands reduced modulo M.
type ModTriple struct {
	X, Y, M *natural.Natural
}

// ReducedTriples draws a non-zero modulus with two operands below it.
func ReducedTriples(c GenConfig) gopter.Gen {
	return gopter.CombineGens(Naturals(c), Naturals(c), PositiveNaturals(c)).Map(func(vs []any) ModTriple {
		m := vs[2].(*natural.Natural)
		x := new(natural.Natural).Mod(vs[0].(*natural.Natural), m)
		y := new(natural.Natural).Mod(vs[1].(*natural.Natural), m)
		return ModTriple{X: x, Y: y, M: m}
	})
}

// NaturalSlices draws slices of Naturals of up to n elements.
func NaturalSlices(c GenConfig, n int) gopter.Gen {
	return gen.IntRange(0, n).FlatMap(func(v any) gopter.Gen {
		return gen.SliceOfN(v.(int), Naturals(c), naturalType)
	}, reflect.SliceOf(naturalType))
}
