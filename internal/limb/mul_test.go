package limb

import (
	"math/big"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/metrics"
)

func TestMulLimb(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		xs   []Limb
		y    Limb
		want []Limb
	}{
		{"empty", nil, 7, []Limb{}},
		{"by zero", []Limb{5, 6}, 0, []Limb{0, 0}},
		{"small", []Limb{3}, 4, []Limb{12}},
		{"high limb", []Limb{Max}, Max, []Limb{1, Max - 1}},
		{"carry chain", []Limb{Max, Max}, 2, []Limb{Max - 1, Max, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MulLimb(tt.xs, tt.y); !slices.Equal(got, tt.want) {
				t.Errorf("MulLimb = %v, want %v", got, tt.want)
			}
			in := slices.Clone(tt.xs)
			hi := MulLimbInPlace(in, tt.y)
			if toBig(append(in, hi)).Cmp(toBig(tt.want)) != 0 {
				t.Errorf("MulLimbInPlace = %v, %d", in, hi)
			}
		})
	}
}

func TestAddSubMulLimb(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("AddMulLimb then SubMulLimb restores zs", prop.ForAll(
		func(xs []Limb, y Limb, seed Limb) bool {
			zs := make([]Limb, len(xs))
			for i := range zs {
				zs[i] = seed ^ Limb(i)*0x9e3779b97f4a7c15
			}
			orig := slices.Clone(zs)
			want := new(big.Int).Mul(toBig(xs), new(big.Int).SetUint64(y))
			want.Add(want, toBig(zs))

			hi := AddMulLimb(zs, xs, y)
			if toBig(append(slices.Clone(zs), hi)).Cmp(want) != 0 {
				return false
			}
			b := SubMulLimb(zs, xs, y)
			return b == hi && slices.Equal(zs, orig)
		},
		limbsGen(6), gen.UInt64(), gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestMulMatchesBig(t *testing.T) {
	withKaratsubaThreshold(t, 4, func() {
		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200
		properties := gopter.NewProperties(parameters)

		properties.Property("Mul matches math/big across algorithms", prop.ForAll(
			func(xs, ys []Limb) bool {
				want := new(big.Int).Mul(toBig(xs), toBig(ys))
				got := Mul(xs, ys)
				return len(got) == len(xs)+len(ys) && toBig(got).Cmp(want) == 0
			},
			limbsGen(40), limbsGen(40),
		))

		properties.Property("SqrToOut matches Mul", prop.ForAll(
			func(xs []Limb) bool {
				out := make([]Limb, 2*len(xs))
				SqrToOut(out, xs)
				return slices.Equal(out, Mul(xs, xs))
			},
			limbsGen(30),
		))
		properties.TestingRun(t)
	})
}

func TestKaratsubaMatchesBasecase(t *testing.T) {
	withKaratsubaThreshold(t, 4, func() {
		for _, n := range []int{4, 5, 7, 8, 16, 33, 64} {
			xs, ys := make([]Limb, n), make([]Limb, n)
			for i := range xs {
				xs[i] = Max
				ys[i] = Max - Limb(i)
			}
			basecase := make([]Limb, 2*n)
			MulBasecase(basecase, xs, ys)
			kara := make([]Limb, 2*n)
			mulKaratsuba(kara, xs, ys, 4)
			if !slices.Equal(basecase, kara) {
				t.Fatalf("n=%d: karatsuba differs from basecase", n)
			}
		}
	})
}

func TestMulRecordsAlgorithm(t *testing.T) {
	withKaratsubaThreshold(t, 4, func() {
		kara := metrics.Counter(metrics.OpMul, metrics.AlgoKaratsuba)
		base := metrics.Counter(metrics.OpMul, metrics.AlgoBasecase)
		k0, b0 := testutil.ToFloat64(kara), testutil.ToFloat64(base)

		Mul(make([]Limb, 8), make([]Limb, 8))
		Mul(make([]Limb, 8), make([]Limb, 2))

		if testutil.ToFloat64(kara)-k0 < 1 {
			t.Error("karatsuba selection not recorded")
		}
		if testutil.ToFloat64(base)-b0 < 1 {
			t.Error("basecase selection not recorded")
		}
	})
}

func TestMulToOutShortOutput(t *testing.T) {
	t.Parallel()
	expectContractPanic(t, apperrors.ErrLength, func() {
		MulToOut(make([]Limb, 2), []Limb{1, 2}, []Limb{3})
	})
}
