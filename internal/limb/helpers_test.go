package limb

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/agbru/mpint/internal/config"
	apperrors "github.com/agbru/mpint/internal/errors"
)

func toBig(xs []Limb) *big.Int {
	z := new(big.Int)
	for i := len(xs) - 1; i >= 0; i-- {
		z.Lsh(z, Width)
		z.Or(z, new(big.Int).SetUint64(xs[i]))
	}
	return z
}

// fromBig returns the low n limbs of x.
func fromBig(x *big.Int, n int) []Limb {
	out := make([]Limb, n)
	t := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(Max)
	for i := range out {
		out[i] = new(big.Int).And(t, mask).Uint64()
		t.Rsh(t, Width)
	}
	return out
}

func limbsGen(maxLen int) gopter.Gen {
	return gen.IntRange(0, maxLen).FlatMap(func(v any) gopter.Gen {
		return gen.SliceOfN(v.(int), gen.OneGenOf(
			gen.UInt64(),
			gen.Const(uint64(0)),
			gen.Const(Max),
		))
	}, reflect.TypeOf([]Limb(nil)))
}

func nonEmptyLimbsGen(maxLen int) gopter.Gen {
	return gen.IntRange(1, maxLen).FlatMap(func(v any) gopter.Gen {
		return gen.SliceOfN(v.(int), gen.UInt64())
	}, reflect.TypeOf([]Limb(nil)))
}

func expectContractPanic(t *testing.T, cause error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !apperrors.IsContractError(r, cause) {
			t.Fatalf("recovered %v, want ContractError caused by %v", r, cause)
		}
	}()
	fn()
}

// withKaratsubaThreshold runs fn with a temporary Karatsuba threshold.
// Callers must not run in parallel with other threshold users.
func withKaratsubaThreshold(t *testing.T, n int, fn func()) {
	t.Helper()
	saved := config.Current()
	th := saved
	th.KaratsubaLimbs = n
	if err := config.Set(th); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := config.Set(saved); err != nil {
			t.Fatal(err)
		}
	}()
	fn()
}
