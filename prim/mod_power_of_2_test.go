package prim

import (
	"math"
	"testing"

	apperrors "github.com/agbru/mpint/internal/errors"
)

func TestModPowerOf2IsReduced(t *testing.T) {
	t.Parallel()
	if !ModPowerOf2IsReduced[uint8](0, 5) || ModPowerOf2IsReduced[uint8](100, 5) || !ModPowerOf2IsReduced[uint8](100, 8) {
		t.Error("uint8 cases")
	}
	if ModPowerOf2IsReduced[uint64](math.MaxUint64, 63) || !ModPowerOf2IsReduced[uint64](math.MaxUint64, 64) {
		t.Error("uint64 edges")
	}
	for x := 0; x < 256; x++ {
		for pow := uint64(0); pow <= 10; pow++ {
			if ModPowerOf2IsReduced(uint8(x), pow) != (ModPowerOf2(uint8(x), pow) == uint8(x)) {
				t.Fatalf("x=%d pow=%d", x, pow)
			}
		}
	}
}

func TestModPowerOf2Exhaustive(t *testing.T) {
	t.Parallel()
	for pow := uint64(0); pow <= 8; pow++ {
		m := 1 << pow
		for x := 0; x < m; x++ {
			if got := int(ModPowerOf2Neg(uint8(x), pow)); got != (m-x)%m {
				t.Fatalf("Neg(%d, %d) = %d", x, pow, got)
			}
			for y := 0; y < m; y += 7 {
				if got := int(ModPowerOf2Add(uint8(x), uint8(y), pow)); got != (x+y)%m {
					t.Fatalf("Add(%d, %d, %d) = %d", x, y, pow, got)
				}
				if got := int(ModPowerOf2Sub(uint8(x), uint8(y), pow)); got != ((x-y)%m+m)%m {
					t.Fatalf("Sub(%d, %d, %d) = %d", x, y, pow, got)
				}
				if got := int(ModPowerOf2Mul(uint8(x), uint8(y), pow)); got != x*y%m {
					t.Fatalf("Mul(%d, %d, %d) = %d", x, y, pow, got)
				}
			}
			if ModPowerOf2Square(uint8(x), pow) != ModPowerOf2Mul(uint8(x), uint8(x), pow) {
				t.Fatalf("Square(%d, %d)", x, pow)
			}
			want := 1 % m
			for e := 0; e < 5; e++ {
				if got := int(ModPowerOf2Pow(uint8(x), uint64(e), pow)); got != want {
					t.Fatalf("Pow(%d, %d, %d) = %d, want %d", x, e, pow, got, want)
				}
				want = want * x % m
			}
		}
	}
}

func TestModPowerOf2PowBeyondWidthPanics(t *testing.T) {
	t.Parallel()
	for name, fn := range map[string]func(){
		"neg": func() { ModPowerOf2Neg[uint16](1, 17) },
		"add": func() { ModPowerOf2Add[uint32](1, 1, 33) },
		"mul": func() { ModPowerOf2Mul[uint64](1, 1, 65) },
		"pow": func() { ModPowerOf2Pow[uint8](1, 1, 9) },
	} {
		if r := catchPanic(fn); !apperrors.IsContractError(r, apperrors.ErrDomain) {
			t.Errorf("%s: recovered %v", name, r)
		}
	}
	if ModPowerOf2[uint8](200, 100) != 200 {
		t.Error("ModPowerOf2 accepts any pow")
	}
}
