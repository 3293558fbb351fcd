// Package config resolves the size thresholds at which the arithmetic engine
// switches algorithms.
package config

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/logging"
)

// Threshold resolution chain (highest priority first):
//   1. Explicit Set calls
//   2. Environment variables (MPINT_KARATSUBA_THRESHOLD, etc.)
//   3. Threshold profile named by MPINT_THRESHOLD_PROFILE
//   4. Hardware estimation (EstimateThresholds)
//   5. Static defaults (DefaultThresholds)

// Thresholds holds every size-based dispatch point of the engine.
type Thresholds struct {
	// KaratsubaLimbs is the operand length, in limbs, from which
	// multiplication switches from schoolbook to Karatsuba.
	KaratsubaLimbs int `json:"karatsuba_limbs"`
	// ToDigitsDivideAndConquerLimbs is the input length, in limbs, from
	// which digit extraction splits by cached powers of the base.
	ToDigitsDivideAndConquerLimbs int `json:"to_digits_dc_limbs"`
	// FromDigitsDivideAndConquerDigits is the digit count from which digit
	// accumulation switches from Horner's scheme to divide and conquer.
	FromDigitsDivideAndConquerDigits int `json:"from_digits_dc_digits"`
	// BarrettMinLimbs is the modulus length, in limbs, from which
	// precomputed modular data uses Barrett reduction.
	BarrettMinLimbs int `json:"barrett_min_limbs"`
}

// Minimum values accepted by Validate.
const (
	MinKaratsubaLimbs                   = 4
	MinToDigitsDivideAndConquerLimbs    = 2
	MinFromDigitsDivideAndConquerDigits = 4
	MinBarrettLimbs                     = 2
)

// DefaultThresholds returns the static defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		KaratsubaLimbs:                   32,
		ToDigitsDivideAndConquerLimbs:    24,
		FromDigitsDivideAndConquerDigits: 600,
		BarrettMinLimbs:                  2,
	}
}

// Validate reports the first threshold that is below its minimum.
func (t Thresholds) Validate() error {
	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"karatsuba", t.KaratsubaLimbs, MinKaratsubaLimbs},
		{"to-digits divide-and-conquer", t.ToDigitsDivideAndConquerLimbs, MinToDigitsDivideAndConquerLimbs},
		{"from-digits divide-and-conquer", t.FromDigitsDivideAndConquerDigits, MinFromDigitsDivideAndConquerDigits},
		{"barrett", t.BarrettMinLimbs, MinBarrettLimbs},
	}
	for _, c := range checks {
		if c.value < c.min {
			return apperrors.NewConfigError("%s threshold must be >= %d, got %d", c.name, c.min, c.value)
		}
	}
	return nil
}

// merge copies every positive field of o over t.
func (t Thresholds) merge(o Thresholds) Thresholds {
	if o.KaratsubaLimbs > 0 {
		t.KaratsubaLimbs = o.KaratsubaLimbs
	}
	if o.ToDigitsDivideAndConquerLimbs > 0 {
		t.ToDigitsDivideAndConquerLimbs = o.ToDigitsDivideAndConquerLimbs
	}
	if o.FromDigitsDivideAndConquerDigits > 0 {
		t.FromDigitsDivideAndConquerDigits = o.FromDigitsDivideAndConquerDigits
	}
	if o.BarrettMinLimbs > 0 {
		t.BarrettMinLimbs = o.BarrettMinLimbs
	}
	return t
}

func (t Thresholds) String() string {
	return fmt.Sprintf("karatsuba=%d to-digits-dc=%d from-digits-dc=%d barrett=%d",
		t.KaratsubaLimbs, t.ToDigitsDivideAndConquerLimbs,
		t.FromDigitsDivideAndConquerDigits, t.BarrettMinLimbs)
}

// ─────────────────────────────────────────────────────────────────────────────
// Active threshold set
// ─────────────────────────────────────────────────────────────────────────────

var (
	current     atomic.Pointer[Thresholds]
	resolveOnce sync.Once
)

// Current returns the active threshold set. It is safe for concurrent use.
// The first call resolves the chain of Load without logging, unless Set or
// Load already installed a set; an invalid result falls back to the
// defaults.
func Current() Thresholds {
	if t := current.Load(); t != nil {
		return *t
	}
	resolveOnce.Do(func() {
		t, _ := resolve(logging.Nop())
		if t.Validate() != nil {
			t = DefaultThresholds()
		}
		current.CompareAndSwap(nil, &t)
	})
	return *current.Load()
}

// Set validates t and makes it the active threshold set.
func Set(t Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}
	current.Store(&t)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Hardware estimation
// ─────────────────────────────────────────────────────────────────────────────

// EstimateThresholds provides a heuristic threshold set for the current
// machine without running benchmarks.
func EstimateThresholds() Thresholds {
	t := DefaultThresholds()
	t.KaratsubaLimbs = EstimateKaratsubaThreshold()
	t.ToDigitsDivideAndConquerLimbs = EstimateToDigitsThreshold()
	return t
}

// EstimateKaratsubaThreshold estimates the Karatsuba crossover. A fast
// double-word multiply makes schoolbook competitive for longer operands.
func EstimateKaratsubaThreshold() int {
	f := DetectFeatures()
	switch {
	case f.WideMultiply:
		return 40
	case runtime.GOARCH == "arm64":
		return 36
	default:
		return 32
	}
}

// EstimateToDigitsThreshold estimates the digit-extraction crossover. The
// divide-and-conquer path multiplies, so it tracks the Karatsuba estimate.
func EstimateToDigitsThreshold() int {
	if EstimateKaratsubaThreshold() > 32 {
		return 30
	}
	return 24
}
