// This file generates the candidate thresholds tried by calibration.

package calibration

import (
	"runtime"
	"slices"

	"github.com/agbru/mpint/internal/config"
)

// ─────────────────────────────────────────────────────────────────────────────
// Candidate generation
// ─────────────────────────────────────────────────────────────────────────────

// KaratsubaCandidates returns the Karatsuba crossovers to time, centred on
// the hardware estimate. Machines with a fast double-word multiply get
// larger candidates because schoolbook stays competitive for longer.
func KaratsubaCandidates(quick bool) []int {
	est := config.EstimateKaratsubaThreshold()
	if quick {
		return around(est, config.MinKaratsubaLimbs, 0.5, 1, 2)
	}
	cs := around(est, config.MinKaratsubaLimbs, 0.25, 0.5, 0.75, 1, 1.5, 2, 3)
	if config.DetectFeatures().WideMultiply {
		cs = append(cs, 4*est)
	}
	return normalize(cs, config.MinKaratsubaLimbs)
}

// ToDigitsCandidates returns the digit-extraction crossovers to time.
func ToDigitsCandidates(quick bool) []int {
	est := config.EstimateToDigitsThreshold()
	if quick {
		return around(est, config.MinToDigitsDivideAndConquerLimbs, 0.5, 1, 2)
	}
	return around(est, config.MinToDigitsDivideAndConquerLimbs, 0.25, 0.5, 1, 2, 4)
}

// FromDigitsCandidates returns the digit-accumulation crossovers to time.
// Wider machines parse more digits per limb, so the default range grows
// with the core count only for the full calibration.
func FromDigitsCandidates(quick bool) []int {
	base := config.DefaultThresholds().FromDigitsDivideAndConquerDigits
	if quick {
		return around(base, config.MinFromDigitsDivideAndConquerDigits, 0.5, 1, 2)
	}
	cs := around(base, config.MinFromDigitsDivideAndConquerDigits, 0.25, 0.5, 1, 2, 4)
	if runtime.NumCPU() >= 16 {
		cs = append(cs, 8*base)
	}
	return normalize(cs, config.MinFromDigitsDivideAndConquerDigits)
}

func around(center, minimum int, factors ...float64) []int {
	cs := make([]int, 0, len(factors))
	for _, f := range factors {
		cs = append(cs, int(float64(center)*f))
	}
	return normalize(cs, minimum)
}

// normalize clamps to minimum, sorts and removes duplicates.
func normalize(cs []int, minimum int) []int {
	for i, c := range cs {
		cs[i] = max(c, minimum)
	}
	slices.Sort(cs)
	return slices.Compact(cs)
}
