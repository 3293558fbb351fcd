// Package calibration measures the algorithm crossovers of the arithmetic
// engine on the current machine and produces a threshold profile that
// config.Load picks up through MPINT_THRESHOLD_PROFILE.
package calibration

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/agbru/mpint/internal/config"
	apperrors "github.com/agbru/mpint/internal/errors"
	"github.com/agbru/mpint/internal/limb"
	"github.com/agbru/mpint/internal/logging"
	"github.com/agbru/mpint/natural"
)

// Options controls the workload sizes and repetition of a calibration run.
type Options struct {
	// Quick restricts each threshold to three candidates.
	Quick bool
	// Rounds is how many times each candidate is timed; the fastest run wins.
	Rounds int
	// MulLimbs is the operand length of the multiplication workload.
	MulLimbs int
	// ToDigitsLimbs is the length of the number converted to decimal.
	ToDigitsLimbs int
	// FromDigits is the length of the decimal string parsed.
	FromDigits int
	// Seed makes the workload operands reproducible.
	Seed uint64
	// Progress, when set, is called before each candidate is timed.
	Progress func(threshold string, candidate int)
}

// DefaultOptions returns workload sizes well above every default crossover.
func DefaultOptions() Options {
	return Options{
		Rounds:        3,
		MulLimbs:      512,
		ToDigitsLimbs: 1024,
		FromDigits:    20000,
		Seed:          1,
	}
}

// Result is the timing of one candidate threshold.
type Result struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// Measurement groups the results for one threshold.
type Measurement struct {
	Name    string
	Results []Result
	Best    int
}

// Report is the outcome of a calibration run.
type Report struct {
	Thresholds   config.Thresholds
	Measurements []Measurement
}

type workload struct {
	name       string
	candidates []int
	apply      func(*config.Thresholds, int)
	run        func()
}

// Run times every candidate threshold and returns the fastest set. The
// thresholds active before the call are restored before returning, so the
// caller decides whether to install or save the result.
func Run(ctx context.Context, opts Options, logger logging.Logger) (*Report, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if opts.Rounds < 1 {
		opts.Rounds = 1
	}
	if opts.MulLimbs < 1 || opts.ToDigitsLimbs < 1 || opts.FromDigits < 1 {
		return nil, apperrors.NewConfigError("calibration workload sizes must be positive")
	}

	previous := config.Current()
	defer func() {
		if err := config.Set(previous); err != nil {
			logger.Error("restoring thresholds failed", err)
		}
	}()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	xs, ys := randomLimbs(rng, opts.MulLimbs), randomLimbs(rng, opts.MulLimbs)
	out := make([]limb.Limb, 2*opts.MulLimbs)
	big := natural.FromLimbsAsc(randomLimbs(rng, opts.ToDigitsLimbs))
	decimal := randomDecimal(rng, opts.FromDigits)

	workloads := []workload{
		{
			name:       "karatsuba_limbs",
			candidates: KaratsubaCandidates(opts.Quick),
			apply:      func(t *config.Thresholds, v int) { t.KaratsubaLimbs = v },
			run:        func() { limb.MulToOut(out, xs, ys) },
		},
		{
			name:       "to_digits_dc_limbs",
			candidates: ToDigitsCandidates(opts.Quick),
			apply:      func(t *config.Thresholds, v int) { t.ToDigitsDivideAndConquerLimbs = v },
			run:        func() { _ = big.Text(10) },
		},
		{
			name:       "from_digits_dc_digits",
			candidates: FromDigitsCandidates(opts.Quick),
			apply:      func(t *config.Thresholds, v int) { t.FromDigitsDivideAndConquerDigits = v },
			run:        func() { new(natural.Natural).SetString(decimal, 10) },
		},
	}

	chosen := previous
	report := &Report{}
	for _, w := range workloads {
		m, err := measure(ctx, w, chosen, opts.Rounds, opts.Progress)
		if err != nil {
			return nil, err
		}
		w.apply(&chosen, m.Best)
		report.Measurements = append(report.Measurements, m)
		logger.Info("calibrated threshold",
			logging.String("threshold", w.name), logging.Int("value", m.Best))
	}
	if err := chosen.Validate(); err != nil {
		return nil, err
	}
	report.Thresholds = chosen
	return report, nil
}

// measure times w under each candidate, keeping every other threshold at
// base. Earlier workloads feed their winner into base.
func measure(ctx context.Context, w workload, base config.Thresholds, rounds int, progress func(string, int)) (Measurement, error) {
	m := Measurement{Name: w.name, Best: w.candidates[0]}
	var bestDuration time.Duration
	for _, c := range w.candidates {
		if err := ctx.Err(); err != nil {
			return m, apperrors.WrapError(err, "calibrating %s", w.name)
		}
		if progress != nil {
			progress(w.name, c)
		}
		t := base
		w.apply(&t, c)
		res := Result{Threshold: c}
		if err := config.Set(t); err != nil {
			res.Err = err
			m.Results = append(m.Results, res)
			continue
		}
		res.Duration = fastest(w.run, rounds)
		m.Results = append(m.Results, res)
		if bestDuration == 0 || res.Duration < bestDuration {
			bestDuration = res.Duration
			m.Best = c
		}
	}
	return m, nil
}

func fastest(run func(), rounds int) time.Duration {
	var best time.Duration
	for range rounds {
		start := time.Now()
		run()
		if d := time.Since(start); best == 0 || d < best {
			best = d
		}
	}
	return best
}

func randomLimbs(rng *rand.Rand, n int) []limb.Limb {
	xs := make([]limb.Limb, n)
	for i := range xs {
		xs[i] = rng.Uint64()
	}
	xs[n-1] |= 1 << 63
	return xs
}

func randomDecimal(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + rng.IntN(10)))
	}
	return sb.String()
}
