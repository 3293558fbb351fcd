package config

import (
	"github.com/agbru/mpint/internal/logging"
)

// Load resolves the threshold chain, installs the result with Set and returns
// it. Problems with individual sources are logged and the source skipped; the
// only error returned is a failed validation of the final set.
//
// Calling Load is optional: the first Current call resolves the same chain
// silently unless Set ran before it.
func Load(logger logging.Logger) (Thresholds, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	t, source := resolve(logger)
	if err := Set(t); err != nil {
		logger.Error("threshold set rejected", err, logging.String("thresholds", t.String()))
		return Current(), err
	}
	logger.Debug("thresholds resolved",
		logging.String("source", source),
		logging.Int("karatsuba_limbs", t.KaratsubaLimbs),
		logging.Int("to_digits_dc_limbs", t.ToDigitsDivideAndConquerLimbs),
		logging.Int("from_digits_dc_digits", t.FromDigitsDivideAndConquerDigits),
		logging.Int("barrett_min_limbs", t.BarrettMinLimbs))
	return t, nil
}

// resolve walks estimate, profile and environment without installing the
// result, and reports which source the set came from.
func resolve(logger logging.Logger) (Thresholds, string) {
	t := EstimateThresholds()
	source := "estimate"

	if path := getEnvString(ProfileEnvKey, ""); path != "" {
		p, err := LoadProfile(path)
		switch {
		case err != nil:
			logger.Error("threshold profile ignored", err, logging.String("path", path))
		case !p.Matches():
			logger.Info("threshold profile ignored: produced on a different machine",
				logging.String("path", path), logging.String("goarch", p.GOARCH),
				logging.Int("word_size", p.WordSize))
		default:
			t = t.merge(p.Thresholds)
			source = "profile"
		}
	}

	t, rejected := applyEnvOverrides(t)
	for _, r := range rejected {
		logger.Error("environment override ignored", r.err,
			logging.String("key", r.key), logging.String("value", r.value))
	}
	return t, source
}
