// This file contains environment variable utilities for threshold override.

package config

import (
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "MPINT_"

// ProfileEnvKey names the variable holding a threshold profile path.
const ProfileEnvKey = "THRESHOLD_PROFILE"

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
type envOverride struct {
	envKey string
	apply  func(*Thresholds, int)
}

var envOverrides = []envOverride{
	{"KARATSUBA_THRESHOLD", func(t *Thresholds, v int) { t.KaratsubaLimbs = v }},
	{"TO_DIGITS_DC_THRESHOLD", func(t *Thresholds, v int) { t.ToDigitsDivideAndConquerLimbs = v }},
	{"FROM_DIGITS_DC_THRESHOLD", func(t *Thresholds, v int) { t.FromDigitsDivideAndConquerDigits = v }},
	{"BARRETT_THRESHOLD", func(t *Thresholds, v int) { t.BarrettMinLimbs = v }},
}

// rejectedEnv describes an environment value that could not be applied.
type rejectedEnv struct {
	key   string
	value string
	err   error
}

// applyEnvOverrides applies every set override to t. Values that are not
// integers are skipped and reported.
func applyEnvOverrides(t Thresholds) (Thresholds, []rejectedEnv) {
	var rejected []rejectedEnv
	for _, o := range envOverrides {
		val := os.Getenv(EnvPrefix + o.envKey)
		if val == "" {
			continue
		}
		parsed, err := strconv.Atoi(val)
		if err != nil {
			rejected = append(rejected, rejectedEnv{EnvPrefix + o.envKey, val, err})
			continue
		}
		o.apply(&t, parsed)
	}
	return t, rejected
}
