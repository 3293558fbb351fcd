package config

import (
	"sync"
	"testing"
)

// resetResolution forgets the active set so the next Current call resolves
// the chain again.
func resetResolution(t *testing.T) {
	t.Helper()
	restoreCurrent(t)
	current.Store(nil)
	resolveOnce = sync.Once{}
}

func clearEnv(t *testing.T) {
	t.Setenv(EnvPrefix+ProfileEnvKey, "")
	for _, o := range envOverrides {
		t.Setenv(EnvPrefix+o.envKey, "")
	}
}

func TestCurrentResolvesEnvironmentLazily(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "8")
	t.Setenv(EnvPrefix+"BARRETT_THRESHOLD", "5")
	resetResolution(t)

	got := Current()
	if got.KaratsubaLimbs != 8 || got.BarrettMinLimbs != 5 {
		t.Errorf("Current() = %+v, want environment overrides applied", got)
	}
	if got.ToDigitsDivideAndConquerLimbs != EstimateToDigitsThreshold() {
		t.Errorf("unset thresholds should come from the estimate, got %+v", got)
	}
}

func TestCurrentKeepsExplicitSet(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "8")
	resetResolution(t)

	want := DefaultThresholds()
	want.KaratsubaLimbs = 50
	if err := Set(want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Current(); got != want {
		t.Errorf("Current() = %+v, want the explicit set %+v", got, want)
	}
}

func TestCurrentFallsBackOnInvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "1")
	resetResolution(t)

	if got := Current(); got != DefaultThresholds() {
		t.Errorf("Current() = %+v, want defaults when the resolved set is invalid", got)
	}
}

func TestCurrentConcurrentFirstUse(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPrefix+"KARATSUBA_THRESHOLD", "12")
	resetResolution(t)

	var wg sync.WaitGroup
	results := make([]Thresholds, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Current()
		}()
	}
	wg.Wait()
	for i, r := range results {
		if r.KaratsubaLimbs != 12 {
			t.Errorf("goroutine %d saw %+v", i, r)
		}
	}
}
