package calibration

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/logging/mocks"
)

func smallOptions() Options {
	return Options{Quick: true, Rounds: 1, MulLimbs: 96, ToDigitsLimbs: 64, FromDigits: 1500, Seed: 7}
}

func TestCandidatesAreSortedAndValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		gen     func(bool) []int
		minimum int
	}{
		{"karatsuba", KaratsubaCandidates, config.MinKaratsubaLimbs},
		{"to digits", ToDigitsCandidates, config.MinToDigitsDivideAndConquerLimbs},
		{"from digits", FromDigitsCandidates, config.MinFromDigitsDivideAndConquerDigits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, quick := range []bool{true, false} {
				cs := tt.gen(quick)
				if len(cs) == 0 {
					t.Fatalf("quick=%v: no candidates", quick)
				}
				if !slices.IsSorted(cs) {
					t.Errorf("quick=%v: %v is not sorted", quick, cs)
				}
				if len(slices.Compact(slices.Clone(cs))) != len(cs) {
					t.Errorf("quick=%v: %v has duplicates", quick, cs)
				}
				if cs[0] < tt.minimum {
					t.Errorf("quick=%v: %d below minimum %d", quick, cs[0], tt.minimum)
				}
			}
			if len(tt.gen(true)) > len(tt.gen(false)) {
				t.Error("quick calibration tries more candidates than the full one")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	got := normalize([]int{8, 1, 8, 3, 20}, 4)
	if want := []int{4, 8, 20}; !slices.Equal(got, want) {
		t.Errorf("normalize = %v, want %v", got, want)
	}
}

// The calibration tests mutate the global thresholds while timing, so
// they do not run in parallel.

func TestRunProducesValidThresholdsAndRestores(t *testing.T) {
	before := config.Current()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("calibrated threshold", gomock.Any()).Times(3)

	opts := smallOptions()
	seen := map[string]int{}
	opts.Progress = func(name string, _ int) { seen[name]++ }
	report, err := Run(context.Background(), opts, logger)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := report.Thresholds.Validate(); err != nil {
		t.Errorf("calibrated set is invalid: %v", err)
	}
	if len(report.Measurements) != 3 {
		t.Fatalf("got %d measurements, want 3", len(report.Measurements))
	}
	for _, m := range report.Measurements {
		if seen[m.Name] != len(m.Results) {
			t.Errorf("%s: progress called %d times for %d candidates", m.Name, seen[m.Name], len(m.Results))
		}
		found := false
		for _, r := range m.Results {
			if r.Err != nil {
				t.Errorf("%s candidate %d failed: %v", m.Name, r.Threshold, r.Err)
			}
			found = found || r.Threshold == m.Best
		}
		if !found {
			t.Errorf("%s best %d is not a measured candidate", m.Name, m.Best)
		}
	}
	if report.Thresholds.BarrettMinLimbs != before.BarrettMinLimbs {
		t.Error("uncalibrated thresholds should be carried over")
	}
	if config.Current() != before {
		t.Errorf("thresholds not restored: %v, want %v", config.Current(), before)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallOptions(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run on a cancelled context = %v, want context.Canceled", err)
	}
}

func TestRunRejectsEmptyWorkload(t *testing.T) {
	opts := smallOptions()
	opts.MulLimbs = 0
	if _, err := Run(context.Background(), opts, nil); err == nil {
		t.Error("expected an error for a zero-length workload")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPrintReport(t *testing.T) {
	t.Parallel()
	r := &Report{
		Thresholds: config.DefaultThresholds(),
		Measurements: []Measurement{{
			Name: "karatsuba_limbs",
			Best: 32,
			Results: []Result{
				{Threshold: 16, Duration: 3 * time.Millisecond},
				{Threshold: 32, Duration: 2 * time.Millisecond},
				{Threshold: 64, Err: errors.New("rejected")},
			},
		}},
	}
	var buf bytes.Buffer
	PrintReport(&buf, r)
	out := buf.String()
	for _, want := range []string{"karatsuba_limbs", "2ms (Optimal)", "N/A", "Calibrated thresholds"} {
		if !strings.Contains(out, want) {
			t.Errorf("report should contain %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "(Optimal)") != 1 {
		t.Errorf("exactly one candidate should be optimal:\n%s", out)
	}
}
