package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/logging"
)

func TestNewParsesFlags(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	a, err := New([]string{"mpint-calibrate", "-quick", "-rounds", "2", "-mul-limbs", "64", "-profile", "p.json"}, &stderr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := a.Config
	if !c.Quick || !c.Options.Quick || c.Options.Rounds != 2 || c.Options.MulLimbs != 64 || c.ProfilePath != "p.json" {
		t.Errorf("unexpected config %+v", c)
	}
	if c.Options.FromDigits == 0 {
		t.Error("unset flags should keep their defaults")
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		help bool
	}{
		{"help", []string{"prog", "-help"}, true},
		{"unknown flag", []string{"prog", "-bogus"}, false},
		{"positional argument", []string{"prog", "extra"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.args, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if IsHelpError(err) != tt.help {
				t.Errorf("IsHelpError(%v) = %v, want %v", err, IsHelpError(err), tt.help)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()
	if !HasVersionFlag([]string{"-quick", "--version"}) || HasVersionFlag([]string{"-v"}) {
		t.Error("HasVersionFlag")
	}
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "mpint-calibrate ") {
		t.Errorf("PrintVersion = %q", out.String())
	}
}

func TestRunWritesProfile(t *testing.T) {
	before := config.Current()
	t.Cleanup(func() { _ = config.Set(before) })

	path := filepath.Join(t.TempDir(), "profiles", "thresholds.json")
	var stderr, stdout bytes.Buffer
	a, err := New([]string{"prog", "-quick", "-rounds", "1", "-mul-limbs", "80",
		"-to-digits-limbs", "48", "-from-digits", "1200", "-metrics", "-profile", path}, &stderr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if code := a.Run(context.Background(), &stdout); code != ExitSuccess {
		t.Fatalf("Run = %d, stderr:\n%s", code, stderr.String())
	}
	for _, want := range []string{"Calibrated thresholds", "Algorithm selections", "operation=mul"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("output should contain %q:\n%s", want, stdout.String())
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("profile not written: %v", err)
	}
	p, err := config.LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if !p.Matches() {
		t.Error("profile written on this machine should match it")
	}
	if err := p.Thresholds.Validate(); err != nil {
		t.Errorf("profile thresholds invalid: %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	before := config.Current()
	t.Cleanup(func() { _ = config.Set(before) })

	a, err := New([]string{"prog", "-quick"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if code := a.Run(ctx, &bytes.Buffer{}); code != ExitCancel {
		t.Errorf("Run on a cancelled context = %d, want %d", code, ExitCancel)
	}
}

type recordingSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (s *recordingSpinner) Start() { s.mu.Lock(); s.started = true; s.mu.Unlock() }
func (s *recordingSpinner) Stop()  { s.mu.Lock(); s.stopped = true; s.mu.Unlock() }
func (s *recordingSpinner) UpdateSuffix(suffix string) {
	s.mu.Lock()
	s.suffixes = append(s.suffixes, suffix)
	s.mu.Unlock()
}

func TestRunDrivesProgressSpinner(t *testing.T) {
	before := config.Current()
	t.Cleanup(func() { _ = config.Set(before) })
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	rec := &recordingSpinner{}
	var gotWriter io.Writer
	newSpinner = func(w io.Writer) Spinner {
		gotWriter = w
		return rec
	}

	var stderr bytes.Buffer
	a, err := New([]string{"prog", "-quick", "-progress", "-rounds", "1", "-mul-limbs", "64",
		"-to-digits-limbs", "40", "-from-digits", "1000"}, &stderr)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != ExitSuccess {
		t.Fatalf("Run = %d, stderr:\n%s", code, stderr.String())
	}
	if gotWriter != &stderr {
		t.Error("the spinner should write to the error stream")
	}
	if !rec.started || !rec.stopped {
		t.Errorf("spinner started=%v stopped=%v", rec.started, rec.stopped)
	}
	if len(rec.suffixes) == 0 || !strings.Contains(rec.suffixes[0], "calibrating karatsuba_limbs") {
		t.Errorf("suffixes = %q", rec.suffixes)
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := newSpinner(io.Discard)
	s.Start()
	s.UpdateSuffix(progressSuffix("karatsuba_limbs", 32))
	s.Stop()
	if got := progressSuffix("karatsuba_limbs", 32); got != " calibrating karatsuba_limbs: trying 32" {
		t.Errorf("progressSuffix = %q", got)
	}
}

func TestMetricsServer(t *testing.T) {
	t.Parallel()
	ms, err := startMetricsServer("127.0.0.1:0", logging.Nop())
	if err != nil {
		t.Fatalf("startMetricsServer: %v", err)
	}
	defer func() {
		if err := ms.Shutdown(); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	}()
	resp, err := http.Get("http://" + ms.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "mpint_algorithm_selections_total") {
		t.Errorf("status %d, body:\n%s", resp.StatusCode, body)
	}
}

func TestRunRejectsBadMetricsAddress(t *testing.T) {
	before := config.Current()
	t.Cleanup(func() { _ = config.Set(before) })
	a, err := New([]string{"prog", "-metrics-addr", "not an address"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != ExitError {
		t.Errorf("Run = %d, want %d", code, ExitError)
	}
}
