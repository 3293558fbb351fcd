// Package app wires the mpint-calibrate command: flag parsing, logging,
// threshold calibration and profile persistence.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/mpint/internal/calibration"
	"github.com/agbru/mpint/internal/config"
	"github.com/agbru/mpint/internal/logging"
	"github.com/agbru/mpint/internal/metrics"
)

// Version is overridden at link time.
var Version = "dev"

// Exit codes returned by Run.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitCancel  = 130
)

// Config holds the parsed command line.
type Config struct {
	ProfilePath string
	Quick       bool
	Verbose     bool
	Metrics     bool
	MetricsAddr string
	Progress    bool
	Options     calibration.Options
}

// Application is one invocation of the command.
type Application struct {
	Config    Config
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New parses args (args[0] is the program name). A -help request yields an
// error satisfying IsHelpError.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "mpint-calibrate"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg := Config{Options: calibration.DefaultOptions()}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVar(&cfg.ProfilePath, "profile", "", "write the calibrated thresholds to this JSON profile")
	fs.BoolVar(&cfg.Quick, "quick", false, "time three candidates per threshold")
	fs.BoolVar(&cfg.Verbose, "v", false, "log each calibrated threshold")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print algorithm selection counts after calibrating")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while calibrating")
	fs.BoolVar(&cfg.Progress, "progress", false, "show a spinner on stderr while calibrating")
	fs.IntVar(&cfg.Options.Rounds, "rounds", cfg.Options.Rounds, "timing repetitions per candidate")
	fs.IntVar(&cfg.Options.MulLimbs, "mul-limbs", cfg.Options.MulLimbs, "operand length of the multiplication workload")
	fs.IntVar(&cfg.Options.ToDigitsLimbs, "to-digits-limbs", cfg.Options.ToDigitsLimbs, "length of the number printed in decimal")
	fs.IntVar(&cfg.Options.FromDigits, "from-digits", cfg.Options.FromDigits, "length of the decimal string parsed")
	fs.Uint64Var(&cfg.Options.Seed, "seed", cfg.Options.Seed, "seed for the workload operands")
	if err := fs.Parse(cmdArgs); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(errWriter, err)
		return nil, err
	}
	cfg.Options.Quick = cfg.Quick

	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.InfoLevel
	}
	logger := logging.NewZerologAdapter(
		zerolog.New(zerolog.ConsoleWriter{Out: errWriter}).Level(level).With().
			Timestamp().Str("component", "calibrate").Logger())

	return &Application{Config: cfg, ErrWriter: errWriter, Logger: logger}, nil
}

// Run loads the current thresholds, calibrates, prints the report and
// saves the profile when one was requested. SIGINT and SIGTERM cancel the
// calibration.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if _, err := config.Load(a.Logger); err != nil {
		a.Logger.Error("loading thresholds", err)
		return ExitError
	}
	fmt.Fprintf(out, "Starting thresholds: %s\n", config.Current())

	if a.Config.MetricsAddr != "" {
		ms, err := startMetricsServer(a.Config.MetricsAddr, a.Logger)
		if err != nil {
			a.Logger.Error("starting metrics server", err, logging.String("addr", a.Config.MetricsAddr))
			return ExitError
		}
		defer func() {
			if err := ms.Shutdown(); err != nil {
				a.Logger.Error("stopping metrics server", err)
			}
		}()
	}

	opts := a.Config.Options
	stopProgress := func() {}
	if a.Config.Progress {
		s := newSpinner(a.ErrWriter)
		opts.Progress = func(threshold string, candidate int) {
			s.UpdateSuffix(progressSuffix(threshold, candidate))
		}
		s.Start()
		stopProgress = s.Stop
	}

	report, err := calibration.Run(ctx, opts, a.Logger)
	stopProgress()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(a.ErrWriter, "calibration cancelled")
			return ExitCancel
		}
		a.Logger.Error("calibration failed", err)
		return ExitError
	}
	calibration.PrintReport(out, report)
	if a.Config.Metrics {
		if err := printSelections(out); err != nil {
			a.Logger.Error("gathering metrics", err)
		}
	}

	if a.Config.ProfilePath == "" {
		return ExitSuccess
	}
	p := config.NewProfile(report.Thresholds)
	if err := p.Save(a.Config.ProfilePath); err != nil {
		a.Logger.Error("saving profile", err, logging.String("path", a.Config.ProfilePath))
		return ExitError
	}
	fmt.Fprintf(out, "Profile written to %s (set %s to use it)\n", a.Config.ProfilePath, config.EnvPrefix+config.ProfileEnvKey)
	return ExitSuccess
}

// printSelections writes the algorithm selection counters recorded while
// calibrating.
func printSelections(out io.Writer) error {
	families, err := metrics.Registry().Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nAlgorithm selections:")
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "mpint_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			fmt.Fprintf(out, "  %-40s %.0f\n", strings.Join(labels, " "), m.GetCounter().GetValue())
		}
	}
	return nil
}

// HasVersionFlag reports whether args request the version string.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the program version.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "mpint-calibrate %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
