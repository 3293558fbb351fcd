package app

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate is the spinner frame interval.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is the part of a terminal spinner the calibrator drives.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text shown after the spinner frame.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

// progressSuffix renders the spinner text for one timed candidate.
func progressSuffix(threshold string, candidate int) string {
	return fmt.Sprintf(" calibrating %s: trying %d", threshold, candidate)
}
