package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// FormatDuration formats a duration for display: microseconds below a
// millisecond, milliseconds below a second, time.Duration.String otherwise.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// PrintReport writes one table per measured threshold followed by the
// resulting set.
func PrintReport(out io.Writer, r *Report) {
	for _, m := range r.Measurements {
		printResults(out, m)
	}
	fmt.Fprintf(out, "\nCalibrated thresholds: %s\n", r.Thresholds)
}

func printResults(out io.Writer, m Measurement) {
	fmt.Fprintf(out, "\n--- %s ---\n", m.Name)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  Threshold    │ Execution Time\n")
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 13), strings.Repeat("─", 25))
	for _, res := range m.Results {
		duration := "N/A"
		if res.Err == nil {
			duration = FormatDuration(res.Duration)
		}
		highlight := ""
		if res.Threshold == m.Best && res.Err == nil {
			highlight = " (Optimal)"
		}
		fmt.Fprintf(tw, "  %-12d │ %s%s\n", res.Threshold, duration, highlight)
	}
	tw.Flush()
}
