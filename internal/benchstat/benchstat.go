// Package benchstat renders timing results from the ncast benchmark as a
// textual report with an ASCII bar chart.
package benchstat

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Result is one timed benchmark variant.
type Result struct {
	Label   string
	Elapsed time.Duration
}

// Millis returns the elapsed time in milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Overhead returns the relative cost of r against a baseline, in percent.
// A result twice as slow as the baseline reports 100.
func (r Result) Overhead(baseline Result) float64 {
	base := baseline.Millis()
	if base == 0 {
		return 0
	}
	return (r.Millis()/base - 1) * 100
}

const (
	chartHeight = 10
	columnWidth = 21
	barWidth    = 20
)

// Chart draws a bar chart of the results, one column per result, lower is
// better. When all results are within 2% of each other the vertical range
// is expanded around their center so the differences stay visible;
// otherwise 10% padding is added above and below.
func Chart(w io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}

	min, max := results[0].Millis(), results[0].Millis()
	for _, r := range results[1:] {
		if m := r.Millis(); m < min {
			min = m
		} else if m > max {
			max = m
		}
	}

	span := max - min
	if span < max*0.02 {
		center := (min + max) / 2
		expanded := max * 0.15
		min = center - expanded/2
		max = center + expanded/2
	} else {
		pad := span * 0.1
		min -= pad
		max += pad
	}
	span = max - min
	if span == 0 {
		span = 1
	}

	prec := 1
	if span > 100 {
		prec = 0
	}

	bar := strings.Repeat("█", barWidth)
	gap := strings.Repeat(" ", barWidth)
	for row := chartHeight - 1; row >= 0; row-- {
		threshold := min + span*float64(row+1)/chartHeight
		fmt.Fprintf(w, "%8.*fms |", prec, threshold)
		for _, r := range results {
			if r.Millis() >= threshold {
				fmt.Fprintf(w, " %s", bar)
			} else {
				fmt.Fprintf(w, " %s", gap)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%8.*fms +", prec, min)
	fmt.Fprint(w, strings.Repeat(strings.Repeat("-", columnWidth), len(results)))
	fmt.Fprintln(w, " (baseline)")

	fmt.Fprint(w, strings.Repeat(" ", 10))
	for _, r := range results {
		fmt.Fprint(w, center(r.Label, columnWidth))
	}
	fmt.Fprintln(w)
}

// Report writes each result's timing and its overhead relative to the
// first result, followed by the chart.
func Report(w io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}

	baseline := results[0]
	for _, r := range results {
		fmt.Fprintf(w, "%-24s %10.1fms", r.Label, r.Millis())
		if r.Label != baseline.Label {
			fmt.Fprintf(w, "  (%+.1f%%)", r.Overhead(baseline))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
	Chart(w, results)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
