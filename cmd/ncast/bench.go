package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go.dw1.io/ncast"
	"go.dw1.io/ncast/convert"
	"go.dw1.io/ncast/internal/benchstat"
)

var (
	benchIterations int
	benchWarmup     int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure validation overhead against a native cast",
	Long:  "Times a conversion-heavy workload with native casts, ncast.To, ncast.ToAt, and convert.To, then charts the results",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 20_000_000, "Conversions per variant")
	benchCmd.Flags().IntVar(&benchWarmup, "warmup", 2_000_000, "Warm-up conversions per variant")
}

func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	data := benchData(10_000)

	fmt.Fprintln(out, "ncast benchmark")
	fmt.Fprintf(out, "iterations: %d (+%d warm-up), lower is better\n\n", benchIterations, benchWarmup)

	variants := []struct {
		label string
		run   func([]int64, int) float64
	}{
		{label: "native", run: benchNative},
		{label: "ncast.To", run: benchValidated},
		{label: "ncast.ToAt", run: benchLocated},
		{label: "convert.To", run: benchConvert},
	}

	results := make([]benchstat.Result, 0, len(variants))
	var checksums []float64
	for _, v := range variants {
		fmt.Fprintf(out, "running %s...\n", v.label)
		v.run(data, benchWarmup)

		start := time.Now()
		sum := v.run(data, benchIterations)
		elapsed := time.Since(start)

		results = append(results, benchstat.Result{Label: v.label, Elapsed: elapsed})
		checksums = append(checksums, sum)
	}

	for _, sum := range checksums[1:] {
		if sum != checksums[0] {
			return fmt.Errorf("checksum mismatch: variants disagree (%v vs %v)", sum, checksums[0])
		}
	}

	fmt.Fprintln(out)
	benchstat.Report(out, results)
	fmt.Fprintln(out, "\nbuild with -tags ncast_novalidate to compile the checks out")

	return nil
}

// benchData fills a slice with mixed-sign values that stay within int32
// range so every variant completes without failures.
func benchData(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		v := int64(i) * 2654435761 % (1 << 31)
		if i%2 == 1 {
			v = -v
		}
		data[i] = v
	}
	return data
}

func benchNative(data []int64, iters int) float64 {
	var sum float64
	for i := 0; i < iters; i++ {
		v := data[i%len(data)]
		c := int32(v)
		u := uint32(abs32(c))
		s := int16(u % 32767)
		sum += float64(s)
	}
	return sum
}

func benchValidated(data []int64, iters int) float64 {
	var sum float64
	for i := 0; i < iters; i++ {
		v := data[i%len(data)]
		c, err := ncast.To[int32](v)
		if err != nil {
			continue
		}
		u, err := ncast.To[uint32](abs32(c))
		if err != nil {
			continue
		}
		s, err := ncast.To[int16](u % 32767)
		if err != nil {
			continue
		}
		sum += float64(s)
	}
	return sum
}

func benchLocated(data []int64, iters int) float64 {
	loc := ncast.Caller(0)

	var sum float64
	for i := 0; i < iters; i++ {
		v := data[i%len(data)]
		c, err := ncast.ToAt[int32](v, loc)
		if err != nil {
			continue
		}
		u, err := ncast.ToAt[uint32](abs32(c), loc)
		if err != nil {
			continue
		}
		s, err := ncast.ToAt[int16](u%32767, loc)
		if err != nil {
			continue
		}
		sum += float64(s)
	}
	return sum
}

func benchConvert(data []int64, iters int) float64 {
	var sum float64
	for i := 0; i < iters; i++ {
		v := data[i%len(data)]
		c, err := convert.To[int32](v)
		if err != nil {
			continue
		}
		u, err := convert.To[uint32](abs32(c))
		if err != nil {
			continue
		}
		s, err := convert.To[int16](u % 32767)
		if err != nil {
			continue
		}
		sum += float64(s)
	}
	return sum
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
