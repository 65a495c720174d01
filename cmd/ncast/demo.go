package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.dw1.io/ncast"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through validated casting scenarios",
	Long:  "Demonstrates successful casts, each failure kind, and char reinterpretation",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	headColor = color.New(color.Bold)
)

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	demoBasic(out)
	demoFailures(out)
	demoChar(out)
	demoBoundaries(out)

	return nil
}

func demoBasic(w io.Writer) {
	headColor.Fprintln(w, "=== Basic Usage ===")

	positive := 42
	result, _ := ncast.To[uint](positive)
	okColor.Fprintf(w, "To[uint](%d) = %d\n", positive, result)

	narrowed, _ := ncast.To[float32](3.14159265358979)
	okColor.Fprintf(w, "To[float32](3.14159265358979) = %v (precision loss accepted)\n", narrowed)

	located, _ := ncast.ToAt[uint8](200, ncast.Caller(0))
	okColor.Fprintf(w, "ToAt[uint8](200, Caller(0)) = %d\n", located)

	fmt.Fprintln(w)
}

func demoFailures(w io.Writer) {
	headColor.Fprintln(w, "=== Safe Failures ===")

	show := func(err error) {
		failColor.Fprintf(w, "rejected: %v\n", err)
	}

	if _, err := ncast.To[uint](-42); err != nil {
		show(err)
	}
	if _, err := ncast.To[int8](300); err != nil {
		show(err)
	}
	if _, err := ncast.To[int16](-40000); err != nil {
		show(err)
	}
	if _, err := ncast.To[int](math.NaN()); err != nil {
		show(err)
	}
	if _, err := ncast.To[int32](math.Inf(1)); err != nil {
		show(err)
	}
	if _, err := ncast.ToAt[uint8](-1, ncast.Caller(0)); err != nil {
		show(err)
	}

	fmt.Fprintln(w)
}

func demoChar(w io.Writer) {
	headColor.Fprintln(w, "=== Char Reinterpretation ===")

	sc := int8(-1)
	uc := ncast.Reinterpret[uint8](sc)
	okColor.Fprintf(w, "Reinterpret[uint8](%d) = %d (bit pattern reused, never fails)\n", sc, uc)

	letter := int8('A')
	okColor.Fprintf(w, "Reinterpret[uint8](%d) = %c\n", letter, ncast.Reinterpret[uint8](letter))

	fmt.Fprintln(w)
}

func demoBoundaries(w io.Writer) {
	headColor.Fprintln(w, "=== Boundary Values (inclusive) ===")

	maxOK, _ := ncast.To[int8](int64(math.MaxInt8))
	okColor.Fprintf(w, "To[int8](%d) = %d\n", int64(math.MaxInt8), maxOK)

	minOK, _ := ncast.To[int8](int64(math.MinInt8))
	okColor.Fprintf(w, "To[int8](%d) = %d\n", int64(math.MinInt8), minOK)

	if _, err := ncast.To[int8](int64(math.MaxInt8) + 1); err != nil {
		failColor.Fprintf(w, "rejected: %v\n", err)
	}

	fmt.Fprintln(w)
}
