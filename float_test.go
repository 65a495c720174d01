//go:build !ncast_novalidate

package ncast_test

import (
	"errors"
	"math"
	"testing"

	"go.dw1.io/ncast"
)

func TestToFloatToFloat(t *testing.T) {
	t.Run("widen", func(t *testing.T) {
		got, err := ncast.To[float64](float32(42.5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 42.5 {
			t.Fatalf("got %v, want 42.5", got)
		}
	})

	t.Run("narrowInRange", func(t *testing.T) {
		got, err := ncast.To[float32](3.14159265358979)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Precision loss is accepted silently; the result is the nearest
		// float32.
		if got != float32(3.14159265358979) {
			t.Fatalf("got %v, want %v", got, float32(3.14159265358979))
		}
	})

	t.Run("maxFloat32Widens", func(t *testing.T) {
		got, err := ncast.To[float64](float32(math.MaxFloat32))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != float64(math.MaxFloat32) {
			t.Fatalf("got %v, want %v", got, float64(math.MaxFloat32))
		}
	})

	t.Run("maxFloat32Narrows", func(t *testing.T) {
		got, err := ncast.To[float32](float64(math.MaxFloat32))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != math.MaxFloat32 {
			t.Fatalf("got %v, want %v", got, float32(math.MaxFloat32))
		}
	})

	t.Run("overflow", func(t *testing.T) {
		if _, err := ncast.To[float32](math.MaxFloat64); !errors.Is(err, ncast.ErrExceedsMaximum) {
			t.Fatalf("got %v, want ErrExceedsMaximum", err)
		}
	})

	t.Run("underflow", func(t *testing.T) {
		if _, err := ncast.To[float32](-math.MaxFloat64); !errors.Is(err, ncast.ErrBelowMinimum) {
			t.Fatalf("got %v, want ErrBelowMinimum", err)
		}
	})
}

func TestToFloatSpecialValues(t *testing.T) {
	t.Run("nanNarrows", func(t *testing.T) {
		got, err := ncast.To[float32](math.NaN())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(float64(got)) {
			t.Fatalf("got %v, want NaN", got)
		}
	})

	t.Run("nanWidens", func(t *testing.T) {
		got, err := ncast.To[float64](float32(math.NaN()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(got) {
			t.Fatalf("got %v, want NaN", got)
		}
	})

	t.Run("positiveInfinity", func(t *testing.T) {
		got, err := ncast.To[float32](math.Inf(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(float64(got), 1) {
			t.Fatalf("got %v, want +Inf", got)
		}
	})

	t.Run("negativeInfinity", func(t *testing.T) {
		got, err := ncast.To[float32](math.Inf(-1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(float64(got), -1) {
			t.Fatalf("got %v, want -Inf", got)
		}
	})

	t.Run("signedZero", func(t *testing.T) {
		got, err := ncast.To[float32](math.Copysign(0, -1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.Signbit(float64(got)) {
			t.Fatalf("got %v, want -0", got)
		}
	})

	t.Run("denormal", func(t *testing.T) {
		// A double denormal below float32's smallest denormal is in range
		// (range-only validation) and flushes toward zero on conversion.
		got, err := ncast.To[float32](5e-324)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 && got > math.SmallestNonzeroFloat32 {
			t.Fatalf("got %v, want zero or a denormal", got)
		}
	})
}

func TestToFloatToInt(t *testing.T) {
	t.Run("truncatesTowardZero", func(t *testing.T) {
		tests := []struct {
			name string
			in   float64
			want int
		}{
			{name: "positive", in: 3.99, want: 3},
			{name: "negative", in: -3.99, want: -3},
			{name: "exact", in: 42.0, want: 42},
			{name: "zero", in: 0.0, want: 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := ncast.To[int](tt.in)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Fatalf("got %d, want %d", got, tt.want)
				}
			})
		}
	})

	t.Run("nan", func(t *testing.T) {
		if _, err := ncast.To[int](float32(math.NaN())); !errors.Is(err, ncast.ErrNaN) {
			t.Fatalf("got %v, want ErrNaN", err)
		}
	})

	t.Run("positiveInfinity", func(t *testing.T) {
		if _, err := ncast.To[int32](math.Inf(1)); !errors.Is(err, ncast.ErrInfinity) {
			t.Fatalf("got %v, want ErrInfinity", err)
		}
	})

	t.Run("negativeInfinity", func(t *testing.T) {
		if _, err := ncast.To[int32](math.Inf(-1)); !errors.Is(err, ncast.ErrInfinity) {
			t.Fatalf("got %v, want ErrInfinity", err)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		if _, err := ncast.To[uint8](256.0); !errors.Is(err, ncast.ErrExceedsMaximum) {
			t.Fatalf("got %v, want ErrExceedsMaximum", err)
		}
	})

	t.Run("int64Boundary", func(t *testing.T) {
		// float64(MaxInt64) rounds up to 2^63, which does not fit.
		if _, err := ncast.To[int64](float64(math.MaxInt64)); !errors.Is(err, ncast.ErrExceedsMaximum) {
			t.Fatalf("got %v, want ErrExceedsMaximum", err)
		}

		// MinInt64 is a power of two, exact in float64, and in range.
		got, err := ncast.To[int64](float64(math.MinInt64))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != math.MinInt64 {
			t.Fatalf("got %d, want %d", got, int64(math.MinInt64))
		}
	})

	t.Run("negativeToUnsigned", func(t *testing.T) {
		// Float sources report range errors, not the integer-only
		// negative-to-unsigned error.
		if _, err := ncast.To[uint8](-1.5); !errors.Is(err, ncast.ErrBelowMinimum) {
			t.Fatalf("got %v, want ErrBelowMinimum", err)
		}
	})

	t.Run("doubledIntMax", func(t *testing.T) {
		large := float64(math.MaxInt32) * 2
		if _, err := ncast.To[int32](large); !errors.Is(err, ncast.ErrExceedsMaximum) {
			t.Fatalf("got %v, want ErrExceedsMaximum", err)
		}
	})
}

func TestToIntToFloat(t *testing.T) {
	tests := []struct {
		name string
		got  func() (float64, error)
		want float64
	}{
		{name: "small", got: wrapFloat[float32](42), want: 42},
		{name: "negative", got: wrapFloat[float32](-42), want: -42},
		{name: "unsigned", got: wrapFloat[float32](uint(42)), want: 42},
		{name: "preciseInFloat32", got: wrapFloat[float32](int32(1<<24 - 1)), want: 1<<24 - 1},
		{name: "maxInt32ToFloat64", got: wrapFloat[float64](int32(math.MaxInt32)), want: math.MaxInt32},
		{name: "maxUint64", got: wrapFloat[float64](uint64(math.MaxUint64)), want: float64(math.MaxUint64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("precisionLossAccepted", func(t *testing.T) {
		// 2^24+1 is not representable in float32; the conversion rounds
		// and still succeeds, as only range is validated.
		v := int32(1<<24 + 1)
		got, err := ncast.To[float32](v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != float32(v) {
			t.Fatalf("got %v, want %v", got, float32(v))
		}
	})
}

func wrapFloat[T ncast.Float, F ncast.Number](v F) func() (float64, error) {
	return func() (float64, error) {
		got, err := ncast.To[T](v)
		return float64(got), err
	}
}
