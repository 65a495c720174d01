package ncast

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// castValue classifies the source and target types as floating or integral
// and applies the matching validation strategy. The category helpers below
// are constant per instantiation, so after inlining each (T, F) pair
// compiles down to the one applicable strategy.
func castValue[T Number, F Number](v F, loc *Location) (T, error) {
	if !validationEnabled {
		return T(v), nil
	}

	switch {
	case isFloat[F]() && isFloat[T]():
		return floatToFloat[T](v, loc)
	case isFloat[F]():
		return floatToInt[T](v, loc)
	case isFloat[T]():
		return intToFloat[T](v, loc)
	default:
		return intToInt[T](v, loc)
	}
}

// floatToFloat validates a float source against a float target's finite
// range. NaN and infinities convert unchanged regardless of target width;
// precision loss on narrowing is accepted, only range is checked.
func floatToFloat[T Number, F Number](v F, loc *Location) (T, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return T(v), nil
	}

	max := floatMax[T]()
	if f > max {
		return 0, failBound(ErrExceedsMaximum, f, max, loc)
	}
	if f < -max {
		return 0, failBound(ErrBelowMinimum, f, -max, loc)
	}

	return T(v), nil
}

// floatToInt validates a float source against an integer target. Integer
// types have no NaN or infinity representation, so those fail outright;
// finite in-range values truncate toward zero.
func floatToInt[T Number, F Number](v F, loc *Location) (T, error) {
	f := float64(v)
	if math.IsNaN(f) {
		return 0, fail(ErrNaN, f, loc)
	}
	if math.IsInf(f, 0) {
		return 0, fail(ErrInfinity, f, loc)
	}

	// The bounds are powers of two and therefore exact in float64: the
	// lower bound is inclusive, the upper bound exclusive. Comparing
	// against float64(max) directly would misclassify values between
	// 2^63-1 and 2^63 for 64-bit targets.
	lo, hi := intRangeFloat[T]()
	min, max := intBounds[T]()
	if f >= hi {
		return 0, failBound(ErrExceedsMaximum, f, max, loc)
	}
	if f < lo {
		return 0, failBound(ErrBelowMinimum, f, min, loc)
	}

	return T(v), nil
}

// intToFloat widens the integer source to float64, the widest floating
// type available, and validates it against the target float's finite
// range. Widening first keeps the comparison exact even for 64-bit
// sources that a narrower float could not represent.
func intToFloat[T Number, F Number](v F, loc *Location) (T, error) {
	f := float64(v)

	max := floatMax[T]()
	if f > max {
		return 0, failBound(ErrExceedsMaximum, v, max, loc)
	}
	if f < -max {
		return 0, failBound(ErrBelowMinimum, v, -max, loc)
	}

	return T(v), nil
}

// intToInt validates an integer source against an integer target. The
// value and the target's bounds are widened to the (int64, uint64) pair:
// non-negative values compare as uint64 against the maximum, negative
// values as int64 against the minimum, so every comparison is exact for
// all integer widths. Bounds are inclusive.
func intToInt[T Number, F Number](v F, loc *Location) (T, error) {
	neg := v < 0

	// A negative value is always below an unsigned minimum of zero, but
	// this is the single most common cast bug and gets its own error.
	if neg && !isSigned[T]() {
		return 0, fail(ErrNegativeToUnsigned, v, loc)
	}

	min, max := intBounds[T]()
	if neg {
		if int64(v) < min {
			return 0, failBound(ErrBelowMinimum, v, min, loc)
		}
	} else if uint64(v) > max {
		return 0, failBound(ErrExceedsMaximum, v, max, loc)
	}

	return T(v), nil
}

// isFloat reports whether the type argument's underlying type is a
// floating-point type. Converting a non-integral float64 to an integer
// type discards the fraction, so only float targets keep it.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != T(0)
}

// isSigned reports whether the type argument can represent negative
// values.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// intBounds returns the representable range of the integer type argument,
// widened to the (int64, uint64) comparison pair.
func intBounds[T Number]() (min int64, max uint64) {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	if isSigned[T]() {
		return -1 << (bits - 1), ^uint64(0) >> (64 - bits + 1)
	}
	return 0, ^uint64(0) >> (64 - bits)
}

// intRangeFloat returns the integer type argument's range as float64
// bounds: an inclusive lower bound and an exclusive upper bound, both
// powers of two and therefore exactly representable.
func intRangeFloat[T Number]() (lo, hi float64) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if isSigned[T]() {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
	return 0, math.Ldexp(1, bits)
}

// floatMax returns the largest finite value of the float type argument.
func floatMax[T Number]() float64 {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

func fail(reason error, value any, loc *Location) error {
	return &Error{Reason: reason, Value: formatValue(value), Loc: loc}
}

func failBound(reason error, value, bound any, loc *Location) error {
	return &Error{
		Reason: reason,
		Value:  formatValue(value),
		Bound:  formatValue(bound),
		Loc:    loc,
	}
}

func formatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
