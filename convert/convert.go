package convert

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"go.dw1.io/ncast"
)

// To converts v to type T.
func To[T Type](v any) (T, error) {
	var zero T

	switch t := any(zero).(type) {
	case int:
		return toNumberOrBase[T, int](v)
	case int8:
		return toNumberOrBase[T, int8](v)
	case int16:
		return toNumberOrBase[T, int16](v)
	case int32:
		return toNumberOrBase[T, int32](v)
	case int64:
		return toNumberOrBase[T, int64](v)
	case uint:
		return toNumberOrBase[T, uint](v)
	case uint8:
		return toNumberOrBase[T, uint8](v)
	case uint16:
		return toNumberOrBase[T, uint16](v)
	case uint32:
		return toNumberOrBase[T, uint32](v)
	case uint64:
		return toNumberOrBase[T, uint64](v)
	case float32:
		return toNumberOrBase[T, float32](v)
	case float64:
		return toNumberOrBase[T, float64](v)
	case uintptr:
		if !isNumberVal(v) {
			return zero, fmt.Errorf("unsupported conversion to %T from %T", t, v)
		}

		return toNumber[T, uintptr](v)
	case string:
		return toBase[T, string](v)
	case bool:
		return toBase[T, bool](v)
	case time.Time:
		return toBase[T, time.Time](v)
	case time.Duration:
		return toBase[T, time.Duration](v)
	default:
		return zero, nil
	}
}

// ToMust converts v to type T and panics on error.
func ToMust[T Type](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// toNumber converts v's numeric dynamic value to the numeric type N through
// the ncast validator and re-types the result as T (which is the caller's
// type parameter).
func toNumber[T any, N ncast.Number](v any) (T, error) {
	var (
		zero      T
		converted N
		err       error
	)

	switch s := v.(type) {
	case int:
		converted, err = ncast.To[N](s)
	case int8:
		converted, err = ncast.To[N](s)
	case int16:
		converted, err = ncast.To[N](s)
	case int32:
		converted, err = ncast.To[N](s)
	case int64:
		converted, err = ncast.To[N](s)
	case uint:
		converted, err = ncast.To[N](s)
	case uint8:
		converted, err = ncast.To[N](s)
	case uint16:
		converted, err = ncast.To[N](s)
	case uint32:
		converted, err = ncast.To[N](s)
	case uint64:
		converted, err = ncast.To[N](s)
	case uintptr:
		converted, err = ncast.To[N](s)
	case float32:
		converted, err = ncast.To[N](s)
	case float64:
		converted, err = ncast.To[N](s)
	default:
		return zero, fmt.Errorf("unsupported conversion to %T from %T", zero, v)
	}
	if err != nil {
		return zero, err
	}

	return any(converted).(T), nil
}

// toBase converts to the basic type B using spf13/cast and re-types the
// result as T (which is the caller's type parameter).
func toBase[T any, B Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toNumberOrBase converts v to the numeric type N. If v's dynamic value is
// numeric, it goes through the ncast validator; anything else is handled by
// cast.ToE.
func toNumberOrBase[T any, N IntersectionType](v any) (T, error) {
	if isNumberVal(v) {
		return toNumber[T, N](v)
	}

	return toBase[T, N](v)
}

// isNumberType reports whether the type argument T is one of the numeric
// types we route through the ncast validator.
func isNumberType[T any]() bool {
	switch any(*new(T)).(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}

// isNumberVal reports whether v's dynamic type is one of the numeric types
// eligible for validated conversion.
func isNumberVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}
