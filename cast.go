package ncast

// To converts v to the numeric type T, validating that T can represent the
// value. It returns a [*Error] wrapping one of the sentinel errors when the
// conversion would overflow, underflow, lose the sign, or discard a special
// value's meaning. Precision loss between floating-point types is not a
// failure: only range is validated.
func To[T Number, F Number](v F) (T, error) {
	return castValue[T](v, nil)
}

// ToAt is like [To] but attaches loc to any failure it reports, so the
// error message carries the originating call site.
func ToAt[T Number, F Number](v F, loc Location) (T, error) {
	return castValue[T](v, &loc)
}

// ToMust converts v to type T and panics on error.
func ToMust[T Number, F Number](v F) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// Reinterpret converts between the char-width integer types by reusing the
// source's bit pattern under the target's representation rules. It never
// fails: a negative int8 becomes its two's-complement uint8 counterpart
// rather than a validation error. Callers who want range checking between
// these types use [To] instead; this narrower function is the explicit
// opt-in for reinterpretation semantics.
func Reinterpret[T Char, F Char](v F) T {
	return T(v)
}
