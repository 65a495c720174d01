package ncast

type (
	// Signed matches the signed integer types.
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}

	// Unsigned matches the unsigned integer types.
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}

	// Integer matches all integer types.
	Integer interface {
		Signed | Unsigned
	}

	// Float matches the floating-point types.
	Float interface {
		~float32 | ~float64
	}

	// Number matches every type the validator accepts: anything outside
	// this set is rejected at compile time.
	Number interface {
		Integer | Float
	}

	// Char matches the char-width integer types, the only types accepted
	// by [Char]. Note that rune is 32 bits wide and is deliberately not a
	// member.
	Char interface {
		~int8 | ~uint8
	}
)
