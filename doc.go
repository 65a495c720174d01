// Package ncast provides validated conversions between Go's numeric types.
//
// A validated cast checks that the source value is representable in the
// target type before converting, returning an error instead of silently
// wrapping, truncating, or corrupting the sign. [To] is the general entry
// point; [ToAt] attaches a caller-supplied [Location] to any failure, and
// [Reinterpret] performs the deliberately unchecked bit-reinterpreting
// conversion between the char-width types.
//
//	n, err := ncast.To[uint8](300) // fails: exceeds maximum for target type
//	c := ncast.Reinterpret[uint8](int8(-1)) // 255
//
// Validation can be compiled out for call sites that have established
// safety by other means: building with -tags ncast_novalidate turns every
// conversion into its unchecked native equivalent with no runtime cost.
package ncast
