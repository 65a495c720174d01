// Package convert provides functions to convert values of unknown dynamic
// type to a concrete type.
//
// Numeric inputs bound for numeric targets are validated with [ncast], so
// overflow, underflow, sign loss, NaN, and infinity are reported as errors
// instead of being silently truncated.
//
// For non-numeric types it uses [cast] for robust and flexible casting
// capabilities.
package convert
