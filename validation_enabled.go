//go:build !ncast_novalidate

package ncast

// validationEnabled gates every range, sign, and special-value check.
// Building with -tags ncast_novalidate flips it to false, reducing each
// conversion to its unchecked native equivalent with no runtime branch.
const validationEnabled = true
