package convert

import (
	"github.com/spf13/cast"

	"go.dw1.io/ncast"
)

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// Number is an alias for [ncast.Number].
type Number = ncast.Number

// IntersectionType is a type constraint that matches types that are both
// [cast.Basic] and [ncast.Number].
type IntersectionType interface {
	cast.Basic
	ncast.Number
}

// Type is a constraint that matches all types supported by [cast.ToE] or
// the ncast validator.
type Type interface {
	Basic | Number
}
