package ncast

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors, one per rejection cause. Failures returned by [To] and
// [ToAt] wrap exactly one of these, so callers can branch with [errors.Is].
var (
	// ErrNegativeToUnsigned reports a negative signed value cast to an
	// unsigned type.
	ErrNegativeToUnsigned = errors.New("attempt to cast negative value to unsigned type")

	// ErrExceedsMaximum reports a value above the target type's maximum.
	ErrExceedsMaximum = errors.New("value exceeds maximum for target type")

	// ErrBelowMinimum reports a value below the target type's minimum.
	ErrBelowMinimum = errors.New("value is below minimum for target type")

	// ErrNaN reports a floating-point NaN cast to an integer type.
	ErrNaN = errors.New("cannot convert NaN to non-floating-point type")

	// ErrInfinity reports a floating-point infinity cast to an integer type.
	ErrInfinity = errors.New("cannot convert infinity to non-floating-point type")
)

// Location identifies the call site a failure originated from. The core
// never captures one itself; callers supply it through [ToAt], typically
// built with [Caller].
type Location struct {
	File     string
	Line     int
	Function string
}

func (l Location) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "file: %s, line: %d", l.File, l.Line)
	if l.Function != "" {
		fmt.Fprintf(&b, ", function: %s", l.Function)
	}
	return b.String()
}

// Caller returns the Location of the caller's frame. skip is the number of
// additional stack frames to ascend, with 0 identifying the caller of
// Caller itself.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// Error is a rejected conversion. It wraps one of the sentinel errors and
// records the offending value, the bound that was violated (when one
// applies), and the call-site Location when the caller supplied one.
type Error struct {
	Reason error
	Value  string
	Bound  string
	Loc    *Location
}

// Location returns the call-site location attached to the failure, if any.
func (e *Error) Location() (Location, bool) {
	if e.Loc == nil {
		return Location{}, false
	}
	return *e.Loc, true
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cast error: ")
	switch e.Reason {
	case ErrNegativeToUnsigned:
		fmt.Fprintf(&b, "attempt to cast negative value (%s) to unsigned type", e.Value)
	case ErrExceedsMaximum:
		fmt.Fprintf(&b, "value (%s) exceeds maximum for target type (%s)", e.Value, e.Bound)
	case ErrBelowMinimum:
		fmt.Fprintf(&b, "value (%s) is below minimum for target type (%s)", e.Value, e.Bound)
	default:
		b.WriteString(e.Reason.Error())
	}
	if e.Loc != nil && e.Loc.File != "" {
		fmt.Fprintf(&b, " (%s)", e.Loc)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Reason }
