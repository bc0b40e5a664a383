package easing

import "errors"

var (
	// ErrUnknownEasing is returned for an unrecognised curve name or variant.
	ErrUnknownEasing = errors.New("unknown easing")

	// ErrMalformed is returned for a structurally invalid easing, such as a
	// step easing with no steps or a nil function.
	ErrMalformed = errors.New("malformed easing")

	// ErrControlPoint is returned when a Bézier control point has an x
	// outside [0, 1]. Such control points are rejected, never clamped.
	ErrControlPoint = errors.New("cubic-bezier control point x out of range [0, 1]")

	// ErrNotSerializable is returned when a custom Func easing is described
	// or encoded.
	ErrNotSerializable = errors.New("custom easing has no serialised form")
)
