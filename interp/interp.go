// Package interp holds the canonical value interpolators for timelines.
//
// An interpolator blends two values of the same type given a progress
// scalar. Progress is usually in [0, 1] but overshooting easings produce
// values outside it, and every interpolator here extrapolates linearly in
// that case. Interpolators never modify their arguments.
//
// Where shapes disagree (vectors of different lengths, structs that are not
// structs) the interpolator returns from unmodified.
package interp

import "math"

// Float is the constraint for Lerp.
type Float interface {
	~float32 | ~float64
}

// Lerp blends from and to linearly.
func Lerp[T Float](from, to T, progress float64) T {
	return T(float64(from) + (float64(to)-float64(from))*progress)
}

// Float64 is Lerp for float64 values.
func Float64(from, to, progress float64) float64 {
	return from + (to-from)*progress
}

// Int blends two integers and rounds to the nearest.
func Int(from, to int, progress float64) int {
	return int(math.Round(float64(from) + float64(to-from)*progress))
}
