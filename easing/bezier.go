package easing

import (
	"fmt"
	"math"
)

// bisectTolerance bounds the bracket width on the curve parameter u. It
// takes about 20 halvings to reach.
const bisectTolerance = 1e-6

// ControlPoint is a Bézier handle. X is the time influence and must lie in
// [0, 1]; Y is the value influence and is unconstrained, which allows
// overshoot.
type ControlPoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// CubicBezier is the parametric curve through (0, 0), P1, P2 and (1, 1), as
// used by CSS cubic-bezier() timing functions.
type CubicBezier struct {
	P1 ControlPoint
	P2 ControlPoint
}

// NewCubicBezier returns the curve with control points (x1, y1) and
// (x2, y2), or ErrControlPoint if either x is outside [0, 1].
func NewCubicBezier(x1, y1, x2, y2 float64) (CubicBezier, error) {
	b := CubicBezier{P1: ControlPoint{x1, y1}, P2: ControlPoint{x2, y2}}
	if err := b.validate(); err != nil {
		return CubicBezier{}, err
	}
	return b, nil
}

// Ease implements Easing. x(u) has no closed-form inverse, so u is found by
// bisection and y(u) is returned.
func (b CubicBezier) Ease(t float64) (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}
	t = clamp01(t)

	lo, hi := 0.0, 1.0
	for hi-lo > bisectTolerance {
		mid := (lo + hi) / 2
		if bezier(b.P1.X, b.P2.X, mid) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	return bezier(b.P1.Y, b.P2.Y, (lo+hi)/2), nil
}

func (CubicBezier) isEasing()     {}
func (CubicBezier) isDescriptor() {}

func (b CubicBezier) validate() error {
	for i, cp := range []ControlPoint{b.P1, b.P2} {
		if math.IsNaN(cp.X) || cp.X < 0 || cp.X > 1 {
			return fmt.Errorf("cp%d.x = %v: %w", i+1, cp.X, ErrControlPoint)
		}
		if math.IsNaN(cp.Y) || math.IsInf(cp.Y, 0) {
			return fmt.Errorf("cp%d.y = %v: %w", i+1, cp.Y, ErrMalformed)
		}
	}
	return nil
}

// bezier evaluates one axis of the cubic with endpoints 0 and 1.
func bezier(c1, c2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*c1 + 3*v*u*u*c2 + u*u*u
}
