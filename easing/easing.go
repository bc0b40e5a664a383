// Package easing maps normalised time in [0, 1] to animation progress.
//
// An Easing is one of four variants: a predefined curve selected by name
// (Named), a caller supplied function (Func), a step composite (Steps) or a
// parametric cubic Bézier (CubicBezier). Progress may overshoot [0, 1] for
// curves such as easeOutBack or a Bézier with control points outside the unit
// square on the y axis.
package easing

import "fmt"

// An Easing converts normalised time into progress.
//
// The set of implementations is closed; see Named, Func, Steps and
// CubicBezier.
type Easing interface {
	Ease(t float64) (float64, error)
	isEasing()
}

// A Descriptor is an Easing that has a wire representation. Func is the only
// variant that is not a Descriptor.
type Descriptor interface {
	Easing
	isDescriptor()
}

// Linear is the default easing for new keyframes.
const Linear Named = "linear"

// Hold keeps progress at 0 until the next keyframe is reached.
const Hold Named = "hold"

// Evaluate returns the progress of e at normalised time t.
func Evaluate(e Easing, t float64) (float64, error) {
	if e == nil {
		return 0, fmt.Errorf("nil easing: %w", ErrMalformed)
	}
	return e.Ease(t)
}

// Func is a custom easing curve. It is evaluated directly and cannot be
// serialised.
type Func func(t float64) float64

// Ease implements Easing.
func (f Func) Ease(t float64) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("nil easing func: %w", ErrMalformed)
	}
	return f(t), nil
}

func (Func) isEasing() {}

// Clone returns a copy of e that shares no mutable state with it.
func Clone(e Easing) Easing {
	switch v := e.(type) {
	case Steps:
		v.ForEachStep = Clone(v.ForEachStep)
		return v
	case *Steps:
		if v == nil {
			return nil
		}
		c := *v
		c.ForEachStep = Clone(c.ForEachStep)
		return c
	case *CubicBezier:
		if v == nil {
			return nil
		}
		return *v
	default:
		return e
	}
}

// Describe returns the serialisable form of e, or ErrNotSerializable if e is
// (or contains) a custom Func.
func Describe(e Easing) (Descriptor, error) {
	switch v := e.(type) {
	case Named:
		return v, nil
	case CubicBezier:
		return v, nil
	case *CubicBezier:
		if v == nil {
			return nil, fmt.Errorf("nil cubic-bezier: %w", ErrMalformed)
		}
		return *v, nil
	case Steps:
		return describeSteps(v)
	case *Steps:
		if v == nil {
			return nil, fmt.Errorf("nil step easing: %w", ErrMalformed)
		}
		return describeSteps(*v)
	case Func:
		return nil, ErrNotSerializable
	case nil:
		return nil, fmt.Errorf("nil easing: %w", ErrMalformed)
	default:
		return nil, fmt.Errorf("easing %T: %w", e, ErrUnknownEasing)
	}
}

func describeSteps(s Steps) (Descriptor, error) {
	if s.ForEachStep == nil {
		return s, nil
	}
	child, err := Describe(s.ForEachStep)
	if err != nil {
		return nil, fmt.Errorf("step easing: %w", err)
	}
	s.ForEachStep = child
	return s, nil
}

// Validate reports whether e can be evaluated. It checks names, step counts
// and Bézier control points recursively without evaluating the curve.
func Validate(e Easing) error {
	switch v := e.(type) {
	case Named:
		if _, ok := curves[v]; !ok {
			return fmt.Errorf("%q: %w", string(v), ErrUnknownEasing)
		}
		return nil
	case CubicBezier:
		return v.validate()
	case *CubicBezier:
		if v == nil {
			return fmt.Errorf("nil cubic-bezier: %w", ErrMalformed)
		}
		return v.validate()
	case Steps:
		return v.validate()
	case *Steps:
		if v == nil {
			return fmt.Errorf("nil step easing: %w", ErrMalformed)
		}
		return v.validate()
	case Func:
		if v == nil {
			return fmt.Errorf("nil easing func: %w", ErrMalformed)
		}
		return nil
	case nil:
		return fmt.Errorf("nil easing: %w", ErrMalformed)
	default:
		return fmt.Errorf("easing %T: %w", e, ErrUnknownEasing)
	}
}

// Sample evaluates e at n evenly spaced points covering [0, 1] inclusive.
func Sample(e Easing, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count %d: %w", n, ErrMalformed)
	}
	lut := make([]float64, n)
	step := 1.0 / float64(n-1)
	for i := range lut {
		p, err := Evaluate(e, float64(i)*step)
		if err != nil {
			return nil, err
		}
		lut[i] = p
	}
	return lut, nil
}
