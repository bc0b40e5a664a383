package easing

import (
	"fmt"
	"math"
)

// Steps partitions [0, 1] into Count equal segments. Within segment i the
// output holds at i/Count, or, when ForEachStep is set, moves from i/Count to
// (i+1)/Count along that child easing. Children may themselves be Steps.
type Steps struct {
	Count       int
	ForEachStep Easing
}

// Ease implements Easing.
func (s Steps) Ease(t float64) (float64, error) {
	if s.Count <= 0 {
		return 0, fmt.Errorf("step count %d: %w", s.Count, ErrMalformed)
	}
	if t <= 0 {
		t = 0
	}
	if t >= 1 {
		return 1, nil
	}

	n := float64(s.Count)
	seg := math.Floor(t * n)
	start := seg / n
	if s.ForEachStep == nil {
		return start, nil
	}

	p, err := s.ForEachStep.Ease(t*n - seg)
	if err != nil {
		return 0, fmt.Errorf("step %d of %d: %w", int(seg)+1, s.Count, err)
	}
	return start + p/n, nil
}

func (Steps) isEasing()     {}
func (Steps) isDescriptor() {}

func (s Steps) validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("step count %d: %w", s.Count, ErrMalformed)
	}
	if s.ForEachStep == nil {
		return nil
	}
	return Validate(s.ForEachStep)
}
