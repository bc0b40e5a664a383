package timeline

import (
	"fmt"
	"slices"
)

// Set updates the keyframe at time, or adds one if none exists. On update
// the value is replaced and the easing is replaced only if WithEasing is
// given.
func (tl *Timeline[T]) Set(time float64, value T, opts ...KeyframeOption) (*Keyframe[T], error) {
	k := tl.KeyframeAt(time)
	if k == nil {
		return tl.Add(time, value, opts...)
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("set at %v: %w", time, err)
	}
	k.value = value
	k.apply(o)
	return k, nil
}

// Add inserts a new keyframe at its sorted position. Without WithEasing it
// takes the easing of the keyframe before it, or the timeline default if
// there is none. Adding at an occupied time fails with ErrDuplicateTime; use
// Set to overwrite.
func (tl *Timeline[T]) Add(time float64, value T, opts ...KeyframeOption) (*Keyframe[T], error) {
	if err := validTime(time); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	i, found := tl.Search(time)
	if found {
		return nil, fmt.Errorf("add at %v: %w", time, ErrDuplicateTime)
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("add at %v: %w", time, err)
	}

	k := &Keyframe[T]{time: time, value: value, easing: tl.defaultEasing}
	if i > 0 {
		k.easing = tl.keyframes[i-1].easing
	}
	k.apply(o)

	tl.keyframes = slices.Insert(tl.keyframes, i, k)
	return k, nil
}

// Remove removes each of ks from the timeline and returns how many were
// removed. Keyframes that are not part of the timeline are ignored.
func (tl *Timeline[T]) Remove(ks ...*Keyframe[T]) int {
	n := 0
	for _, k := range ks {
		if i, ok := tl.indexOf(k); ok {
			tl.keyframes = slices.Delete(tl.keyframes, i, i+1)
			n++
		}
	}
	return n
}

// RemoveBetween removes the keyframes with a time in [from, to) and returns
// them.
func (tl *Timeline[T]) RemoveBetween(from, to float64) []*Keyframe[T] {
	i, j := tl.span(from, to)
	if i == j {
		return nil
	}
	removed := slices.Clone(tl.keyframes[i:j])
	tl.keyframes = slices.Delete(tl.keyframes, i, j)
	Logger().Debug("keyframes removed", "from", from, "to", to, "count", len(removed))
	return removed
}

// Clear removes every keyframe.
func (tl *Timeline[T]) Clear() {
	clear(tl.keyframes)
	tl.keyframes = tl.keyframes[:0]
}

// SetTime moves k to time and repositions it so the timeline stays sorted.
// Setting the current time is a no-op. It fails with ErrDetached if k is not
// part of the timeline and with ErrDuplicateTime if another keyframe already
// sits at time.
func (tl *Timeline[T]) SetTime(k *Keyframe[T], time float64) error {
	if k == nil {
		return ErrDetached
	}
	if k.time == time {
		return nil
	}
	if err := validTime(time); err != nil {
		return fmt.Errorf("set time: %w", err)
	}
	from, ok := tl.indexOf(k)
	if !ok {
		return fmt.Errorf("set time of keyframe at %v: %w", k.time, ErrDetached)
	}
	to, found := tl.Search(time)
	if found {
		return fmt.Errorf("set time to %v: %w", time, ErrDuplicateTime)
	}

	old := k.time
	k.time = time
	if to <= from {
		// Inserting ahead of the old slot shifts it right by one.
		tl.keyframes = slices.Insert(tl.keyframes, to, k)
		tl.keyframes = slices.Delete(tl.keyframes, from+1, from+2)
	} else {
		// The insertion index counted the old slot, which is gone once it
		// has been removed.
		tl.keyframes = slices.Delete(tl.keyframes, from, from+1)
		to--
		tl.keyframes = slices.Insert(tl.keyframes, to, k)
	}
	Logger().Debug("keyframe moved", "from", old, "to", time, "oldIndex", from, "newIndex", to)
	return nil
}
