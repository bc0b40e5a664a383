package timeline

import (
	"fmt"
	"sort"

	"github.com/matt-g-everett/keyframe/easing"
)

// A Flag is advisory editor metadata attached to a keyframe. Flags never
// affect evaluation.
type Flag string

// FlagLocked marks a keyframe that editors should not move.
const FlagLocked Flag = "locked"

// A Keyframe pins a value to a time. Its easing shapes the segment that
// approaches it from the previous keyframe.
//
// A Keyframe belongs to the Timeline that created it. Its time can only be
// changed through Timeline.SetTime so the timeline stays ordered.
type Keyframe[T any] struct {
	time   float64
	value  T
	easing easing.Easing
	flags  map[Flag]struct{}
}

// Time returns the keyframe time.
func (k *Keyframe[T]) Time() float64 {
	return k.time
}

// Value returns the keyframe value.
func (k *Keyframe[T]) Value() T {
	return k.value
}

// SetValue replaces the keyframe value.
func (k *Keyframe[T]) SetValue(v T) {
	k.value = v
}

// Easing returns the easing of the segment ending at this keyframe.
func (k *Keyframe[T]) Easing() easing.Easing {
	return k.easing
}

// SetEasing replaces the easing of the segment ending at this keyframe.
func (k *Keyframe[T]) SetEasing(e easing.Easing) error {
	if e == nil {
		return fmt.Errorf("keyframe at %v: nil easing: %w", k.time, easing.ErrMalformed)
	}
	k.easing = e
	return nil
}

// Flags returns the keyframe flags in sorted order.
func (k *Keyframe[T]) Flags() []Flag {
	flags := make([]Flag, 0, len(k.flags))
	for f := range k.flags {
		flags = append(flags, f)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return flags
}

// HasFlag reports whether f is set.
func (k *Keyframe[T]) HasFlag(f Flag) bool {
	_, ok := k.flags[f]
	return ok
}

// SetFlag sets f.
func (k *Keyframe[T]) SetFlag(f Flag) {
	if k.flags == nil {
		k.flags = make(map[Flag]struct{})
	}
	k.flags[f] = struct{}{}
}

// ClearFlag clears f.
func (k *Keyframe[T]) ClearFlag(f Flag) {
	delete(k.flags, f)
}

// A KeyframeOption customises a keyframe created or updated by Set or Add.
type KeyframeOption func(*keyframeOptions)

type keyframeOptions struct {
	easing    easing.Easing
	hasEasing bool
	flags     []Flag
}

// WithEasing sets the keyframe easing. Without it, Add inherits the easing
// of the preceding keyframe and Set keeps the existing one.
func WithEasing(e easing.Easing) KeyframeOption {
	return func(o *keyframeOptions) {
		o.easing = e
		o.hasEasing = true
	}
}

// WithFlags sets flags on the keyframe. Existing flags are kept.
func WithFlags(flags ...Flag) KeyframeOption {
	return func(o *keyframeOptions) {
		o.flags = append(o.flags, flags...)
	}
}

func applyOptions(opts []KeyframeOption) (keyframeOptions, error) {
	var o keyframeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasEasing && o.easing == nil {
		return o, fmt.Errorf("nil easing: %w", easing.ErrMalformed)
	}
	return o, nil
}

func (k *Keyframe[T]) apply(o keyframeOptions) {
	if o.hasEasing {
		k.easing = o.easing
	}
	for _, f := range o.flags {
		k.SetFlag(f)
	}
}
