// Package timeline turns a sparse set of keyframes into a continuous
// function of time.
//
// A Timeline keeps its keyframes sorted by time with no two sharing a time.
// Querying a time between two keyframes evaluates the easing of the later
// keyframe and blends the two values with the timeline's Interpolator.
// Before the first keyframe the timeline yields its initial value; after the
// last it holds the last value.
//
// A Timeline is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package timeline

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"sort"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/interp"
)

// An Interpolator blends two values. Progress is the eased position between
// them and may fall outside [0, 1]. Interpolators must not modify their
// arguments.
type Interpolator[T any] func(from, to T, progress float64) T

// Timeline is an ordered store of keyframes over values of type T.
type Timeline[T any] struct {
	initial       T
	interp        Interpolator[T]
	copyValue     func(T) T
	defaultEasing easing.Easing
	keyframes     []*Keyframe[T]
}

// An Option configures a Timeline.
type Option[T any] func(*Timeline[T])

// WithCopy sets the function used to deep-copy values when a timeline is
// snapshotted or loaded. The default is plain assignment, which is enough
// for value types; New refuses slice, map and pointer types without it.
func WithCopy[T any](fn func(T) T) Option[T] {
	return func(tl *Timeline[T]) {
		tl.copyValue = fn
	}
}

// WithDefaultEasing sets the easing given to keyframes that have no
// predecessor to inherit from. The default is easing.Linear.
func WithDefaultEasing[T any](e easing.Easing) Option[T] {
	return func(tl *Timeline[T]) {
		tl.defaultEasing = e
	}
}

// New creates an empty timeline. It panics if blend is nil, or if T is a
// slice, map or pointer type and no WithCopy option is given: snapshots of
// such a timeline would share values with it.
func New[T any](initial T, blend Interpolator[T], opts ...Option[T]) *Timeline[T] {
	if blend == nil {
		panic("timeline: nil interpolator")
	}
	tl := new(Timeline[T])
	tl.interp = blend
	tl.defaultEasing = easing.Linear
	for _, opt := range opts {
		opt(tl)
	}
	if tl.defaultEasing == nil {
		tl.defaultEasing = easing.Linear
	}
	if tl.copyValue == nil && isReference(reflect.TypeOf((*T)(nil)).Elem()) {
		panic(fmt.Sprintf("timeline: %v values need WithCopy", reflect.TypeOf((*T)(nil)).Elem()))
	}
	tl.initial = tl.copy(initial)
	return tl
}

// NewVector creates a timeline of []float64 values blended component-wise
// and deep-copied on snapshot and load.
func NewVector(initial []float64, opts ...Option[[]float64]) *Timeline[[]float64] {
	opts = append([]Option[[]float64]{WithCopy(interp.CopyVector)}, opts...)
	return New(initial, interp.Vector, opts...)
}

// NewFields creates a timeline of named scalar fields, blended key by key
// and deep-copied on snapshot and load.
func NewFields(initial map[string]float64, opts ...Option[map[string]float64]) *Timeline[map[string]float64] {
	opts = append([]Option[map[string]float64]{WithCopy(interp.CopyFields)}, opts...)
	return New(initial, interp.Fields, opts...)
}

func isReference(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		return true
	}
	return false
}

// InitialValue returns the value before the first keyframe.
func (tl *Timeline[T]) InitialValue() T {
	return tl.initial
}

// SetInitialValue replaces the value before the first keyframe.
func (tl *Timeline[T]) SetInitialValue(v T) {
	tl.initial = v
}

// Len returns the number of keyframes.
func (tl *Timeline[T]) Len() int {
	return len(tl.keyframes)
}

// Keyframes returns the keyframes in time order. The slice is a copy; the
// keyframes are not.
func (tl *Timeline[T]) Keyframes() []*Keyframe[T] {
	return slices.Clone(tl.keyframes)
}

// Search finds time by binary search. If a keyframe sits exactly at time it
// returns its index and true; otherwise it returns the index at which a
// keyframe for time would be inserted, and false.
func (tl *Timeline[T]) Search(time float64) (int, bool) {
	i := sort.Search(len(tl.keyframes), func(i int) bool {
		return tl.keyframes[i].time >= time
	})
	return i, i < len(tl.keyframes) && tl.keyframes[i].time == time
}

// indexOf resolves k by its current time and checks identity, so a stale or
// foreign keyframe is never mistaken for the one at its time.
func (tl *Timeline[T]) indexOf(k *Keyframe[T]) (int, bool) {
	if k == nil {
		return 0, false
	}
	i, found := tl.Search(k.time)
	if !found || tl.keyframes[i] != k {
		return i, false
	}
	return i, true
}

// Contains reports whether k belongs to the timeline.
func (tl *Timeline[T]) Contains(k *Keyframe[T]) bool {
	_, ok := tl.indexOf(k)
	return ok
}

// KeyframeAt returns the keyframe at exactly time, or nil.
func (tl *Timeline[T]) KeyframeAt(time float64) *Keyframe[T] {
	if i, found := tl.Search(time); found {
		return tl.keyframes[i]
	}
	return nil
}

// KeyframesBetween returns the keyframes with a time in [from, to). The
// result is empty when from >= to.
func (tl *Timeline[T]) KeyframesBetween(from, to float64) []*Keyframe[T] {
	i, j := tl.span(from, to)
	return slices.Clone(tl.keyframes[i:j])
}

func (tl *Timeline[T]) span(from, to float64) (int, int) {
	i, _ := tl.Search(from)
	j, _ := tl.Search(to)
	if j < i {
		j = i
	}
	return i, j
}

// Get returns the value of the timeline at time.
//
// A keyframe exactly at time yields its value unblended. Between two
// keyframes the later keyframe's easing maps the normalised position to
// progress, and the interpolator blends the two values by that progress.
// Easing errors are returned rather than papered over.
func (tl *Timeline[T]) Get(time float64) (T, error) {
	i, found := tl.Search(time)
	switch {
	case found:
		return tl.keyframes[i].value, nil
	case i == 0:
		return tl.initial, nil
	case i == len(tl.keyframes):
		return tl.keyframes[i-1].value, nil
	}

	before, after := tl.keyframes[i-1], tl.keyframes[i]
	pos := (time - before.time) / (after.time - before.time)
	progress, err := easing.Evaluate(after.easing, pos)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("segment %v to %v: %w", before.time, after.time, err)
	}
	return tl.interp(before.value, after.value, progress), nil
}

// Values samples the timeline at each of times.
func (tl *Timeline[T]) Values(times ...float64) ([]T, error) {
	out := make([]T, len(times))
	for i, t := range times {
		v, err := tl.Get(t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (tl *Timeline[T]) copy(v T) T {
	if tl.copyValue == nil {
		return v
	}
	return tl.copyValue(v)
}

func validTime(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%v: %w", t, ErrInvalidTime)
	}
	return nil
}
