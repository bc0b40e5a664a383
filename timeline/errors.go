package timeline

import "errors"

var (
	// ErrDuplicateTime is returned when a keyframe would share its time with
	// another keyframe of the same timeline.
	ErrDuplicateTime = errors.New("keyframe time already occupied")

	// ErrDetached is returned when a keyframe is not (or no longer) part of
	// the timeline it is used with.
	ErrDetached = errors.New("keyframe is not attached to this timeline")

	// ErrInvalidTime is returned for NaN or infinite keyframe times.
	ErrInvalidTime = errors.New("invalid keyframe time")

	// ErrNilDocument is returned by Load for a nil document.
	ErrNilDocument = errors.New("nil timeline document")
)
