package stream

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"
)

// A KeyframeAnimation is an Animation that fills the strip with the colour
// of a Track at the current runtime.
type KeyframeAnimation struct {
	track     *Track
	numPixels int
	last      colorful.Color
}

// NewKeyframeAnimation creates an instance of a KeyframeAnimation object.
func NewKeyframeAnimation(track *Track, numPixels int) *KeyframeAnimation {
	k := new(KeyframeAnimation)
	k.track = track
	k.numPixels = numPixels
	return k
}

// CalculateFrame creates a new Frame instance. If the track cannot be
// evaluated the last good colour is held.
func (k *KeyframeAnimation) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(k.numPixels)
	c, err := k.track.ValueAt(float64(runtimeMs))
	if err != nil {
		log.Printf("Keyframe track: %v", err)
		c = k.last
	}
	k.last = c
	f.Fill(c)
	return f
}
