package stream

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/interp"
	"github.com/matt-g-everett/keyframe/timeline"
)

// A Track is a colour timeline shared by the frame loop, MQTT updates and
// the HTTP API. Timelines are single-writer, so every access goes through
// the track's lock.
type Track struct {
	mu     sync.Mutex
	tl     *timeline.Timeline[colorful.Color]
	loopMs int64
}

// NewTrack creates an empty Track. Colours blend along the HCL hue arc.
// When loopMs is positive, time wraps every loopMs milliseconds.
func NewTrack(initial colorful.Color, loopMs int64) *Track {
	t := new(Track)
	t.tl = timeline.New(initial, interp.Hcl)
	t.loopMs = loopMs
	return t
}

// ValueAt returns the track colour at runtimeMs.
func (t *Track) ValueAt(runtimeMs float64) (colorful.Color, error) {
	if t.loopMs > 0 {
		runtimeMs = math.Mod(runtimeMs, float64(t.loopMs))
		if runtimeMs < 0 {
			runtimeMs += float64(t.loopMs)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tl.Get(runtimeMs)
}

// Set places a colour keyframe at timeMs.
func (t *Track) Set(timeMs float64, c colorful.Color, e easing.Easing) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var opts []timeline.KeyframeOption
	if e != nil {
		opts = append(opts, timeline.WithEasing(e))
	}
	_, err := t.tl.Set(timeMs, c, opts...)
	return err
}

// Len returns the number of keyframes on the track.
func (t *Track) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tl.Len()
}

// EncodeYAML encodes the track timeline as a YAML document.
func (t *Track) EncodeYAML() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timeline.EncodeYAML(t.tl)
}

// LoadYAML replaces the track timeline with the YAML document in data. The
// track is unchanged if the document is invalid.
func (t *Track) LoadYAML(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return timeline.DecodeYAML(t.tl, data)
}
