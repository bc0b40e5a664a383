package stream

import (
	"errors"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/keyframe/easing"
	"github.com/matt-g-everett/keyframe/timeline"
)

const trackDoc = `
initialValue: {r: 0, g: 0, b: 0}
keyframes:
  - time: 500
    value: {r: 1, g: 1, b: 1}
    easing: linear
  - time: 0
    value: {r: 1, g: 0, b: 0}
`

func TestTrackLoop(t *testing.T) {
	tr := NewTrack(colorful.Color{}, 1000)
	if err := tr.Set(0, red, nil); err != nil {
		t.Fatal(err)
	}
	if err := tr.Set(500, white, easing.Linear); err != nil {
		t.Fatal(err)
	}

	for _, ms := range []float64{500, 1500, -500, 900} {
		c, err := tr.ValueAt(ms)
		if err != nil {
			t.Fatalf("ValueAt(%v): %v", ms, err)
		}
		if c != white {
			t.Errorf("ValueAt(%v) = %v, want white", ms, c)
		}
	}
	if c, _ := tr.ValueAt(2000); c != red {
		t.Errorf("ValueAt(2000) = %v, want red", c)
	}
}

func TestTrackNoLoop(t *testing.T) {
	tr := NewTrack(blue, 0)
	if err := tr.Set(1000, red, nil); err != nil {
		t.Fatal(err)
	}
	if c, _ := tr.ValueAt(-10); c != blue {
		t.Errorf("ValueAt(-10) = %v, want the initial colour", c)
	}
	if c, _ := tr.ValueAt(5000); c != red {
		t.Errorf("ValueAt(5000) = %v, want red", c)
	}
}

func TestTrackLoadYAML(t *testing.T) {
	tr := NewTrack(blue, 0)
	if err := tr.LoadYAML([]byte(trackDoc)); err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if c, _ := tr.ValueAt(0); c != red {
		t.Errorf("ValueAt(0) = %v, want red", c)
	}
	if c, _ := tr.ValueAt(-1); c != (colorful.Color{}) {
		t.Errorf("ValueAt(-1) = %v, want black", c)
	}
}

func TestTrackLoadYAMLRejected(t *testing.T) {
	tr := NewTrack(blue, 0)
	if err := tr.Set(100, red, nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"duplicate", "keyframes:\n  - {time: 1, value: {r: 1}}\n  - {time: 1, value: {r: 0}}\n", timeline.ErrDuplicateTime},
		{"easing", "keyframes:\n  - {time: 1, value: {r: 1}, easing: wobble}\n", easing.ErrUnknownEasing},
		{"syntax", "keyframes: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.LoadYAML([]byte(tt.doc))
			if err == nil {
				t.Fatal("LoadYAML() accepted the document")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("LoadYAML() error = %v, want %v", err, tt.want)
			}
			if tr.Len() != 1 {
				t.Errorf("Len() = %d after a rejected load, want 1", tr.Len())
			}
		})
	}
}

func TestTrackEncodeYAML(t *testing.T) {
	tr := NewTrack(blue, 0)
	if err := tr.LoadYAML([]byte(trackDoc)); err != nil {
		t.Fatal(err)
	}
	data, err := tr.EncodeYAML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "easing: linear") {
		t.Errorf("EncodeYAML() = %s, missing the keyframe easing", data)
	}

	copied := NewTrack(colorful.Color{}, 0)
	if err := copied.LoadYAML(data); err != nil {
		t.Fatal(err)
	}
	for _, ms := range []float64{-1, 0, 250, 500, 800} {
		a, _ := tr.ValueAt(ms)
		b, _ := copied.ValueAt(ms)
		if !colourEqual(a, b, 1e-12) {
			t.Errorf("ValueAt(%v) = %v after a round trip, want %v", ms, b, a)
		}
	}
}
