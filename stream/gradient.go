package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/keyframe/interp"
	"github.com/matt-g-everett/keyframe/timeline"
)

// GradientTable lists hue stops at positions in [0, 1].
type GradientTable []struct {
	Hue float64
	Pos float64
}

// A Gradient maps a position in [0, 1] to a colour by blending the hues of
// the surrounding stops.
type Gradient struct {
	hues       *timeline.Timeline[float64]
	saturation float64
	luminance  float64
}

// NewGradient builds a Gradient from the table. Hue is blended linearly,
// not around the colour wheel, so a 0 to 360 table sweeps every hue.
func (g GradientTable) NewGradient(saturation, luminance float64) (*Gradient, error) {
	gr := new(Gradient)
	gr.saturation = saturation
	gr.luminance = luminance
	gr.hues = timeline.New(0.0, interp.Float64)
	if len(g) > 0 {
		gr.hues.SetInitialValue(g[0].Hue)
	}
	for _, stop := range g {
		if _, err := gr.hues.Set(stop.Pos, stop.Hue); err != nil {
			return nil, err
		}
	}
	return gr, nil
}

// GetColor gets a colour at the specified point on the gradient.
func (gr *Gradient) GetColor(t float64) colorful.Color {
	// Linear hue segments cannot fail to evaluate.
	h, _ := gr.hues.Get(t)
	return colorful.Hcl(h, gr.saturation, gr.luminance)
}

// Rainbow is the default gradient used on the tree.
var Rainbow = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquiose
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}
