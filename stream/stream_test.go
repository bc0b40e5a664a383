package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	red   = colorful.Color{R: 1, G: 0, B: 0}
	blue  = colorful.Color{R: 0, G: 0, B: 1}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func colourEqual(a, b colorful.Color, epsilon float64) bool {
	return almostEqual(a.R, b.R, epsilon) && almostEqual(a.G, b.G, epsilon) && almostEqual(a.B, b.B, epsilon)
}

// solid is an Animation that always renders one colour.
type solid struct {
	colour    colorful.Color
	numPixels int
	calls     int
}

func (s *solid) CalculateFrame(runtimeMs int64) *Frame {
	s.calls++
	f := NewFrame(s.numPixels)
	f.Fill(s.colour)
	return f
}
