package stream

import (
	"math"
)

// A GradientTrail is an Animation that cycles a gradient along an led strip.
type GradientTrail struct {
	gradient    *Gradient
	numPixels   int
	current     float64
	trailLength int
	pixelsPerMs float64
	runtimeMs   int64
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(gradient *Gradient, numPixels, trailLength int, pixelsPerMs float64, runtimeMs int64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.numPixels = numPixels
	g.trailLength = trailLength
	g.pixelsPerMs = pixelsPerMs
	g.runtimeMs = runtimeMs
	g.current = 0

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(g.numPixels)
	trail := float64(g.trailLength)
	for i := 0; i < g.numPixels; i++ {
		t := math.Mod(float64(i+g.numPixels)-g.current, trail) / trail
		if t < 0 {
			t++
		}
		f.pixels[i] = g.gradient.GetColor(t)
	}

	g.current += g.pixelsPerMs * float64(runtimeMs-g.runtimeMs)
	g.current = math.Mod(g.current, trail)
	g.runtimeMs = runtimeMs

	return f
}
