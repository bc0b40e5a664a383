package interp

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Lab blends two colours in CIE L*a*b* space, which keeps perceived
// lightness changes even across the blend.
func Lab(from, to colorful.Color, progress float64) colorful.Color {
	return from.BlendLab(to, progress)
}

// Hcl blends two colours along the shortest hue arc, as the LED gradients do.
func Hcl(from, to colorful.Color, progress float64) colorful.Color {
	return from.BlendHcl(to, progress)
}

// Luv blends two colours in CIE L*u*v* space.
func Luv(from, to colorful.Color, progress float64) colorful.Color {
	return from.BlendLuv(to, progress)
}

// RGB blends the raw RGB channels.
func RGB(from, to colorful.Color, progress float64) colorful.Color {
	return from.BlendRgb(to, progress)
}
