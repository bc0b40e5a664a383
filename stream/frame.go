package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance with numPixels black pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// InterpolateFrame merges two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := 0; i < len(f.pixels) && i < len(f2.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian pixel
// count followed by clamped RGB triples. Frames of more than 65535 pixels
// cannot be encoded.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > math.MaxUint16 {
		return nil, fmt.Errorf("frame of %d pixels exceeds %d", len(f.pixels), math.MaxUint16)
	}
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
