package util

import (
	"github.com/matt-g-everett/keyframe/easing"
)

// GenerateLut builds a look-up table that rises along e over the first half
// and mirrors back down over the second half.
func GenerateLut(e easing.Easing, length int) ([]float64, error) {
	lut := make([]float64, length)
	if length < 2 {
		return lut, nil
	}
	rise, err := easing.Sample(e, length/2+1)
	if err != nil {
		return nil, err
	}
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		lut[i] = rise[i]
		lut[j] = rise[i]
	}
	return lut, nil
}

// Memoizer caches look-up tables by length for a single easing.
type Memoizer struct {
	easing easing.Easing
	luts   map[int][]float64
}

// NewMemoizer creates a Memoizer for e.
func NewMemoizer(e easing.Easing) *Memoizer {
	m := new(Memoizer)
	m.easing = e
	m.luts = make(map[int][]float64)
	return m
}

// Lut returns the table of the given length, generating it on first use.
// Tables are shared between callers and must not be modified.
func (m *Memoizer) Lut(length int) ([]float64, error) {
	if lut, ok := m.luts[length]; ok {
		return lut, nil
	}
	lut, err := GenerateLut(m.easing, length)
	if err != nil {
		return nil, err
	}
	m.luts[length] = lut
	return lut, nil
}
