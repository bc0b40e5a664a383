package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/keyframe/util"
)

type particle struct {
	lut        []float64
	memoizer   *util.Memoizer
	current    int
	running    bool
	colour     colorful.Color
	NextColour colorful.Color
}

func newParticle(colour colorful.Color, memoizer *util.Memoizer, rng *rand.Rand) *particle {
	p := new(particle)

	p.colour = colour
	p.NextColour = colour
	p.memoizer = memoizer
	p.current = 0
	p.running = false

	p.updateLut(rng)

	return p
}

func (p *particle) updateLut(rng *rand.Rand) {
	lut, err := p.memoizer.Lut((rng.Intn(18) + 6) * 2)
	if err == nil {
		p.lut = lut
	}
}

func (p *particle) increment(rng *rand.Rand) {
	if p.running {
		p.current++
		if p.current > len(p.lut)/2 {
			p.colour = p.NextColour
		}

		if p.current >= len(p.lut)-1 {
			p.current = 0
			p.running = false

			// Update the LUT every time we finish a scintillation
			p.updateLut(rng)
		}
	}
}

func (p *particle) scintillate() bool {
	result := !p.running && len(p.lut) > 0
	if result {
		p.running = true
	}
	return result
}

func (p *particle) currentColour(peakLuminance float64) colorful.Color {
	if !p.running {
		return p.colour
	}

	gain := p.lut[p.current]
	h, c, l := p.colour.Hcl()

	// Calculate the difference to the max luminance we want
	lumDiff := peakLuminance - l

	return colorful.Hcl(h, c, l+(lumDiff*gain))
}

// A Twinkle is an Animation that brightens random pixels and fades them
// back, following an easing for the rise and fall.
type Twinkle struct {
	backColours         []colorful.Color
	numPixels           int
	scintillationChance int32
	peakLuminance       float64
	pixels              []*particle
	memoizer            *util.Memoizer
	rng                 *rand.Rand
}

// NewTwinkle creates an instance of a Twinkle object. Each pixel starts a
// twinkle with probability 1/scintillationChance per frame.
func NewTwinkle(memoizer *util.Memoizer, numPixels int, scintillationChance int32, backColours []colorful.Color, rng *rand.Rand) *Twinkle {
	t := new(Twinkle)

	t.backColours = backColours
	t.numPixels = numPixels
	t.scintillationChance = scintillationChance
	t.peakLuminance = 0.6
	t.memoizer = memoizer
	t.rng = rng
	t.pixels = nil

	return t
}

func (t *Twinkle) getRandomBackColour() colorful.Color {
	return t.backColours[t.rng.Int31n(int32(len(t.backColours)))]
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(t.numPixels)

	// Initialise if we need to
	if t.pixels == nil {
		t.pixels = make([]*particle, t.numPixels)
		for i := 0; i < t.numPixels; i++ {
			t.pixels[i] = newParticle(t.getRandomBackColour(), t.memoizer, t.rng)
		}
	}

	for i := 0; i < t.numPixels; i++ {
		// Start scintillation by chance
		if t.rng.Int31n(t.scintillationChance) == 0 {
			if t.pixels[i].scintillate() {
				t.pixels[i].NextColour = t.getRandomBackColour()
			}
		}

		// Always increment, it'll only affect those pixels that are scintillating
		t.pixels[i].increment(t.rng)

		f.pixels[i] = t.pixels[i].currentColour(t.peakLuminance)
	}

	return f
}
