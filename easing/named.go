package easing

import (
	"fmt"
	"math"
	"sort"

	"github.com/fogleman/ease"
)

// Named selects a predefined curve by name, for example "easeInOutSine".
type Named string

var curves = map[Named]func(float64) float64{
	Hold:   func(float64) float64 { return 0 },
	Linear: clamp01,

	"easeInSine":    ease.InSine,
	"easeOutSine":   ease.OutSine,
	"easeInOutSine": ease.InOutSine,

	"easeInCirc":    ease.InCirc,
	"easeOutCirc":   ease.OutCirc,
	"easeInOutCirc": ease.InOutCirc,

	"easeInExpo":    ease.InExpo,
	"easeOutExpo":   ease.OutExpo,
	"easeInOutExpo": ease.InOutExpo,

	"easeInQuad":    ease.InQuad,
	"easeOutQuad":   ease.OutQuad,
	"easeInOutQuad": ease.InOutQuad,

	"easeInCubic":    ease.InCubic,
	"easeOutCubic":   ease.OutCubic,
	"easeInOutCubic": ease.InOutCubic,

	"easeInQuart":    ease.InQuart,
	"easeOutQuart":   ease.OutQuart,
	"easeInOutQuart": ease.InOutQuart,

	"easeInQuint":    ease.InQuint,
	"easeOutQuint":   ease.OutQuint,
	"easeInOutQuint": ease.InOutQuint,

	// Back and elastic overshoot [0, 1].
	"easeInBack":    ease.InBack,
	"easeOutBack":   ease.OutBack,
	"easeInOutBack": ease.InOutBack,

	"easeInElastic":    ease.InElastic,
	"easeOutElastic":   ease.OutElastic,
	"easeInOutElastic": ease.InOutElastic,

	"easeInBounce":    ease.InBounce,
	"easeOutBounce":   ease.OutBounce,
	"easeInOutBounce": ease.InOutBounce,
}

// Ease implements Easing. Time is clamped to [0, 1] before the curve is
// applied.
func (n Named) Ease(t float64) (float64, error) {
	f, ok := curves[n]
	if !ok {
		return 0, fmt.Errorf("%q: %w", string(n), ErrUnknownEasing)
	}
	return f(clamp01(t)), nil
}

func (Named) isEasing()     {}
func (Named) isDescriptor() {}

// Names returns the predefined curve names in sorted order.
func Names() []Named {
	names := make([]Named, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
