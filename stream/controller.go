package stream

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/matt-g-everett/keyframe/easing"
)

// Controller that manages animations, cross-fading from one to the next.
type Controller struct {
	mu                  sync.Mutex
	animations          []Animation
	current             int
	animation           Animation
	nextAnimation       Animation
	transition          float64
	transitionIncrement float64
	transitionEasing    easing.Easing
}

// NewController creates an instance of a Controller. The cross-fade lasts
// transitionTime at frameRate frames per second and its progress follows
// transitionEasing.
func NewController(animations []Animation, frameRate float64, transitionTime time.Duration,
	transitionEasing easing.Easing) *Controller {

	c := new(Controller)
	c.animations = animations
	c.current = 0
	c.animation = animations[0]
	c.nextAnimation = nil
	c.transition = 0.0
	c.transitionIncrement = 1.0 / (frameRate * transitionTime.Seconds())
	c.transitionEasing = transitionEasing

	return c
}

// CalculateFrame renders the current animation, blended with the next one
// while a transition is running.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nextAnimation == nil {
		return c.animation.CalculateFrame(runtimeMs)
	}

	f1 := c.animation.CalculateFrame(runtimeMs)
	f2 := c.nextAnimation.CalculateFrame(runtimeMs)
	p, err := easing.Evaluate(c.transitionEasing, c.transition)
	if err != nil {
		log.Printf("Transition easing: %v", err)
		p = c.transition
	}
	f := f1.InterpolateFrame(f2, p)

	c.transition += c.transitionIncrement
	if c.transition >= 1.0 {
		c.animation = c.nextAnimation
		c.nextAnimation = nil
		c.transition = 0.0
	}

	return f
}

// CycleAnimation starts a transition to the next animation in the list.
func (c *Controller) CycleAnimation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.animations) < 2 || c.nextAnimation != nil {
		return
	}
	c.current = (c.current + 1) % len(c.animations)
	c.nextAnimation = c.animations[c.current]
	c.transition = 0.0
}

// Run causes the Controller to cycle through animations until ctx is done.
func (c *Controller) Run(ctx context.Context, animationTime time.Duration) {
	publishTimer := time.NewTicker(animationTime)
	defer publishTimer.Stop()
	for {
		select {
		case <-publishTimer.C:
			c.CycleAnimation()
		case <-ctx.Done():
			return
		}
	}
}
