// Package anim defines the transition strategies a slider delegates to and
// a registry that resolves them by name.
package anim

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Strategy performs the visual transition between two items.
type Strategy interface {
	// Refresh recomputes cached stage geometry. Called after the
	// controller has re-read its items.
	Refresh()

	// SwitchTo starts a transition from current to target. Returning false
	// declines it and the controller keeps its state.
	SwitchTo(target, current int) bool
}

// Framer is implemented by strategies that draw intermediate frames.
type Framer interface {
	Frame() Frame
}

// Host is what a strategy may ask of the slider that owns it.
type Host interface {
	Count() int
	Size() (width, height int)
}

// Direction is the axis a sliding transition moves along.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Options configures a strategy. Strategies ignore fields they do not use.
type Options struct {
	Easing    string
	Interval  time.Duration
	Direction Direction

	// Clock times transitions. Nil means clockz.RealClock.
	Clock clockz.Clock
}

// DefaultInterval is the transition length when Options.Interval is unset.
const DefaultInterval = 200 * time.Millisecond

func (o Options) withDefaults() Options {
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	}
	if o.Direction == "" {
		o.Direction = Horizontal
	}
	if o.Clock == nil {
		o.Clock = clockz.RealClock
	}
	return o
}

// Frame describes a transition at one instant.
type Frame struct {
	From, To  int
	Active    bool
	Progress  float64 // eased, 0..1
	Offset    int     // cells moved along Direction when Sliding
	Sliding   bool
	Forward   bool
	Direction Direction
}
