package anim

import (
	"time"

	"github.com/zoobzio/clockz"
)

// instant switches without any intermediate frames and never declines.
type instant struct{}

func newInstant(Host, Options) Strategy { return instant{} }

func (instant) Refresh()               {}
func (instant) SwitchTo(_, _ int) bool { return true }

// Transition is a timed strategy. While a transition is running, further
// switches are declined.
type Transition struct {
	sliding bool
	host    Host
	opts    Options
	clock   clockz.Clock
	ease    func(float64) float64

	width, height int

	from, to int
	started  time.Time
	running  bool
}

func newFade(host Host, opts Options) Strategy {
	return newTransition(host, opts, false)
}

func newSlide(host Host, opts Options) Strategy {
	return newTransition(host, opts, true)
}

func newTransition(host Host, opts Options, sliding bool) *Transition {
	return &Transition{
		sliding: sliding,
		host:    host,
		opts:    opts,
		clock:   opts.Clock,
		ease:    Easing(opts.Easing),
	}
}

// Refresh caches the stage size and abandons any running transition.
func (t *Transition) Refresh() {
	if t.host != nil {
		t.width, t.height = t.host.Size()
	}
	t.running = false
}

// SwitchTo starts a transition unless one is still running.
func (t *Transition) SwitchTo(target, current int) bool {
	if t.Animating() {
		return false
	}
	t.from, t.to = current, target
	t.started = t.clock.Now()
	t.running = true
	return true
}

// Animating reports whether a transition is in flight.
func (t *Transition) Animating() bool {
	return t.running && t.clock.Since(t.started) < t.opts.Interval
}

// Frame returns the transition state at the current clock time.
func (t *Transition) Frame() Frame {
	f := Frame{
		From:      t.from,
		To:        t.to,
		Direction: t.opts.Direction,
		Forward:   t.forward(),
		Sliding:   t.sliding,
		Progress:  1,
	}
	if !t.Animating() {
		return f
	}

	f.Active = true
	f.Progress = t.ease(float64(t.clock.Since(t.started)) / float64(t.opts.Interval))
	if t.sliding {
		extent := t.width
		if t.opts.Direction == Vertical {
			extent = t.height
		}
		f.Offset = int(f.Progress * float64(extent))
	}
	return f
}

// forward treats a wrap from the last item to the first as moving ahead.
func (t *Transition) forward() bool {
	count := 0
	if t.host != nil {
		count = t.host.Count()
	}
	if count > 2 {
		if t.from == count-1 && t.to == 0 {
			return true
		}
		if t.from == 0 && t.to == count-1 {
			return false
		}
	}
	return t.to > t.from
}

// Easing maps an easing name to a curve on [0,1]. Unknown names are linear.
func Easing(name string) func(float64) float64 {
	clamp := func(f func(float64) float64) func(float64) float64 {
		return func(x float64) float64 {
			if x <= 0 {
				return 0
			}
			if x >= 1 {
				return 1
			}
			return f(x)
		}
	}
	switch name {
	case "ease-in":
		return clamp(func(x float64) float64 { return x * x })
	case "ease-out":
		return clamp(func(x float64) float64 { return x * (2 - x) })
	case "ease-in-out":
		return clamp(func(x float64) float64 {
			if x < 0.5 {
				return 2 * x * x
			}
			return -1 + (4-2*x)*x
		})
	default:
		return clamp(func(x float64) float64 { return x })
	}
}
