// Package slider implements the navigation state machine of a carousel:
// which item is shown, how prev/next/go requests resolve, auto-play and
// click debouncing, and the hand-off to an animation strategy.
//
// A Controller is not safe for concurrent use. Every call, including the
// callbacks it hands to its Scheduler, must happen on one goroutine.
package slider

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reel/internal/logging"
	"reel/internal/slider/anim"
	"reel/internal/timer"
)

// ErrNoStage is returned by New when no stage is given.
var ErrNoStage = errors.New("slider: stage is required")

const (
	DefaultAutoInterval = 2 * time.Second
	DefaultSwitchDelay  = 50 * time.Millisecond
)

// Options configures a Controller.
type Options struct {
	Disabled bool
	Auto     bool
	Circle   bool

	AutoInterval time.Duration
	SwitchDelay  time.Duration

	Animation        string
	AnimationOptions anim.Options

	// OnChange is registered as the first change subscriber.
	OnChange func(ChangeEvent)

	Indicators Indicators
	Logger     *slog.Logger
}

// DefaultOptions returns auto-playing, circular options with the default
// intervals and the instant animation.
func DefaultOptions() Options {
	return Options{
		Auto:         true,
		Circle:       true,
		AutoInterval: DefaultAutoInterval,
		SwitchDelay:  DefaultSwitchDelay,
		Animation:    "default",
	}
}

// Controller owns the slider state and drives every transition.
type Controller struct {
	opts     Options
	stage    Stage
	sched    Scheduler
	marks    Indicators
	strategy anim.Strategy
	log      *slog.Logger

	index     int
	lastIndex int
	count     int

	autoTimer   timer.ID
	switchTimer timer.ID

	subs    []subscriber
	lastSub int

	disposed bool
}

// New creates a controller. The strategy named by opts.Animation is built
// here and kept for the controller's lifetime.
func New(stage Stage, sched Scheduler, opts Options) (*Controller, error) {
	if stage == nil {
		return nil, ErrNoStage
	}
	if sched == nil {
		sched = timer.New(nil)
	}
	if opts.AutoInterval <= 0 {
		opts.AutoInterval = DefaultAutoInterval
	}
	if opts.SwitchDelay < 0 {
		opts.SwitchDelay = 0
	}

	c := &Controller{
		opts:      opts,
		stage:     stage,
		sched:     sched,
		marks:     opts.Indicators,
		log:       opts.Logger,
		lastIndex: -1,
	}
	if c.marks == nil {
		c.marks = noIndicators{}
	}
	if c.log == nil {
		c.log = logging.NewNop()
	}

	strategy, err := anim.New(opts.Animation, c, opts.AnimationOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create animation: %w", err)
	}
	c.strategy = strategy

	if opts.OnChange != nil {
		c.Subscribe(opts.OnChange)
	}
	return c, nil
}

// Render performs the first refresh and starts auto-play.
func (c *Controller) Render() *Controller {
	c.Refresh()
	c.Play()
	return c
}

// Refresh re-reads the stage, resets to the first item and lets the
// strategy recompute its geometry. Safe to call whenever items change.
func (c *Controller) Refresh() {
	if c.disposed {
		return
	}
	c.count = c.stage.Items()
	if c.count < 0 {
		c.count = 0
	}
	c.index = 0
	c.lastIndex = -1

	c.marks.Assign(c.count)
	c.UpdateMarkers()
	c.strategy.Refresh()

	c.log.Debug("slider refreshed", "count", c.count)
}

// TargetIndex resolves r against the current state. It reports false when
// the request would not move the slider.
func (c *Controller) TargetIndex(r Request) (int, bool) {
	if c.count <= 0 {
		return 0, false
	}

	var target int
	switch r.kind {
	case start:
		target = 0
	case end:
		target = c.count - 1
	default:
		target = r.n
	}

	if target == c.index {
		return 0, false
	}

	if target >= c.count {
		if c.opts.Circle {
			target = 0
		} else {
			target = c.count - 1
		}
	} else if target < 0 {
		if c.opts.Circle {
			target = c.count - 1
		} else {
			target = 0
		}
	}

	// Clamping at a boundary can land back on the current item.
	if target == c.index {
		return 0, false
	}
	return target, true
}

// Go moves to the item r resolves to. It reports whether the transition
// was committed; a disabled slider, a no-op request or a strategy veto all
// leave the state untouched and notify nobody.
func (c *Controller) Go(r Request) bool {
	if c.disposed || c.opts.Disabled {
		return false
	}

	target, ok := c.TargetIndex(r)
	if !ok {
		return false
	}

	if !c.strategy.SwitchTo(target, c.index) {
		c.log.Debug("slide switch declined", "from", c.index, "to", target)
		return false
	}

	c.lastIndex = c.index
	c.index = target
	c.UpdateMarkers()

	c.emit(ChangeEvent{Index: c.index, LastIndex: c.lastIndex})
	return true
}

// Prev moves one item back.
func (c *Controller) Prev() bool {
	return c.Go(At(c.index - 1))
}

// Next moves one item forward.
func (c *Controller) Next() bool {
	return c.Go(At(c.index + 1))
}

// UpdateMarkers pushes boundary and selection state to the indicators.
func (c *Controller) UpdateMarkers() {
	if c.count == 0 {
		c.marks.SetPrevDisabled(true)
		c.marks.SetNextDisabled(true)
		return
	}

	c.marks.SetPrevDisabled(c.index == 0 && !c.opts.Circle)
	c.marks.SetNextDisabled(c.index == c.count-1 && !c.opts.Circle)

	if c.lastIndex >= 0 && c.lastIndex < c.count && c.lastIndex != c.index {
		c.marks.SetSelected(c.lastIndex, false)
	}
	c.marks.SetSelected(c.index, true)
}

// SetDisabled switches the slider off or back on. While disabled no
// navigation commits and auto-play is stopped.
func (c *Controller) SetDisabled(disabled bool) {
	if c.disposed || c.opts.Disabled == disabled {
		return
	}
	c.opts.Disabled = disabled
	if disabled {
		c.cancelAuto()
		c.cancelSwitch()
		return
	}
	c.Play()
}

// Dispose cancels pending timers and detaches subscribers. The controller
// ignores every call afterwards.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.cancelAuto()
	c.cancelSwitch()
	c.subs = nil
	c.disposed = true
	c.log.Debug("slider disposed")
}

// Index returns the displayed item.
func (c *Controller) Index() int { return c.index }

// LastIndex returns the previously displayed item, or -1 before the first
// committed transition.
func (c *Controller) LastIndex() int { return c.lastIndex }

// Count returns the number of items seen at the last refresh.
func (c *Controller) Count() int { return c.count }

// Disabled reports whether the slider ignores navigation.
func (c *Controller) Disabled() bool { return c.opts.Disabled }

// Disposed reports whether Dispose has run.
func (c *Controller) Disposed() bool { return c.disposed }

// Strategy returns the animation strategy the controller was built with.
func (c *Controller) Strategy() anim.Strategy { return c.strategy }

// Size reports the stage dimensions when the stage knows them.
func (c *Controller) Size() (width, height int) {
	if s, ok := c.stage.(Sizer); ok {
		return s.Size()
	}
	return 0, 0
}
