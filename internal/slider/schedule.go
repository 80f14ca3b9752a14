package slider

// Play arms the auto-play timer when auto-play is on. Any pending auto-play
// timer is replaced, so at most one is ever outstanding. Each firing
// advances one item and re-arms.
func (c *Controller) Play() {
	if !c.opts.Auto || c.opts.Disabled || c.disposed {
		return
	}
	c.cancelAuto()
	c.autoTimer = c.sched.After(c.opts.AutoInterval, c.advance)
}

func (c *Controller) advance() {
	c.autoTimer = 0
	c.Next()
	c.Play()
}

// Pause stops auto-play until Resume. Used when the pointer enters the widget.
func (c *Controller) Pause() {
	if c.autoTimer != 0 {
		c.log.Debug("auto-play paused", "index", c.index)
	}
	c.cancelAuto()
}

// Resume restarts auto-play. Used when the pointer leaves the widget.
func (c *Controller) Resume() {
	c.Play()
}

// Playing reports whether an auto-play firing is pending.
func (c *Controller) Playing() bool {
	return c.autoTimer != 0
}

// Navigate runs action after the switch delay unless another manual
// navigation is already waiting, in which case the call is dropped. The
// slot is shared by every manual source. It reports whether action was
// scheduled.
func (c *Controller) Navigate(action func()) bool {
	if c.disposed || c.opts.Disabled || c.switchTimer != 0 {
		return false
	}
	c.switchTimer = c.sched.After(c.opts.SwitchDelay, func() {
		c.switchTimer = 0
		action()
	})
	return true
}

// NavigatePending reports whether a manual navigation is waiting to run.
func (c *Controller) NavigatePending() bool {
	return c.switchTimer != 0
}

// PrevClick handles a click on the prev button.
func (c *Controller) PrevClick() bool {
	return c.Navigate(func() { c.Prev() })
}

// NextClick handles a click on the next button.
func (c *Controller) NextClick() bool {
	return c.Navigate(func() { c.Next() })
}

// IndexClick handles a click on the index marker at position i. The
// position is fixed now; it is resolved against the index live when the
// delay expires. Negative positions are markers without an index and are
// ignored.
func (c *Controller) IndexClick(i int) bool {
	if i < 0 {
		return false
	}
	return c.Navigate(func() { c.Go(At(i)) })
}

func (c *Controller) cancelAuto() {
	if c.autoTimer != 0 {
		c.sched.Cancel(c.autoTimer)
		c.autoTimer = 0
	}
}

func (c *Controller) cancelSwitch() {
	if c.switchTimer != 0 {
		c.sched.Cancel(c.switchTimer)
		c.switchTimer = 0
	}
}
