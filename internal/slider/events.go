package slider

// ChangeEvent is delivered after every committed transition.
type ChangeEvent struct {
	Index     int
	LastIndex int
}

type subscriber struct {
	id int
	fn func(ChangeEvent)
}

// Subscribe registers fn for change events and returns a function that
// removes it. Subscribers run synchronously, in registration order. A
// subscriber removed while an event is being delivered does not receive it.
func (c *Controller) Subscribe(fn func(ChangeEvent)) func() {
	if c.disposed || fn == nil {
		return func() {}
	}
	c.lastSub++
	id := c.lastSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) emit(e ChangeEvent) {
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	for _, s := range subs {
		if !c.subscribed(s.id) {
			continue
		}
		s.fn(e)
	}
}

func (c *Controller) subscribed(id int) bool {
	for _, s := range c.subs {
		if s.id == id {
			return true
		}
	}
	return false
}
