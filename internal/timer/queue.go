package timer

import (
	"context"
	"sort"
	"time"

	"github.com/zoobzio/clockz"
)

// ID identifies a scheduled callback. The zero ID is never issued.
type ID uint64

type entry struct {
	id  ID
	due time.Time
	fn  func()
}

// Queue holds one-shot callbacks keyed by deadline on a clockz.Clock.
// It is not safe for concurrent use: callers drive it from a single goroutine,
// either through RunDue from their own event loop or through Run.
type Queue struct {
	clock   clockz.Clock
	lastID  ID
	pending map[ID]*entry
}

// New creates a queue on the given clock. A nil clock means clockz.RealClock.
func New(clock clockz.Clock) *Queue {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Queue{
		clock:   clock,
		pending: make(map[ID]*entry),
	}
}

// Clock returns the clock deadlines are measured on.
func (q *Queue) Clock() clockz.Clock {
	return q.clock
}

// After schedules fn to run once, d from now.
func (q *Queue) After(d time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	q.lastID++
	id := q.lastID
	q.pending[id] = &entry{
		id:  id,
		due: q.clock.Now().Add(d),
		fn:  fn,
	}
	return id
}

// Cancel drops a scheduled callback. Unknown or already fired IDs are ignored.
func (q *Queue) Cancel(id ID) {
	delete(q.pending, id)
}

// Scheduled reports whether id is still waiting to fire.
func (q *Queue) Scheduled(id ID) bool {
	_, ok := q.pending[id]
	return ok
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Next returns the earliest pending deadline.
func (q *Queue) Next() (time.Time, bool) {
	var (
		next  time.Time
		found bool
	)
	for _, e := range q.pending {
		if !found || e.due.Before(next) {
			next = e.due
			found = true
		}
	}
	return next, found
}

// RunDue runs every callback whose deadline has passed, earliest first,
// and returns how many ran. Callbacks scheduled while running wait for
// the next call, and a callback cancelled by an earlier one is skipped.
func (q *Queue) RunDue() int {
	now := q.clock.Now()

	var due []*entry
	for _, e := range q.pending {
		if !e.due.After(now) {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, e := range due {
		if _, ok := q.pending[e.id]; !ok {
			continue
		}
		delete(q.pending, e.id)
		e.fn()
		ran++
	}
	return ran
}

// Run is an event loop that executes posted calls and due callbacks on the
// calling goroutine. It returns when ctx is done or calls is closed.
func (q *Queue) Run(ctx context.Context, calls <-chan func()) error {
	var t clockz.Timer
	defer func() {
		if t != nil {
			t.Stop()
		}
	}()

	for {
		var timerC <-chan time.Time
		if due, ok := q.Next(); ok {
			d := due.Sub(q.clock.Now())
			if d < 0 {
				d = 0
			}
			if t == nil {
				t = q.clock.NewTimer(d)
			} else {
				if !t.Stop() {
					select {
					case <-t.C():
					default:
					}
				}
				t.Reset(d)
			}
			timerC = t.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-calls:
			if !ok {
				return nil
			}
			fn()
		case <-timerC:
			q.RunDue()
		}
	}
}
