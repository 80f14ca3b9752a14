package ui

import (
	"reel/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// timerMsg fires when the earliest slider timer is due. Ticks from an
// older generation were superseded and are ignored.
type timerMsg struct {
	gen int
}

// frameMsg drives redraws while a transition is running
type frameMsg struct{}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
