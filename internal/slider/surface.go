package slider

import (
	"time"

	"reel/internal/timer"
)

// Stage is the container whose items the slider cycles through.
type Stage interface {
	// Items returns the number of navigable items currently on the stage.
	Items() int
}

// Sizer is implemented by stages that know their dimensions. Strategies
// read it through the controller on refresh.
type Sizer interface {
	Size() (width, height int)
}

// Indicators receives the visual state of the prev/next buttons and the
// index markers. All methods are optional in effect: implementations may
// ignore anything they do not draw.
type Indicators interface {
	// Assign gives markers the positions 0..n-1 and clears any selection.
	Assign(n int)
	SetSelected(i int, selected bool)
	SetPrevDisabled(disabled bool)
	SetNextDisabled(disabled bool)
}

// Scheduler runs callbacks after a delay on the controller's goroutine.
// *timer.Queue satisfies it.
type Scheduler interface {
	After(d time.Duration, fn func()) timer.ID
	Cancel(id timer.ID)
}

type noIndicators struct{}

func (noIndicators) Assign(int)            {}
func (noIndicators) SetSelected(int, bool) {}
func (noIndicators) SetPrevDisabled(bool)  {}
func (noIndicators) SetNextDisabled(bool)  {}
