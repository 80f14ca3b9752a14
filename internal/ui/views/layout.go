package views

// Rect is a screen region in cells
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TargetKind identifies what a screen cell belongs to
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetStage
	TargetPrev
	TargetNext
	TargetDot
)

// Target is the result of a hit test. Index is the marker position for
// TargetDot and -1 otherwise.
type Target struct {
	Kind  TargetKind
	Index int
}

const (
	prevLabel = "‹ prev"
	nextLabel = "next ›"
	// cells taken by each label
	labelWidth = 6
	// header line above the stage
	headerLines = 1
)

// Layout places the widget on screen. The same layout drives rendering and
// mouse hit testing, so both always agree.
type Layout struct {
	Stage    Rect // including the border
	Controls Rect
	Prev     Rect
	Next     Rect
	// Dots are the visible markers; Dots[i] is marker First+i
	Dots  []Rect
	First int
	Gap   int // blank cells between markers, 0 or 1
}

// NewLayout computes the layout for an inner stage of w x h cells showing
// count markers. When maxWidth is positive the controls row is kept within
// it: markers lose their gaps first, then only a window of them around
// current is shown.
func NewLayout(w, h, count, maxWidth, current int) Layout {
	if count < 0 {
		count = 0
	}
	l := Layout{
		Stage: Rect{X: 0, Y: headerLines, W: w + 2, H: h + 2},
		Gap:   1,
	}
	row := l.Stage.Y + l.Stage.H

	visible := count
	if maxWidth > 0 {
		// both labels plus the space on either side of the markers
		room := max(maxWidth-2*labelWidth-2, 0)
		if 2*count-1 > room {
			l.Gap = 0
		}
		if count > room {
			visible = room
			l.First = min(max(current-visible/2, 0), count-visible)
		}
	}

	l.Prev = Rect{X: 0, Y: row, W: labelWidth, H: 1}
	x := labelWidth + 1
	l.Dots = make([]Rect, visible)
	for i := range l.Dots {
		l.Dots[i] = Rect{X: x + (1+l.Gap)*i, Y: row, W: 1, H: 1}
	}
	next := x
	if visible > 0 {
		next = x + (1+l.Gap)*visible - l.Gap + 1
	}
	l.Next = Rect{X: next, Y: row, W: labelWidth, H: 1}
	l.Controls = Rect{X: 0, Y: row, W: l.Next.X + l.Next.W, H: 1}
	return l
}

// Widget returns the region the pointer is considered "over" the carousel:
// the stage and its controls row.
func (l Layout) Widget() Rect {
	w := l.Stage.W
	if l.Controls.W > w {
		w = l.Controls.W
	}
	return Rect{X: l.Stage.X, Y: l.Stage.Y, W: w, H: l.Stage.H + l.Controls.H}
}

// HitTest maps a cell to the control under it
func (l Layout) HitTest(x, y int) Target {
	switch {
	case l.Prev.Contains(x, y):
		return Target{Kind: TargetPrev, Index: -1}
	case l.Next.Contains(x, y):
		return Target{Kind: TargetNext, Index: -1}
	case l.Stage.Contains(x, y):
		return Target{Kind: TargetStage, Index: -1}
	}
	for i, d := range l.Dots {
		if d.Contains(x, y) {
			return Target{Kind: TargetDot, Index: l.First + i}
		}
	}
	return Target{Kind: TargetNone, Index: -1}
}
