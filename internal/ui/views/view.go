package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reel/internal/slider/anim"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	Layout      Layout
	StageWidth  int
	StageHeight int

	// Current and Previous are the rendered bodies of the shown slide and
	// the one being left; Frame says how far the transition between them
	// has come.
	Current  string
	Previous string
	Frame    anim.Frame

	Index        int
	Count        int
	Selected     []bool
	PrevDisabled bool
	NextDisabled bool

	Hovering bool
	Playing  bool
	AutoPlay bool
	Disabled bool

	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var lines []string
	lines = append(lines, r.renderHeader(state))
	lines = append(lines, r.renderStage(state))
	lines = append(lines, r.renderControls(state))

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	} else {
		lines = append(lines, "")
	}

	if state.HelpView != "" {
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)

	var playback string
	switch {
	case state.Disabled:
		playback = r.styles.Dim.Render("disabled")
	case state.Playing:
		playback = r.styles.StatusPlaying.Render("▶ playing")
	case state.AutoPlay:
		playback = r.styles.StatusPaused.Render("⏸ paused")
	}

	position := "0/0"
	if state.Count > 0 {
		position = fmt.Sprintf("%d/%d", state.Index+1, state.Count)
	}
	right := r.styles.Dim.Render(position)
	if playback != "" {
		right = playback + "  " + right
	}

	width := state.Layout.Widget().W
	if state.Width > 0 && state.Width < width {
		width = state.Width
	}
	if lipgloss.Width(right) > width {
		right = r.styles.Dim.Render(position)
	}
	// the title gives way to the position and playback state
	if room := width - lipgloss.Width(right) - 2; lipgloss.Width(logo) > room {
		overhead := lipgloss.Width(r.styles.Title.Render(""))
		logo = r.styles.Title.Render(truncate(state.Title, room-overhead))
	}
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderStage(state ViewState) string {
	style := r.styles.Stage
	switch {
	case state.Disabled:
		style = r.styles.StageDisabled
	case state.Hovering:
		style = r.styles.StageHover
	}

	content := ComposeFrame(state.Previous, state.Current, state.Frame, state.StageWidth, state.StageHeight, r.styles.Fading)
	if state.Count == 0 {
		content = r.styles.Dim.Render("no slides")
	}
	return style.
		Width(state.StageWidth).
		Height(state.StageHeight).
		Render(content)
}

func (r *Renderer) renderControls(state ViewState) string {
	button := func(label string, disabled bool) string {
		if disabled || state.Disabled {
			return r.styles.ButtonDisabled.Render(label)
		}
		return r.styles.Button.Render(label)
	}

	var dots strings.Builder
	sep := strings.Repeat(" ", state.Layout.Gap)
	for i := range state.Layout.Dots {
		if i > 0 {
			dots.WriteString(sep)
		}
		marker := state.Layout.First + i
		if marker < len(state.Selected) && state.Selected[marker] {
			dots.WriteString(r.styles.DotSelected.Render("●"))
		} else {
			dots.WriteString(r.styles.Dot.Render("○"))
		}
	}

	parts := []string{button(prevLabel, state.PrevDisabled)}
	if dots.Len() > 0 {
		parts = append(parts, dots.String())
	}
	parts = append(parts, button(nextLabel, state.NextDisabled))
	return strings.Join(parts, " ")
}

// ComposeFrame draws one frame of the stage: the current slide when no
// transition is active, otherwise a mix of previous and current.
func ComposeFrame(previous, current string, f anim.Frame, w, h int, fading lipgloss.Style) string {
	if !f.Active {
		return clip(current, w, h)
	}

	if !f.Sliding {
		if f.Progress < 0.5 {
			return fading.Render(clip(previous, w, h))
		}
		return fading.Render(clip(current, w, h))
	}

	lines := strings.Split(clip(current, w, h), "\n")
	if f.Direction == anim.Vertical {
		return strings.Join(shiftVertical(lines, h, f.Offset, f.Forward), "\n")
	}
	return strings.Join(shiftHorizontal(lines, w, f.Offset, f.Forward), "\n")
}

func shiftHorizontal(lines []string, w, offset int, forward bool) []string {
	if offset > w {
		offset = w
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		visible := truncate(line, offset)
		if forward {
			// enters from the right edge
			out[i] = strings.Repeat(" ", w-offset) + visible
		} else {
			out[i] = visible
		}
	}
	return out
}

func shiftVertical(lines []string, h, offset int, forward bool) []string {
	if offset > h {
		offset = h
	}
	if offset > len(lines) {
		offset = len(lines)
	}
	visible := lines[:offset]
	if !forward {
		return visible
	}
	out := make([]string, 0, h)
	for i := 0; i < h-offset; i++ {
		out = append(out, "")
	}
	return append(out, visible...)
}

// clip cuts s to at most h lines of at most w cells
func clip(s string, w, h int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if h > 0 && len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		lines[i] = truncate(line, w)
	}
	return strings.Join(lines, "\n")
}

func truncate(line string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(line) <= w {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(line)
}
