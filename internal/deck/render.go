package deck

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"reel/internal/domain"
)

// Renderer turns slide bodies into terminal text at a given width.
// Rendered output is cached per slide and width.
type Renderer struct {
	style string
	cache map[cacheKey]string
}

type cacheKey struct {
	body  string
	width int
}

// NewRenderer creates a renderer using the named glamour style ("dark",
// "light", "notty", ...). Empty means "dark".
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{
		style: style,
		cache: make(map[cacheKey]string),
	}
}

// Render returns the slide body formatted for width columns
func (r *Renderer) Render(s domain.Slide, width int) (string, error) {
	if width < 10 {
		width = 10
	}
	key := cacheKey{body: s.Body, width: width}
	if out, ok := r.cache[key]; ok && s.Format == domain.FormatMarkdown {
		return out, nil
	}

	if s.Format != domain.FormatMarkdown {
		return lipgloss.NewStyle().Width(width).Render(s.Body), nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := tr.Render(s.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	r.cache[key] = out
	return out, nil
}

// Reset drops cached output, e.g. after a deck reload
func (r *Renderer) Reset() {
	r.cache = make(map[cacheKey]string)
}
