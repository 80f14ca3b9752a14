package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Stage          lipgloss.Style
	StageHover     lipgloss.Style
	StageDisabled  lipgloss.Style
	SlideTitle     lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Dot            lipgloss.Style
	DotSelected    lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusPlaying  lipgloss.Style
	StatusPaused   lipgloss.Style
	Help           lipgloss.Style
	Fading         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Stage: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		StageHover: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		StageDisabled: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")),
		SlideTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Dot:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusPlaying:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusPaused:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:           lipgloss.NewStyle().Faint(true),
		Fading:         lipgloss.NewStyle().Faint(true),
	}
}
