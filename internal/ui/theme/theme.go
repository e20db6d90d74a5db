// Package theme holds the colors and styles of the form front end.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: chalkboard greens with a chalk-white foreground.
var (
	Primary = lipgloss.Color("#4ADE80") // Chalk green
	Accent  = lipgloss.Color("#FACC15") // Yellow chalk
	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#F87171")
	Text    = lipgloss.Color("#F1F5F9")
	TextDim = lipgloss.Color("#94A3B8")
	BgCard  = lipgloss.Color("#1F2D27")
	Border  = lipgloss.Color("#36513F")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(26)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Field states.
var (
	Focused = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Blurred = lipgloss.NewStyle().
		Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgCard).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
