package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsheet/internal/ui/theme"
)

// Selector picks one of a fixed list of options with ←/→.
type Selector struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewSelector creates a selector with selected highlighted. Out of range
// values select the first option.
func NewSelector(options []string, selected int) Selector {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Selector{Options: options, Selected: selected}
}

// Update moves the selection. It stops at either end.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if s.Selected > 0 {
			s.Selected--
		}
	case "right", "l":
		if s.Selected < len(s.Options)-1 {
			s.Selected++
		}
	}
	return s, nil
}

// View renders every option with the selected one highlighted.
func (s Selector) View() string {
	parts := make([]string, len(s.Options))
	for i, opt := range s.Options {
		switch {
		case i == s.Selected && s.Focused:
			parts[i] = theme.Focused.Render("◂ " + opt + " ▸")
		case i == s.Selected:
			parts[i] = theme.Body.Bold(true).Render("  " + opt + "  ")
		default:
			parts[i] = theme.Hint.Render("  " + opt + "  ")
		}
	}
	return strings.Join(parts, " ")
}
