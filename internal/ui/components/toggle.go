package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsheet/internal/ui/theme"
)

// Toggle is a checkbox flipped with space.
type Toggle struct {
	On      bool
	Focused bool
}

// Update flips the toggle on space.
func (t Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	if !t.Focused {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "space" {
		t.On = !t.On
	}
	return t, nil
}

// View renders [x] or [ ].
func (t Toggle) View() string {
	box := "[ ]"
	if t.On {
		box = "[x]"
	}
	if t.Focused {
		return theme.Focused.Render(box)
	}
	return theme.Blurred.Render(box)
}
