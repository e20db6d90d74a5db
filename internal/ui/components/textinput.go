package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathsheet/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a numeric filter and a disabled
// state.
type TextInput struct {
	Model        textinput.Model
	NumericOnly  bool
	AllowDecimal bool
	Disabled     bool
}

// NewTextInput creates an unfocused input holding value.
func NewTextInput(value string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(value)
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update filters out characters a numeric field cannot hold and forwards
// everything else to the wrapped model.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Disabled {
		return t, nil
	}
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !t.accepts(key[0]) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) accepts(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '.' && t.AllowDecimal && !strings.Contains(t.Model.Value(), ".")
}

// View renders the input, greyed out when disabled.
func (t TextInput) View() string {
	if t.Disabled {
		return theme.Disabled.Render(t.Model.Value())
	}
	return t.Model.View()
}

// Value returns the current text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// IntValue parses the text as an integer.
func (t TextInput) IntValue() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.Model.Value()))
}

// FloatValue parses the text as a decimal number.
func (t TextInput) FloatValue() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(t.Model.Value()), 64)
}
