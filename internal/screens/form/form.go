// Package form is the configuration screen of the form front end.
package form

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheet/internal/frontend"
	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/router"
	"github.com/abhisek/mathsheet/internal/screen"
	"github.com/abhisek/mathsheet/internal/screens/result"
	"github.com/abhisek/mathsheet/internal/ui/components"
	"github.com/abhisek/mathsheet/internal/ui/layout"
	"github.com/abhisek/mathsheet/internal/ui/theme"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// Field identifies a focusable row, in focus order.
type Field int

const (
	FieldTier Field = iota
	FieldAlgebra
	FieldArithCount
	FieldArithPoints
	FieldAlgCount
	FieldAlgPoints
	FieldGenerate
	fieldCount
)

const inputWidth = 8

// FormScreen collects a worksheet.Config and runs Generate.
type FormScreen struct {
	generate frontend.Generate
	title    string

	tiers   []problemgen.Tier
	tier    components.Selector
	algebra components.Toggle
	inputs  map[Field]*components.TextInput
	button  components.Button

	focus Field
	err   string
	busy  bool
}

// generatedMsg carries a finished Generate call back to the form.
type generatedMsg struct {
	cfg worksheet.Config
	res *worksheet.Result
	err error
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a form prefilled from defaults. A default tier outside the
// known range gets its own selector option so it is submitted unchanged.
func New(defaults worksheet.Config, generate frontend.Generate) *FormScreen {
	tiers := problemgen.AllTiers()
	if !defaults.Tier.Known() {
		tiers = append(tiers, defaults.Tier)
	}
	options := make([]string, 0, len(tiers))
	selected := 0
	for i, t := range tiers {
		options = append(options, fmt.Sprintf("%d · %s", t, t.GradeLabel()))
		if t == defaults.Tier {
			selected = i
		}
	}

	s := &FormScreen{
		generate: generate,
		title:    defaults.Title,
		tiers:    tiers,
		tier:     components.NewSelector(options, selected),
		algebra:  components.Toggle{On: defaults.IncludeAlgebra},
		inputs: map[Field]*components.TextInput{
			FieldArithCount:  countInput(defaults.Arithmetic.Count),
			FieldArithPoints: pointsInput(defaults.Arithmetic.Points),
			FieldAlgCount:    countInput(defaults.Algebra.Count),
			FieldAlgPoints:   pointsInput(defaults.Algebra.Points),
		},
	}
	s.button = components.NewButton("Generate", s.submit)
	s.syncDisabled()
	s.setFocus(FieldTier)
	return s
}

func countInput(n int) *components.TextInput {
	ti := components.NewTextInput(strconv.Itoa(n), true, inputWidth)
	return &ti
}

func pointsInput(p float64) *components.TextInput {
	ti := components.NewTextInput(worksheet.FormatPoints(p), true, inputWidth)
	ti.AllowDecimal = true
	return &ti
}

func (s *FormScreen) Init() tea.Cmd {
	return nil
}

func (s *FormScreen) Title() string {
	return "New Worksheet"
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↓", Description: "Next"},
		{Key: "Shift+Tab/↑", Description: "Previous"},
		{Key: "←→", Description: "Tier"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Focus returns the focused field.
func (s *FormScreen) Focus() Field {
	return s.focus
}

// Err returns the inline error from the last submit, if any.
func (s *FormScreen) Err() string {
	return s.err
}

// Busy reports whether a Generate call is still running.
func (s *FormScreen) Busy() bool {
	return s.busy
}

// Enabled reports whether a field accepts focus.
func (s *FormScreen) Enabled(f Field) bool {
	if f == FieldAlgCount || f == FieldAlgPoints {
		return s.algebra.On
	}
	return true
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, ok := msg.(generatedMsg); ok {
		s.busy = false
		next := result.New(done.cfg, done.res, done.err)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, s.forward(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		s.move(1)
		return s, nil
	case "shift+tab", "up":
		s.move(-1)
		return s, nil
	case "enter":
		if s.focus != FieldGenerate {
			s.move(1)
			return s, nil
		}
	}

	cmd := s.forward(msg)
	if s.focus == FieldAlgebra {
		s.syncDisabled()
	}
	return s, cmd
}

// forward hands msg to the focused widget.
func (s *FormScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case FieldTier:
		s.tier, cmd = s.tier.Update(msg)
	case FieldAlgebra:
		s.algebra, cmd = s.algebra.Update(msg)
	case FieldGenerate:
		s.button, cmd = s.button.Update(msg)
	default:
		in := s.inputs[s.focus]
		*in, cmd = in.Update(msg)
	}
	return cmd
}

// move shifts focus by dir, wrapping around and skipping disabled fields.
func (s *FormScreen) move(dir int) {
	next := s.focus
	for range fieldCount {
		next = Field((int(next) + dir + int(fieldCount)) % int(fieldCount))
		if s.Enabled(next) {
			break
		}
	}
	s.setFocus(next)
}

func (s *FormScreen) setFocus(f Field) {
	s.focus = f
	s.tier.Focused = f == FieldTier
	s.algebra.Focused = f == FieldAlgebra
	s.button.Focused = f == FieldGenerate
	for field, in := range s.inputs {
		if field == f {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (s *FormScreen) syncDisabled() {
	s.inputs[FieldAlgCount].Disabled = !s.algebra.On
	s.inputs[FieldAlgPoints].Disabled = !s.algebra.On
}

// Config parses the fields into a configuration.
func (s *FormScreen) Config() (worksheet.Config, error) {
	cfg := worksheet.Config{
		Tier:           s.tiers[s.tier.Selected],
		IncludeAlgebra: s.algebra.On,
		Title:          s.title,
	}

	var err error
	if cfg.Arithmetic.Count, err = s.count(FieldArithCount, "Arithmetic questions"); err != nil {
		return cfg, err
	}
	if cfg.Arithmetic.Points, err = s.points(FieldArithPoints, "Arithmetic points"); err != nil {
		return cfg, err
	}
	if cfg.IncludeAlgebra {
		if cfg.Algebra.Count, err = s.count(FieldAlgCount, "Algebra questions"); err != nil {
			return cfg, err
		}
		if cfg.Algebra.Points, err = s.points(FieldAlgPoints, "Algebra points"); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func (s *FormScreen) count(f Field, name string) (int, error) {
	n, err := s.inputs[f].IntValue()
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return n, nil
}

func (s *FormScreen) points(f Field, name string) (float64, error) {
	p, err := s.inputs[f].FloatValue()
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return p, nil
}

// submit runs when Generate is pressed. Invalid input stays on the form.
// Presses while a run is in flight are ignored.
func (s *FormScreen) submit() tea.Cmd {
	if s.busy {
		return nil
	}
	cfg, err := s.Config()
	if err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	s.busy = true

	generate := s.generate
	return func() tea.Msg {
		res, err := generate(cfg)
		return generatedMsg{cfg: cfg, res: res, err: err}
	}
}

func (s *FormScreen) View(width, height int) string {
	var b strings.Builder

	row := func(label, widget string, enabled bool) {
		style := theme.Label
		if !enabled {
			style = style.Foreground(theme.Border)
		}
		b.WriteString(style.Render(label) + widget + "\n\n")
	}

	b.WriteString(theme.Title.Render(s.title) + "\n\n")
	row("Difficulty", s.tier.View(), true)
	row("Include algebra", s.algebra.View(), true)
	row("Arithmetic questions", s.inputs[FieldArithCount].View(), true)
	row("Points per arithmetic", s.inputs[FieldArithPoints].View(), true)
	row("Algebra questions", s.inputs[FieldAlgCount].View(), s.algebra.On)
	row("Points per algebra", s.inputs[FieldAlgPoints].View(), s.algebra.On)
	b.WriteString(s.button.View())

	if s.busy {
		b.WriteString("\n\n" + theme.Hint.Render("Generating…"))
	} else if s.err != "" {
		b.WriteString("\n\n" + theme.Bad.Render("✗ "+s.err))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
