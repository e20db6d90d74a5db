// Package result shows the outcome of one generation run.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheet/internal/frontend"
	"github.com/abhisek/mathsheet/internal/router"
	"github.com/abhisek/mathsheet/internal/screen"
	"github.com/abhisek/mathsheet/internal/ui/layout"
	"github.com/abhisek/mathsheet/internal/ui/theme"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// ResultScreen displays the written files or the failure.
type ResultScreen struct {
	cfg worksheet.Config
	res *worksheet.Result
	err error
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. Exactly one of res and err is expected to be
// set.
func New(cfg worksheet.Config, res *worksheet.Result, err error) *ResultScreen {
	return &ResultScreen{cfg: cfg, res: res, err: err}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	if s.err != nil {
		return "Generation Failed"
	}
	return "Worksheet Ready"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Another sheet"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Err returns the generation error, if any.
func (s *ResultScreen) Err() error {
	return s.err
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	if s.err != nil || s.res == nil {
		b.WriteString(theme.Bad.Render("✗ Could not generate the worksheet") + "\n\n")
		if s.err != nil {
			b.WriteString(theme.Body.Render(s.err.Error()) + "\n")
		}
	} else {
		res := s.res
		b.WriteString(theme.Good.Render("✓ Worksheet generated") + "\n\n")
		b.WriteString(theme.Label.Render("Questions") + theme.Body.Render(res.QuestionsPath) + "\n")
		b.WriteString(theme.Label.Render("Answer key") + theme.Body.Render(res.AnswersPath) + "\n")
		b.WriteString(theme.Label.Render("Difficulty") + theme.Body.Render(fmt.Sprintf("%d (%s)", s.cfg.Tier, s.cfg.Tier.GradeLabel())) + "\n")
		b.WriteString(theme.Label.Render("Total questions") + theme.Body.Render(fmt.Sprintf("%d", res.TotalQuestions)) + "\n")
		b.WriteString(theme.Label.Render("Total points") + theme.Body.Render(worksheet.FormatPoints(res.TotalPoints)) + "\n")
		b.WriteString(theme.Label.Render("Sheet ID") + theme.Hint.Render(res.SheetID.String()) + "\n\n")
		b.WriteString(theme.Hint.Render(frontend.ConversionHint))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
