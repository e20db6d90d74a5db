// Package app runs the form front end as a Bubble Tea program.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathsheet/internal/frontend"
	"github.com/abhisek/mathsheet/internal/router"
	"github.com/abhisek/mathsheet/internal/screen"
	"github.com/abhisek/mathsheet/internal/screens/form"
	"github.com/abhisek/mathsheet/internal/ui/layout"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// Options configures the form front end.
type Options struct {
	// Defaults prefill the form.
	Defaults worksheet.Config

	// Status is shown on the right of the header, e.g. the settings source.
	Status string

	// Input and Output override the terminal, mainly for tests.
	Input  io.Reader
	Output io.Writer
}

// App is the form front end.
type App struct {
	opts Options
}

var _ frontend.Frontend = (*App)(nil)

// New creates the form front end.
func New(opts Options) *App {
	return &App{opts: opts}
}

// Run shows the form until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context, generate frontend.Generate) error {
	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.opts.Input != nil {
		popts = append(popts, tea.WithInput(a.opts.Input))
	}
	if a.opts.Output != nil {
		popts = append(popts, tea.WithOutput(a.opts.Output))
	}

	p := tea.NewProgram(newModel(a.opts, generate), popts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}

// model is the root Bubble Tea model.
type model struct {
	router *router.Router
	status string
	width  int
	height int
}

func newModel(opts Options, generate frontend.Generate) model {
	return model{
		router: router.New(form.New(opts.Defaults, generate)),
		status: opts.Status,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.status, m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}
