package form

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/router"
	"github.com/abhisek/mathsheet/internal/screens/result"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

func keyMsg(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func runeMsg(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func press(s *FormScreen, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func typeText(s *FormScreen, text string) {
	for _, r := range text {
		press(s, runeMsg(r))
	}
}

func clearField(s *FormScreen) {
	for range 10 {
		press(s, keyMsg(tea.KeyBackspace))
	}
}

// finish runs a submit cmd and feeds its message back to the form, returning
// the screen the form asks the router to push.
func finish(t *testing.T, s *FormScreen, cmd tea.Cmd) *result.ResultScreen {
	t.Helper()
	require.NotNil(t, cmd)
	next := press(s, cmd())
	require.NotNil(t, next)

	msg := next()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	res, ok := push.Screen.(*result.ResultScreen)
	require.True(t, ok)
	return res
}

type recorder struct {
	calls int
	cfg   worksheet.Config
	err   error
}

func (r *recorder) generate(cfg worksheet.Config) (*worksheet.Result, error) {
	r.calls++
	r.cfg = cfg
	if r.err != nil {
		return nil, r.err
	}
	return &worksheet.Result{
		QuestionsPath:  "/tmp/questions.tex",
		AnswersPath:    "/tmp/answers.tex",
		TotalQuestions: cfg.TotalQuestions(),
		TotalPoints:    cfg.TotalPoints(),
	}, nil
}

func TestFocusSkipsDisabledAlgebraFields(t *testing.T) {
	s := New(worksheet.DefaultConfig(), (&recorder{}).generate)
	require.Equal(t, FieldTier, s.Focus())

	want := []Field{FieldAlgebra, FieldArithCount, FieldArithPoints, FieldGenerate, FieldTier}
	for _, f := range want {
		press(s, keyMsg(tea.KeyTab))
		assert.Equal(t, f, s.Focus())
	}

	press(s, keyMsg(tea.KeyUp))
	assert.Equal(t, FieldGenerate, s.Focus())
	press(s, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, FieldArithPoints, s.Focus())
}

func TestToggleEnablesAlgebraFields(t *testing.T) {
	s := New(worksheet.DefaultConfig(), (&recorder{}).generate)
	assert.False(t, s.Enabled(FieldAlgCount))

	press(s, keyMsg(tea.KeyDown), keyMsg(tea.KeySpace))
	assert.True(t, s.Enabled(FieldAlgCount))
	assert.True(t, s.Enabled(FieldAlgPoints))

	want := []Field{FieldArithCount, FieldArithPoints, FieldAlgCount, FieldAlgPoints, FieldGenerate}
	for _, f := range want {
		press(s, keyMsg(tea.KeyDown))
		assert.Equal(t, f, s.Focus())
	}
}

func TestTierSelector(t *testing.T) {
	s := New(worksheet.DefaultConfig(), (&recorder{}).generate)

	press(s, keyMsg(tea.KeyRight), keyMsg(tea.KeyRight))
	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, problemgen.Tier3, cfg.Tier)

	press(s, keyMsg(tea.KeyRight), keyMsg(tea.KeyRight), keyMsg(tea.KeyRight))
	cfg, _ = s.Config()
	assert.Equal(t, problemgen.Tier4, cfg.Tier)

	press(s, keyMsg(tea.KeyLeft))
	cfg, _ = s.Config()
	assert.Equal(t, problemgen.Tier3, cfg.Tier)
}

func TestPrefilledFromDefaults(t *testing.T) {
	defaults := worksheet.Config{
		Tier:           problemgen.Tier2,
		IncludeAlgebra: true,
		Arithmetic:     worksheet.Section{Count: 8, Points: 1.5},
		Algebra:        worksheet.Section{Count: 3, Points: 4},
		Title:          "Quiz",
	}
	s := New(defaults, (&recorder{}).generate)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestNumericFieldsIgnoreLetters(t *testing.T) {
	s := New(worksheet.DefaultConfig(), (&recorder{}).generate)
	press(s, keyMsg(tea.KeyTab), keyMsg(tea.KeyTab)) // arithmetic count
	clearField(s)
	typeText(s, "1a2.")

	press(s, keyMsg(tea.KeyTab)) // arithmetic points
	clearField(s)
	typeText(s, "2.5.5")

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Arithmetic.Count)
	assert.Equal(t, 2.55, cfg.Arithmetic.Points)
}

func TestGenerateRunsAndPushesResult(t *testing.T) {
	rec := &recorder{}
	s := New(worksheet.DefaultConfig(), rec.generate)

	press(s, keyMsg(tea.KeyTab), keyMsg(tea.KeyTab))
	clearField(s)
	typeText(s, "3")
	press(s, keyMsg(tea.KeyTab), keyMsg(tea.KeyTab))
	require.Equal(t, FieldGenerate, s.Focus())

	cmd := press(s, keyMsg(tea.KeyEnter))
	assert.True(t, s.Busy())
	res := finish(t, s, cmd)
	assert.NoError(t, res.Err())
	assert.False(t, s.Busy())

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, 3, rec.cfg.Arithmetic.Count)
	assert.False(t, rec.cfg.IncludeAlgebra)
	assert.Empty(t, s.Err())
}

func TestInvalidFieldShowsInlineError(t *testing.T) {
	rec := &recorder{}
	s := New(worksheet.DefaultConfig(), rec.generate)

	press(s, keyMsg(tea.KeyTab), keyMsg(tea.KeyTab))
	clearField(s)
	press(s, keyMsg(tea.KeyTab), keyMsg(tea.KeyTab))

	cmd := press(s, keyMsg(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Zero(t, rec.calls)
	assert.Contains(t, s.Err(), "Arithmetic questions must be a whole number")
	assert.Contains(t, s.View(120, 40), "whole number")
}

func TestGenerateErrorReachesResultScreen(t *testing.T) {
	rec := &recorder{err: errors.New("write questions.tex: permission denied")}
	s := New(worksheet.DefaultConfig(), rec.generate)

	press(s, keyMsg(tea.KeyUp))
	require.Equal(t, FieldGenerate, s.Focus())

	res := finish(t, s, press(s, keyMsg(tea.KeyEnter)))
	assert.ErrorIs(t, res.Err(), rec.err)
}

func TestSecondSubmitIgnoredWhileGenerating(t *testing.T) {
	rec := &recorder{}
	s := New(worksheet.DefaultConfig(), rec.generate)
	press(s, keyMsg(tea.KeyUp))
	require.Equal(t, FieldGenerate, s.Focus())

	first := press(s, keyMsg(tea.KeyEnter))
	require.NotNil(t, first)
	second := press(s, keyMsg(tea.KeyEnter))
	assert.Nil(t, second)
	assert.Contains(t, s.View(120, 40), "Generating")

	finish(t, s, first)
	assert.Equal(t, 1, rec.calls)

	again := press(s, keyMsg(tea.KeyEnter))
	finish(t, s, again)
	assert.Equal(t, 2, rec.calls)
}

func TestUnknownDefaultTierKept(t *testing.T) {
	defaults := worksheet.DefaultConfig()
	defaults.Tier = 7
	s := New(defaults, (&recorder{}).generate)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, problemgen.Tier(7), cfg.Tier)

	press(s, keyMsg(tea.KeyLeft))
	cfg, _ = s.Config()
	assert.Equal(t, problemgen.Tier4, cfg.Tier)
}

func TestInvalidDefaultTierRejectedOnSubmit(t *testing.T) {
	rec := &recorder{}
	defaults := worksheet.DefaultConfig()
	defaults.Tier = 0
	s := New(defaults, rec.generate)

	press(s, keyMsg(tea.KeyUp))
	assert.Nil(t, press(s, keyMsg(tea.KeyEnter)))
	assert.Zero(t, rec.calls)
	assert.Contains(t, s.Err(), "tier must be 1 or greater")
}

func TestEnterOnFieldAdvances(t *testing.T) {
	s := New(worksheet.DefaultConfig(), (&recorder{}).generate)
	press(s, keyMsg(tea.KeyEnter))
	assert.Equal(t, FieldAlgebra, s.Focus())
}
