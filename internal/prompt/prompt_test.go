package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

func collect(t *testing.T, input string) (worksheet.Config, string, error) {
	t.Helper()
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out, worksheet.DefaultConfig())
	cfg, err := p.Collect(context.Background())
	return cfg, out.String(), err
}

func TestCollect_WithoutAlgebra(t *testing.T) {
	cfg, _, err := collect(t, "2\nn\n12\n1.5\n")
	require.NoError(t, err)

	assert.Equal(t, problemgen.Tier2, cfg.Tier)
	assert.False(t, cfg.IncludeAlgebra)
	assert.Equal(t, worksheet.Section{Count: 12, Points: 1.5}, cfg.Arithmetic)
}

func TestCollect_WithAlgebraAskingOrder(t *testing.T) {
	// arithmetic count, algebra count, arithmetic points, algebra points
	cfg, out, err := collect(t, "3\ny\n2\n4\n1\n3\n")
	require.NoError(t, err)

	assert.Equal(t, problemgen.Tier3, cfg.Tier)
	assert.True(t, cfg.IncludeAlgebra)
	assert.Equal(t, worksheet.Section{Count: 2, Points: 1}, cfg.Arithmetic)
	assert.Equal(t, worksheet.Section{Count: 4, Points: 3}, cfg.Algebra)

	arith := strings.Index(out, "How many arithmetic questions?")
	alg := strings.Index(out, "How many algebra questions?")
	arithPts := strings.Index(out, "How many points per arithmetic question?")
	algPts := strings.Index(out, "How many points per algebra question?")
	assert.True(t, arith < alg && alg < arithPts && arithPts < algPts)
}

func TestCollect_EmptyAnswersUseDefaults(t *testing.T) {
	cfg, _, err := collect(t, "\n\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, worksheet.DefaultConfig(), cfg)
}

func TestCollect_ReasksOnBadInput(t *testing.T) {
	cfg, out, err := collect(t, "abc\n0\n1\nmaybe\nn\n-3\nten\n5\n-1\nx\n2\n")
	require.NoError(t, err)

	assert.Equal(t, problemgen.Tier1, cfg.Tier)
	assert.Equal(t, worksheet.Section{Count: 5, Points: 2}, cfg.Arithmetic)
	assert.Equal(t, 2, strings.Count(out, "Please enter a difficulty level number"))
	assert.Equal(t, 1, strings.Count(out, "Please answer y or n."))
	assert.Equal(t, 2, strings.Count(out, "Please enter a whole number"))
	assert.Equal(t, 2, strings.Count(out, "Please enter a number of zero or more."))
}

func TestCollect_UnknownTierAccepted(t *testing.T) {
	cfg, _, err := collect(t, "9\nn\n1\n1\n")
	require.NoError(t, err)
	assert.Equal(t, problemgen.Tier(9), cfg.Tier)
}

func TestCollect_TierBelowOneReasked(t *testing.T) {
	cfg, out, err := collect(t, "0\n-3\n4\nn\n1\n1\n")
	require.NoError(t, err)
	assert.Equal(t, problemgen.Tier4, cfg.Tier)
	assert.Equal(t, 2, strings.Count(out, "Please enter a difficulty level number"))
	assert.NoError(t, cfg.Validate())
}

func TestCollect_InputClosed(t *testing.T) {
	_, _, err := collect(t, "1\ny\n3\n")
	assert.True(t, errors.Is(err, ErrInputClosed))
}

func TestCollect_FinalLineWithoutNewline(t *testing.T) {
	cfg, _, err := collect(t, "1\nn\n4\n2")
	require.NoError(t, err)
	assert.Equal(t, worksheet.Section{Count: 4, Points: 2}, cfg.Arithmetic)
}

func TestCollect_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(strings.NewReader("1\n"), &bytes.Buffer{}, worksheet.DefaultConfig())
	_, err := p.Collect(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_GeneratesAndReports(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("1\nn\n3\n2\n"), &out, worksheet.DefaultConfig())

	var got worksheet.Config
	err := p.Run(context.Background(), func(cfg worksheet.Config) (*worksheet.Result, error) {
		got = cfg
		return &worksheet.Result{
			QuestionsPath:  "/tmp/questions.tex",
			AnswersPath:    "/tmp/answers.tex",
			TotalQuestions: cfg.TotalQuestions(),
			TotalPoints:    cfg.TotalPoints(),
		}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, got.Arithmetic.Count)
	assert.Contains(t, out.String(), "Welcome to the Arithmetic Test Generator!")
	assert.Contains(t, out.String(), "6th to 7th Grade")
	assert.Contains(t, out.String(), "/tmp/questions.tex")
	assert.Contains(t, out.String(), "3 questions, 6 points total")
}

func TestRun_SurfacesGenerateError(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("1\nn\n3\n2\n"), &out, worksheet.DefaultConfig())

	boom := errors.New("disk full")
	err := p.Run(context.Background(), func(worksheet.Config) (*worksheet.Result, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, out.String(), "Questions written")
}
