package worksheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsheet/internal/problemgen"
)

func TestRender_DocumentStructure(t *testing.T) {
	sheet, err := newTestAssembler(8).Assemble(Config{
		Tier:       problemgen.Tier2,
		Arithmetic: Section{Count: 4, Points: 1},
		Title:      "Week 3 Quiz",
	})
	require.NoError(t, err)

	for name, doc := range map[string]Document{"questions": sheet.Questions, "answers": sheet.Answers} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "% mathsheet "+sheet.ID.String(), doc[0])
			assert.Contains(t, doc, `\usepackage[margin=1in]{geometry}`)
			assert.Contains(t, doc, `\usepackage{amsmath}`)
			assert.Contains(t, doc, `\begin{document}`)
			assert.Equal(t, `\end{document}`, doc[len(doc)-1])
			assert.Equal(t, `\end{enumerate}`, doc[len(doc)-2])
		})
	}

	assert.Contains(t, sheet.Questions, `\section*{Week 3 Quiz}`)
	assert.Contains(t, sheet.Answers, `\section*{Answer Key (Difficulty 2)}`)
	assert.Contains(t, sheet.Questions.String(), `\textbf{Name:}`)
	assert.Contains(t, sheet.Questions.String(), `\textbf{Date:}`)
}

func TestRender_AnswerKeyKeepsUnknownTierLabel(t *testing.T) {
	sheet, err := newTestAssembler(8).Assemble(Config{
		Tier:       problemgen.Tier(7),
		Arithmetic: Section{Count: 1, Points: 1},
	})
	require.NoError(t, err)
	assert.Contains(t, sheet.Answers, `\section*{Answer Key (Difficulty 7)}`)
	assert.Contains(t, sheet.Questions, `\section*{Arithmetic Test}`)
}

func TestRender_AnswersAreMathMode(t *testing.T) {
	sheet, err := newTestAssembler(12).Assemble(Config{
		Tier:           problemgen.Tier3,
		IncludeAlgebra: true,
		Arithmetic:     Section{Count: 10, Points: 1},
		Algebra:        Section{Count: 3, Points: 2},
	})
	require.NoError(t, err)

	for _, line := range items(sheet.Answers) {
		assert.True(t, strings.HasPrefix(line, `\item \(`), "answer %q not in math mode", line)
	}
	for _, line := range items(sheet.Questions) {
		assert.Contains(t, line, `\(\displaystyle `)
	}
}

func TestPointLabel(t *testing.T) {
	tests := []struct {
		points float64
		unit   string
		want   string
	}{
		{1, "point", "1 point"},
		{2, "point", "2 points"},
		{2.5, "point", "2.5 points"},
		{0, "pt", "0 pts"},
		{1, "pt", "1 pt"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, pointLabel(tc.points, tc.unit))
	}
}

func TestEscapeTeX(t *testing.T) {
	assert.Equal(t, `Quiz \#3 \& more`, escapeTeX("Quiz #3 & more"))
	assert.Equal(t, `100\% \_done\_`, escapeTeX("100% _done_"))
	assert.Equal(t, "Plain title", escapeTeX("Plain title"))
}
