package worksheet

import (
	"fmt"

	"github.com/abhisek/mathsheet/internal/problemgen"
)

// Vertical work space after each question, by category.
const (
	arithmeticSpacer = `\vspace{4\baselineskip}`
	algebraSpacer    = `\vspace{8\baselineskip}`
)

// preamble is shared by both documents: 12pt article, one-inch margins,
// AMS math extensions.
func preamble(s *Sheet) Document {
	return Document{
		"% mathsheet " + s.ID.String(),
		`\documentclass[12pt]{article}`,
		`\usepackage[margin=1in]{geometry}`,
		`\usepackage{amsmath}`,
		`\begin{document}`,
	}
}

func renderQuestions(s *Sheet) Document {
	doc := preamble(s)
	doc = append(doc,
		fmt.Sprintf(`\section*{%s}`, escapeTeX(s.Config.title())),
		`\textbf{Name:}\underline{\hspace{8cm}}\hfill\textbf{Date:}\underline{\hspace{5cm}}`,
		`\vspace{1em}`,
		fmt.Sprintf(`\textbf{Total Questions:} \(%d\)\\`, s.TotalQuestions),
		fmt.Sprintf(`\textbf{Total Points:} \(%s\)\\`, FormatPoints(s.TotalPoints)),
		`\vspace{1em}`,
		`Answer each of the following questions clearly:`,
		`\\[1em]`,
	)
	if s.Config.IncludeAlgebra {
		doc = append(doc, `\textit{Algebra questions are labeled "Solve for x:". Be sure to show each step!}`)
	}

	doc = append(doc, `\begin{enumerate}`)
	for _, p := range s.Problems {
		spacer := arithmeticSpacer
		if p.Category() == problemgen.CategoryAlgebra {
			spacer = algebraSpacer
		}
		doc = append(doc, fmt.Sprintf(`\item %s \textit{(%s)}%s`,
			p.Question.Text, pointLabel(p.Points, "point"), spacer))
	}
	return append(doc, `\end{enumerate}`, `\end{document}`)
}

func renderAnswers(s *Sheet) Document {
	doc := preamble(s)
	doc = append(doc,
		fmt.Sprintf(`\section*{Answer Key (Difficulty %d)}`, s.Config.Tier),
		`\begin{enumerate}`,
	)
	for _, p := range s.Problems {
		doc = append(doc, fmt.Sprintf(`\item \(%s\) \textit{(%s)}`,
			p.Question.Answer, pointLabel(p.Points, "pt")))
	}
	return append(doc, `\end{enumerate}`, `\end{document}`)
}

// escapeTeX escapes characters that are special in LaTeX text mode.
func escapeTeX(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '\\':
			out = append(out, []rune(`\textbackslash{}`)...)
		case '&', '%', '$', '#', '_', '{', '}':
			out = append(out, '\\', r)
		case '~':
			out = append(out, []rune(`\textasciitilde{}`)...)
		case '^':
			out = append(out, []rune(`\textasciicircum{}`)...)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
