package worksheet

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/mathsheet/internal/problemgen"
)

// Problem is one scored question on a sheet.
type Problem struct {
	Question *problemgen.Question
	Points   float64
}

// Category returns the category of the underlying question.
func (p Problem) Category() problemgen.Category {
	return p.Question.Category
}

// Document is a rendered LaTeX document, one element per line.
type Document []string

// String joins the lines with newlines.
func (d Document) String() string {
	return strings.Join(d, "\n")
}

// Items returns the number of \item entries in the document.
func (d Document) Items() int {
	n := 0
	for _, line := range d {
		if strings.HasPrefix(line, `\item `) {
			n++
		}
	}
	return n
}

// Sheet is the product of one assembly run.
type Sheet struct {
	// ID pairs a question sheet with its answer key. It is printed as a
	// comment at the top of both documents.
	ID uuid.UUID

	Config         Config
	Problems       []Problem
	TotalQuestions int
	TotalPoints    float64

	Questions Document
	Answers   Document
}

// Result describes the files written for a sheet.
type Result struct {
	SheetID        uuid.UUID
	QuestionsPath  string
	AnswersPath    string
	TotalQuestions int
	TotalPoints    float64
}

// FormatPoints renders a point value without trailing zeros: 2, 2.5, 0.25.
func FormatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// pointLabel renders "1 point" or "n points".
func pointLabel(p float64, unit string) string {
	if p == 1 {
		return "1 " + unit
	}
	return FormatPoints(p) + " " + unit + "s"
}
