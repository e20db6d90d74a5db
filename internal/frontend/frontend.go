// Package frontend defines the contract between the core and the
// interactive surfaces that collect a worksheet.Config.
package frontend

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/abhisek/mathsheet/internal/worksheet"
)

// Generate validates a configuration, assembles the sheet and writes both
// documents.
type Generate func(cfg worksheet.Config) (*worksheet.Result, error)

// Frontend collects a configuration from a user and invokes Generate.
type Frontend interface {
	Run(ctx context.Context, generate Generate) error
}

// Writer is satisfied by *worksheet.Assembler.
type Writer interface {
	Generate(cfg worksheet.Config, dir string) (*worksheet.Result, error)
}

// Bind returns a Generate that writes into dir.
func Bind(w Writer, dir string) Generate {
	return func(cfg worksheet.Config) (*worksheet.Result, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return w.Generate(cfg, dir)
	}
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// ConversionHint tells the user how to turn the documents into PDFs.
const ConversionHint = "Convert the .tex files to PDF with pdflatex or any online .tex to PDF converter."

// Report prints where the documents were written.
func Report(w io.Writer, res *worksheet.Result) {
	fmt.Fprintf(w, "Questions written to %s\n", green.Sprint(res.QuestionsPath))
	fmt.Fprintf(w, "Answer key written to %s\n", green.Sprint(res.AnswersPath))
	fmt.Fprintf(w, "%d questions, %s points total (sheet %s)\n",
		res.TotalQuestions, worksheet.FormatPoints(res.TotalPoints), res.SheetID)
	fmt.Fprintln(w, ConversionHint)
}

// ReportError prints a generation failure.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", red.Sprint("Error:"), err)
}
