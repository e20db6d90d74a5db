package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the question sheet and answer key without writing files",
	Long: `Assemble a sheet and print both LaTeX documents to stdout. Nothing is
written to disk.

With --quiz the questions are asked one at a time instead and each answer
is checked against the key. Fractions may be given unreduced and algebra
answers as "x = 3" or just "3".`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	addSheetFlags(previewCmd)
	previewCmd.Flags().Bool("quiz", false, "Answer the questions on the terminal instead of printing LaTeX")
}

func runPreview(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	cfg, err := sheetConfig(cmd, e.settings.Worksheet())
	if err != nil {
		return err
	}

	sheet, err := e.assembler.Assemble(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiz, _ := cmd.Flags().GetBool("quiz"); quiz {
		return runQuiz(cmd.InOrStdin(), out, sheet)
	}

	fmt.Fprintf(out, "%% ---- %s ----\n", worksheet.QuestionsFile)
	fmt.Fprintln(out, sheet.Questions.String())
	fmt.Fprintf(out, "%% ---- %s ----\n", worksheet.AnswersFile)
	fmt.Fprintln(out, sheet.Answers.String())
	return nil
}

// runQuiz asks every problem on the sheet and tallies the points earned.
// Empty answers are skipped; end of input stops the quiz early.
func runQuiz(in io.Reader, out io.Writer, sheet *worksheet.Sheet) error {
	scanner := bufio.NewScanner(in)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	total := len(sheet.Problems)
	fmt.Fprintf(out, "%s (difficulty %d, %s)\n\n", sheet.Config.Title, sheet.Config.Tier, sheet.Config.Tier.GradeLabel())

	var earned float64
	var correct int
	for i, p := range sheet.Problems {
		q := p.Question
		fmt.Fprintf(out, "── Question %d/%d (%s) ──\n", i+1, total, worksheet.FormatPoints(p.Points)+" pts")
		if q.Category == problemgen.CategoryAlgebra {
			fmt.Fprintf(out, "Solve for x: %s\n", q.Plain)
		} else {
			fmt.Fprintf(out, "%s = ?\n", q.Plain)
		}

		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		switch {
		case answer == "":
			fmt.Fprintln(out, "(skipped)")
		case problemgen.CheckAnswer(answer, q):
			correct++
			earned += p.Points
			green.Fprintln(out, "✓ Correct!")
		default:
			fmt.Fprintf(out, "%s Answer: %s\n", red.Sprint("✗ Wrong."), q.Answer)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Score: %d/%d correct, %s/%s points ──\n",
		correct, total, worksheet.FormatPoints(earned), worksheet.FormatPoints(sheet.TotalPoints))
	return scanner.Err()
}
