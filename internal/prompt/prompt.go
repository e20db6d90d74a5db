// Package prompt implements the line-oriented front end: a colored menu
// followed by a short series of questions on a reader/writer pair.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/abhisek/mathsheet/internal/frontend"
	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// ErrInputClosed is returned when input ends before every question is
// answered.
var ErrInputClosed = errors.New("input closed before the configuration was complete")

var tierColors = map[problemgen.Tier]*color.Color{
	problemgen.Tier1: color.New(color.FgBlue),
	problemgen.Tier2: color.New(color.FgMagenta),
	problemgen.Tier3: color.New(color.FgYellow),
	problemgen.Tier4: color.New(color.FgRed),
}

var (
	green = color.New(color.FgGreen)
	cyan  = color.New(color.FgCyan)
	red   = color.New(color.FgRed)
)

const rule = "========================================================"

// Prompter asks for a configuration on in and writes prompts to out.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	defaults worksheet.Config
}

// New creates a Prompter. Empty answers take their value from defaults.
func New(in io.Reader, out io.Writer, defaults worksheet.Config) *Prompter {
	return &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		defaults: defaults,
	}
}

var _ frontend.Frontend = (*Prompter)(nil)

// Run collects one configuration, generates the sheet and reports the
// written files. Generation errors are returned for the caller to print.
func (p *Prompter) Run(ctx context.Context, generate frontend.Generate) error {
	p.welcome()

	cfg, err := p.Collect(ctx)
	if err != nil {
		return err
	}

	res, err := generate(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out)
	frontend.Report(p.out, res)
	return nil
}

func (p *Prompter) welcome() {
	fmt.Fprintln(p.out, green.Sprint("Welcome to the Arithmetic Test Generator!"))
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, cyan.Sprint("Difficulty levels:"))
	for _, t := range problemgen.AllTiers() {
		line := fmt.Sprintf("%d. For %s level math (enter '%d')", t, t.GradeLabel(), t)
		fmt.Fprintln(p.out, tierColors[t].Sprint(line))
	}
	fmt.Fprintln(p.out, rule)
}

// Collect asks every question and returns the resulting configuration.
// Without algebra the questions are a total count and a point value;
// with algebra each category gets its own count and point value.
func (p *Prompter) Collect(ctx context.Context) (worksheet.Config, error) {
	cfg := p.defaults

	tier, err := p.askTier(ctx)
	if err != nil {
		return cfg, err
	}
	cfg.Tier = tier

	algebra, err := p.askYesNo(ctx, "Would you like to include algebra questions? (y/n)", p.defaults.IncludeAlgebra)
	if err != nil {
		return cfg, err
	}
	cfg.IncludeAlgebra = algebra

	if !algebra {
		if cfg.Arithmetic.Count, err = p.askCount(ctx, "How many questions total would you like?", p.defaults.Arithmetic.Count); err != nil {
			return cfg, err
		}
		if cfg.Arithmetic.Points, err = p.askPoints(ctx, "How many points is each question worth?", p.defaults.Arithmetic.Points); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if cfg.Arithmetic.Count, err = p.askCount(ctx, "How many arithmetic questions?", p.defaults.Arithmetic.Count); err != nil {
		return cfg, err
	}
	if cfg.Algebra.Count, err = p.askCount(ctx, "How many algebra questions?", p.defaults.Algebra.Count); err != nil {
		return cfg, err
	}
	if cfg.Arithmetic.Points, err = p.askPoints(ctx, "How many points per arithmetic question?", p.defaults.Arithmetic.Points); err != nil {
		return cfg, err
	}
	if cfg.Algebra.Points, err = p.askPoints(ctx, "How many points per algebra question?", p.defaults.Algebra.Points); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (p *Prompter) askTier(ctx context.Context) (problemgen.Tier, error) {
	def := p.defaults.Tier
	if def == 0 {
		def = problemgen.Tier1
	}
	for {
		line, err := p.ask(ctx, "Select a difficulty level from the menu", def.String())
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		t, err := problemgen.ParseTier(line)
		if err != nil || worksheet.ValidateTier(t) != nil {
			p.complain("Please enter a difficulty level number from the menu.")
			continue
		}
		return t, nil
	}
}

func (p *Prompter) askYesNo(ctx context.Context, question string, def bool) (bool, error) {
	shown := "n"
	if def {
		shown = "y"
	}
	for {
		line, err := p.ask(ctx, question, shown)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.complain("Please answer y or n.")
	}
}

func (p *Prompter) askCount(ctx context.Context, question string, def int) (int, error) {
	for {
		line, err := p.ask(ctx, question, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			p.complain("Please enter a whole number of zero or more.")
			continue
		}
		return n, nil
	}
}

func (p *Prompter) askPoints(ctx context.Context, question string, def float64) (float64, error) {
	for {
		line, err := p.ask(ctx, question, worksheet.FormatPoints(def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			p.complain("Please enter a number of zero or more.")
			continue
		}
		return f, nil
	}
}

// ask prints the question with its default and returns the trimmed reply.
func (p *Prompter) ask(ctx context.Context, question, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, def)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) complain(msg string) {
	fmt.Fprintln(p.out, red.Sprint(msg))
}
