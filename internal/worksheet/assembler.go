package worksheet

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/mathsheet/internal/problemgen"
)

// Assembler turns a Config into a question sheet and answer key. It is safe
// for concurrent use; calls are serialized so each sheet draws a contiguous
// run from rng and its two files are written together.
type Assembler struct {
	mu        sync.Mutex
	rng       problemgen.Rand
	generator *problemgen.Generator
}

// NewAssembler creates an Assembler whose problems and sheet IDs all draw
// from rng.
func NewAssembler(rng problemgen.Rand, cfg problemgen.Config) *Assembler {
	return &Assembler{
		rng:       rng,
		generator: problemgen.New(rng, cfg),
	}
}

// Assemble generates every problem the config asks for, arithmetic first
// and then algebra, and renders both documents in that order.
func (a *Assembler) Assemble(cfg Config) (*Sheet, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.assemble(cfg)
}

func (a *Assembler) assemble(cfg Config) (*Sheet, error) {
	id, err := uuid.NewRandomFromReader(problemgen.ByteReader{R: a.rng})
	if err != nil {
		return nil, fmt.Errorf("sheet id: %w", err)
	}

	problems := make([]Problem, 0, cfg.TotalQuestions())

	for i := 0; i < cfg.Arithmetic.Count; i++ {
		q, err := a.generator.Arithmetic(cfg.Tier)
		if err != nil {
			return nil, fmt.Errorf("arithmetic problem %d: %w", i+1, err)
		}
		problems = append(problems, Problem{Question: q, Points: cfg.Arithmetic.Points})
	}

	if cfg.IncludeAlgebra {
		for i := 0; i < cfg.Algebra.Count; i++ {
			q, err := a.generator.Algebra()
			if err != nil {
				return nil, fmt.Errorf("algebra problem %d: %w", i+1, err)
			}
			problems = append(problems, Problem{Question: q, Points: cfg.Algebra.Points})
		}
	}

	sheet := &Sheet{
		ID:             id,
		Config:         cfg,
		Problems:       problems,
		TotalQuestions: len(problems),
		TotalPoints:    totalPoints(problems),
	}
	sheet.Questions = renderQuestions(sheet)
	sheet.Answers = renderAnswers(sheet)

	log.Printf("[assembler] sheet %s: %d problems, %s points, tier %d",
		id, sheet.TotalQuestions, FormatPoints(sheet.TotalPoints), cfg.Tier)
	return sheet, nil
}

// Generate assembles a sheet and writes it into dir. Front ends pass the
// process working directory.
func (a *Assembler) Generate(cfg Config, dir string) (*Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sheet, err := a.assemble(cfg)
	if err != nil {
		return nil, err
	}
	return Write(dir, sheet)
}

// totalPoints sums the point value of every problem.
func totalPoints(problems []Problem) float64 {
	var total float64
	for _, p := range problems {
		total += p.Points
	}
	return total
}
