package worksheet

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Fixed output file names.
const (
	QuestionsFile = "questions.tex"
	AnswersFile   = "answers.tex"
)

// Write stores both documents of the sheet in dir, replacing any existing
// files of the same names. The first failed write aborts the run.
func Write(dir string, s *Sheet) (*Result, error) {
	qPath, err := writeDocument(dir, QuestionsFile, s.Questions)
	if err != nil {
		return nil, err
	}
	aPath, err := writeDocument(dir, AnswersFile, s.Answers)
	if err != nil {
		return nil, err
	}

	return &Result{
		SheetID:        s.ID,
		QuestionsPath:  qPath,
		AnswersPath:    aPath,
		TotalQuestions: s.TotalQuestions,
		TotalPoints:    s.TotalPoints,
	}, nil
}

func writeDocument(dir, name string, doc Document) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	log.Printf("[writer] wrote %s (%d lines)", path, len(doc))
	return path, nil
}
