package worksheet

import (
	"fmt"

	"github.com/abhisek/mathsheet/internal/problemgen"
)

// DefaultTitle heads the question sheet when Config.Title is empty.
const DefaultTitle = "Arithmetic Test"

// Section is the count and per-problem point value for one category.
type Section struct {
	Count  int
	Points float64
}

// Total returns Count × Points.
func (s Section) Total() float64 {
	return float64(s.Count) * s.Points
}

// Config is the test configuration collected by a front end. The
// assembler treats it as read-only.
type Config struct {
	Tier           problemgen.Tier
	IncludeAlgebra bool
	Arithmetic     Section
	Algebra        Section

	// Title heads the question sheet. Empty means DefaultTitle.
	Title string
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{
		Tier:       problemgen.Tier1,
		Arithmetic: Section{Count: 10, Points: 1},
		Algebra:    Section{Count: 5, Points: 2},
		Title:      DefaultTitle,
	}
}

// Validate rejects tiers below 1 and negative counts or point values. Every
// front end calls it before handing the config to the assembler.
func (c Config) Validate() error {
	if err := ValidateTier(c.Tier); err != nil {
		return err
	}
	if err := c.Arithmetic.validate("arithmetic"); err != nil {
		return err
	}
	if c.IncludeAlgebra {
		if err := c.Algebra.validate("algebra"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTier rejects tiers below 1. Tiers above the known range are
// accepted and follow tier-1 rules.
func ValidateTier(t problemgen.Tier) error {
	if t < problemgen.Tier1 {
		return fmt.Errorf("tier must be 1 or greater, got %d", t)
	}
	return nil
}

func (s Section) validate(name string) error {
	if s.Count < 0 {
		return fmt.Errorf("%s question count must not be negative, got %d", name, s.Count)
	}
	if s.Points < 0 {
		return fmt.Errorf("%s points must not be negative, got %s", name, FormatPoints(s.Points))
	}
	return nil
}

// TotalQuestions returns the number of problems the config produces.
func (c Config) TotalQuestions() int {
	n := c.Arithmetic.Count
	if c.IncludeAlgebra {
		n += c.Algebra.Count
	}
	return n
}

// TotalPoints returns Σ count × points over the included categories.
func (c Config) TotalPoints() float64 {
	total := c.Arithmetic.Total()
	if c.IncludeAlgebra {
		total += c.Algebra.Total()
	}
	return total
}

func (c Config) title() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}
