package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// addSheetFlags registers the flags that override individual settings.
func addSheetFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("tier", 1, "Difficulty tier: 1 (grades 1-3), 2 (grade 4), 3 (grades 5-6), 4 (grades 6-7)")
	f.Bool("algebra", false, "Include algebra questions")
	f.Int("count", 10, "Number of arithmetic questions")
	f.Float64("points", 1, "Points per arithmetic question")
	f.Int("algebra-count", 5, "Number of algebra questions")
	f.Float64("algebra-points", 2, "Points per algebra question")
	f.String("title", worksheet.DefaultTitle, "Heading of the question sheet")
}

// sheetConfig starts from defaults and applies only the flags the user set.
func sheetConfig(cmd *cobra.Command, defaults worksheet.Config) (worksheet.Config, error) {
	f := cmd.Flags()
	cfg := defaults

	if f.Changed("tier") {
		n, _ := f.GetInt("tier")
		cfg.Tier = problemgen.Tier(n)
	}
	if f.Changed("algebra") {
		cfg.IncludeAlgebra, _ = f.GetBool("algebra")
	}
	if f.Changed("count") {
		cfg.Arithmetic.Count, _ = f.GetInt("count")
	}
	if f.Changed("points") {
		cfg.Arithmetic.Points, _ = f.GetFloat64("points")
	}
	if f.Changed("algebra-count") {
		cfg.Algebra.Count, _ = f.GetInt("algebra-count")
	}
	if f.Changed("algebra-points") {
		cfg.Algebra.Points, _ = f.GetFloat64("algebra-points")
	}
	if f.Changed("title") {
		cfg.Title, _ = f.GetString("title")
	}

	return cfg, cfg.Validate()
}
