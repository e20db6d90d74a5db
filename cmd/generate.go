package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/frontend"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write questions.tex and answers.tex without asking anything",
	Example: `  mathsheet generate --tier 3 --count 20
  mathsheet generate --tier 4 --algebra --algebra-count 5 --algebra-points 3 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addSheetFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	cfg, err := sheetConfig(cmd, e.settings.Worksheet())
	if err != nil {
		return err
	}

	res, err := e.generate()(cfg)
	if err != nil {
		return err
	}
	frontend.Report(cmd.OutOrStdout(), res)
	return nil
}
