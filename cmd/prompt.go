package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/prompt"
)

// runPrompt is the root command: the line-oriented front end.
func runPrompt(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), e.settings.Worksheet())
	return p.Run(cmd.Context(), e.generate())
}
