package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/app"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in the worksheet settings in a full-screen form",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		a := app.New(app.Options{
			Defaults: e.settings.Worksheet(),
			Status:   e.source(),
		})
		return a.Run(cmd.Context(), e.generate())
	},
}
