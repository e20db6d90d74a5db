package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/frontend"
	"github.com/abhisek/mathsheet/internal/settings"
	"github.com/abhisek/mathsheet/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the sheet every time the settings file is saved",
	Long: `Generate once, then watch the settings file (--config, or the user config
file) and regenerate questions.tex and answers.tex after each save. Invalid
settings are reported and the previous files are left in place.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = settings.UserConfigPath()
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("settings file %s: %w (create one with 'mathsheet config init')", path, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	regenerate := func() error {
		e, err := loadEnvFrom(cmd, path)
		if err != nil {
			return err
		}
		res, err := e.generate()(e.settings.Worksheet())
		if err != nil {
			return err
		}
		frontend.Report(out, res)
		return nil
	}

	if err := regenerate(); err != nil {
		frontend.ReportError(cmd.ErrOrStderr(), err)
	}

	w := watch.New(path, regenerate)
	w.OnError = func(err error) {
		frontend.ReportError(cmd.ErrOrStderr(), err)
	}
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", path)
	return w.Run(ctx)
}

