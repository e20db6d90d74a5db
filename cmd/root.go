package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathsheet",
	Short: "Printable arithmetic and algebra worksheets",
	Long: `mathsheet generates a LaTeX question sheet (questions.tex) and a matching
answer key (answers.tex) in the current directory.

Without a subcommand it asks for the difficulty tier, question counts and
point values on the terminal. Defaults come from the settings file and
MATHSHEET_* environment variables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPrompt,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Settings file (default $XDG_CONFIG_HOME/mathsheet/config.yaml)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed; equal seeds produce identical sheets (overrides settings)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging routes the standard logger to stderr with --verbose and
// discards it otherwise.
func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFlags(log.Ltime | log.Lmicroseconds)
		return nil
	}
	log.SetOutput(io.Discard)
	return nil
}
