package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathsheet/internal/settings"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// resetFlags restores every flag in the tree to its default so tests do
// not leak state through the package-level commands.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the command tree in a fresh working directory with an empty
// user config dir.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), dir, err
}

func TestGenerateCommand(t *testing.T) {
	out, dir, err := execute(t, "", "generate", "--seed", "7", "--tier", "3",
		"--count", "2", "--algebra", "--algebra-count", "2", "--algebra-points", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "4 questions, 8 points total")
	for _, name := range []string{worksheet.QuestionsFile, worksheet.AnswersFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), `\begin{document}`)
	}
}

func TestGenerateCommand_RejectsNegativeCount(t *testing.T) {
	_, dir, err := execute(t, "", "generate", "--count=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")

	_, statErr := os.Stat(filepath.Join(dir, worksheet.QuestionsFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateCommand_TierRule(t *testing.T) {
	for _, tier := range []string{"0", "-3"} {
		t.Run("rejects "+tier, func(t *testing.T) {
			_, dir, err := execute(t, "", "generate", "--tier="+tier)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "tier must be 1 or greater")

			_, statErr := os.Stat(filepath.Join(dir, worksheet.QuestionsFile))
			assert.True(t, os.IsNotExist(statErr))
		})
	}

	t.Run("accepts unknown tier above range", func(t *testing.T) {
		_, dir, err := execute(t, "", "generate", "--tier=7", "--count=2", "--seed=5")
		require.NoError(t, err)

		answers, err := os.ReadFile(filepath.Join(dir, worksheet.AnswersFile))
		require.NoError(t, err)
		assert.Contains(t, string(answers), "Answer Key (Difficulty 7)")
	})
}

func TestRootCommandRunsPrompt(t *testing.T) {
	out, dir, err := execute(t, "2\nn\n3\n2\n", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to the Arithmetic Test Generator!")
	assert.Contains(t, out, "3 questions, 6 points total")
	assert.FileExists(t, filepath.Join(dir, worksheet.AnswersFile))
}

func TestPreviewCommand(t *testing.T) {
	first, dir, err := execute(t, "", "preview", "--seed", "11", "--count", "3")
	require.NoError(t, err)
	second, _, err := execute(t, "", "preview", "--seed", "11", "--count", "3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "% ---- questions.tex ----")
	assert.Contains(t, first, "% ---- answers.tex ----")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPreviewQuiz(t *testing.T) {
	out, _, err := execute(t, "\n\n", "preview", "--quiz", "--seed", "5", "--count", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "(skipped)"))
	assert.Contains(t, out, "Score: 0/2 correct, 0/2 points")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathsheet.yaml")

	out, _, err := execute(t, "", "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, _, err = execute(t, "", "config", "init", "--config", path)
	assert.ErrorIs(t, err, settings.ErrConfigExists)

	out, _, err = execute(t, "", "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+path)
	assert.Contains(t, out, "tier: 1")
}

func TestConfigFileFeedsGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathsheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tier: 2\narithmetic:\n  count: 4\n  points: 2.5\n"), 0o644))

	out, _, err := execute(t, "", "generate", "--config", path, "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "4 questions, 10 points total")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mathsheet (devel)\n", out)
}
