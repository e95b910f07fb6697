package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/categorizer"
	"github.com/expenses-dev/expenses/internal/config"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runExpenses(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized expenses workspace")

	expectedDirs := []string{
		"rules",
		"import",
		filepath.Join("import", "processed"),
		"classified",
		"logs",
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runExpenses(t, "init", dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "expenses.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_Lexicon(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runExpenses(t, "init", dir)
	require.NoError(t, err)

	lex, err := categorizer.LoadLexicon(filepath.Join(dir, "rules", "categories.yaml"))
	require.NoError(t, err)
	assert.Equal(t, categorizer.DefaultLexicon().Names(), lex.Names())
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runExpenses(t, "init", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	contents := string(data)

	for _, pattern := range []string{".env", "import/"} {
		assert.Contains(t, contents, pattern, ".gitignore should contain %s", pattern)
	}
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runExpenses(t, "init", dir)
	require.NoError(t, err)

	_, _, err = runExpenses(t, "init", dir)
	require.Error(t, err, "second init without --force should fail")

	_, _, err = runExpenses(t, "init", dir, "--force")
	assert.NoError(t, err)
}

func TestInit_Git(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	_, _, err := runExpenses(t, "init", dir, "--git")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "expenses.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: expenses workspace")
}
