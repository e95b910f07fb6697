package commands_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenses-dev/expenses/internal/runlog"
)

func TestLog_Empty(t *testing.T) {
	dir := newWorkspace(t)

	out, _, err := runExpenses(t, "log", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No import runs recorded.")
}

func TestLog_GroupsByRun(t *testing.T) {
	dir := newWorkspace(t, "giro_2024_12.csv", "not_an_export.csv")
	_, _, err := runExpenses(t, "import", "--repo", dir)
	require.NoError(t, err)

	copyFile(t, "../../testdata/giro_2025_01.csv", filepath.Join(dir, "import", "giro_2025_01.csv"))
	_, _, err = runExpenses(t, "import", "--repo", dir, "--archive")
	require.NoError(t, err)

	entries, err := runlog.Read(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	first, second := entries[0].RunID, entries[len(entries)-1].RunID
	require.NotEqual(t, first, second)

	out, _, err := runExpenses(t, "log", "--repo", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Run "))
	assert.Less(t, strings.Index(out, first), strings.Index(out, second))
	assert.Contains(t, out, "giro_2024_12.csv -> giro_2024_12_classified.csv (3 rows, 0 issue(s))")
	assert.Contains(t, out, "not_an_export.csv: ")

	out, _, err = runExpenses(t, "log", "--repo", dir, "--run", first)
	require.NoError(t, err)
	assert.Contains(t, out, first)
	assert.NotContains(t, out, second)

	out, _, err = runExpenses(t, "log", "--repo", dir, "--last")
	require.NoError(t, err)
	assert.Contains(t, out, second)
	assert.NotContains(t, out, first)
	assert.Contains(t, out, "archived")
}

func TestLog_UnknownRun(t *testing.T) {
	dir := newWorkspace(t, "giro_2024_12.csv")
	_, _, err := runExpenses(t, "import", "--repo", dir)
	require.NoError(t, err)

	_, _, err = runExpenses(t, "log", "--repo", dir, "--run", "nope")
	assert.Error(t, err)
}
