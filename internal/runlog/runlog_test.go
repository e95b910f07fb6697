package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 2, 1, 9, 15, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		RunID:     "6f1c2d3e-0000-4000-8000-000000000001",
		Source:    "import/giro_2025_01.csv",
		Action:    ActionClassified,
		Rows:      6,
		Issues:    1,
		Output:    "classified/giro_2025_01_classified.csv",
		Details:   "row 4: Betrag (€) \"abc\", unparseable",
	}
}

func logPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "logs", "import-log.csv")
}

func TestAppend_NewFile(t *testing.T) {
	path := logPath(t)
	require.NoError(t, Append(path, []Entry{testEntry()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > len(Header))
	assert.Equal(t, Header+"\n", string(data[:len(Header)+1]))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ActionClassified, entries[0].Action)
}

func TestAppend_ExistingFile(t *testing.T) {
	path := logPath(t)
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Action = ActionSkipped
	e2.Rows = 0
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionClassified, entries[0].Action)
	assert.Equal(t, ActionSkipped, entries[1].Action)
}

func TestRead_RoundTrip(t *testing.T) {
	path := logPath(t)
	original := testEntry()
	require.NoError(t, Append(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	got.Timestamp = original.Timestamp
	assert.Equal(t, original, got)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(logPath(t))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := logPath(t)
	require.NoError(t, Append(path, nil))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Bad(t *testing.T) {
	_, err := UnmarshalEntry([]string{"x"})
	assert.Error(t, err)

	row := MarshalEntry(testEntry())
	row[colTimestamp] = "yesterday"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)

	row = MarshalEntry(testEntry())
	row[colRows] = "six"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)
}

func TestByRun(t *testing.T) {
	a, b := testEntry(), testEntry()
	b.RunID = "other"
	c := testEntry()
	c.Action = ActionArchived

	got := ByRun([]Entry{a, b, c}, a.RunID)
	require.Len(t, got, 2)
	assert.Equal(t, ActionArchived, got[1].Action)
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewRunID())
}
