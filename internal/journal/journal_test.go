package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndEntries(t *testing.T) {
	j := Open(t.TempDir())

	require.NoError(t, j.Record("client", "add", 1))
	require.NoError(t, j.Record("listing", "delete", 3))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "client", entries[0].Entity)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, 1, entries[0].EntityID)
	assert.NotEmpty(t, entries[0].EventID)
	assert.False(t, entries[0].At.IsZero())

	assert.Equal(t, "listing", entries[1].Entity)
	assert.NotEqual(t, entries[0].EventID, entries[1].EventID)
}

func TestEntriesMissingFile(t *testing.T) {
	j := Open(t.TempDir())

	entries, err := j.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	j := Open(dir)
	require.NoError(t, j.Record("client", "add", 1))

	// Corrupt the file with a broken line between two good ones.
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{broken\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, j.Record("client", "delete", 1))

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, "delete", entries[1].Action)
}

func TestNilJournalIsNoOp(t *testing.T) {
	var j *Journal

	assert.NoError(t, j.Record("client", "add", 1))

	entries, err := j.Entries()
	assert.NoError(t, err)
	assert.Nil(t, entries)
}
