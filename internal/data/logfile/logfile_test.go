package logfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temps-cli/temps/internal/core/entry"
)

func closed(project string, start, end time.Time) entry.Entry {
	return entry.Entry{Project: project, Start: start, End: &end}
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "temps.tsv"), time.UTC)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteReadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.tsv")
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	want := []entry.Entry{
		closed("website", start, start.Add(90*time.Minute)),
		{Project: "thesis", Start: start.Add(2 * time.Hour)},
	}

	require.NoError(t, Write(path, want))

	got, err := Read(path, time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "website", got[0].Project)
	assert.True(t, got[0].Start.Equal(want[0].Start))
	require.NotNil(t, got[0].End)
	assert.True(t, got[0].End.Equal(*want[0].End))
	assert.Equal(t, "thesis", got[1].Project)
	assert.True(t, got[1].Ongoing())
}

func TestWriteFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.tsv")
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, Write(path, []entry.Entry{{Project: "website", Start: start}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "project\tstart\tend", lines[0])
	assert.Equal(t, "website\t2024-03-15T09:00:00Z\t", lines[1])
}

func TestWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.tsv")
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Write(path, []entry.Entry{closed("a", start, start.Add(time.Hour))}))
	require.NoError(t, Write(path, []entry.Entry{closed("b", start, start.Add(time.Hour))}))

	entries, err := Read(path, time.UTC)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Project)

	// No temp files left behind.
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestReadBadTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.tsv")
	content := "project\tstart\tend\nwebsite\tnot-a-date\t\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Read(path, time.UTC)
	require.Error(t, err)
	assert.ErrorIs(t, err, entry.ErrInvalidEntry)
	assert.Contains(t, err.Error(), ":2:")
}

func TestReadOngoingNotLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.tsv")
	content := "project\tstart\tend\n" +
		"a\t2024-03-15T09:00:00Z\t\n" +
		"b\t2024-03-15T10:00:00Z\t2024-03-15T11:00:00Z\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Read(path, time.UTC)
	assert.ErrorIs(t, err, entry.ErrInvalidEntry)
}

func TestReadConvertsTimezone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.tsv")
	content := "project\tstart\tend\nwebsite\t2024-03-15T09:00:00+02:00\t\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := Read(path, time.UTC)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, time.UTC, entries[0].Start.Location())
	assert.Equal(t, 7, entries[0].Start.Hour())
}
