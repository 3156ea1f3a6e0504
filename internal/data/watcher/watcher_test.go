package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.tsv")
	require.NoError(t, os.WriteFile(path, []byte("project\tstart\tend\n"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("project\tstart\tend\nx\t2024-03-15T09:00:00Z\t\n"), 0644))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestWatcherNotifiesOnRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.tsv")
	tmp := filepath.Join(dir, ".temps-new.tsv")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	// Atomic replace, the way both temps and most editors save.
	require.NoError(t, os.WriteFile(tmp, []byte("new\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after replacing the watched file")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temps.tsv")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y\n"), 0644))

	select {
	case <-w.Events():
		t.Fatal("unexpected event for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}
