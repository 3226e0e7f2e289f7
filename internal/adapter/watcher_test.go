package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	m "github.com/mouse-blink/almanac/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "almanac.txt")
	other := filepath.Join(dir, "other.txt")
	writeTestFile(t, path, "seeds: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewFileWatcher(20*time.Millisecond).Watch(ctx, m.Path(path))
	require.NoError(t, err)

	writeTestFile(t, other, "ignored\n")
	writeTestFile(t, path, "seeds: 2\n")

	select {
	case _, ok := <-changes:
		require.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()

	select {
	case _, ok := <-changes:
		for ok {
			_, ok = <-changes
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "almanac.txt")

	_, err := NewFileWatcher(0).Watch(context.Background(), m.Path(path))
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Dir(path))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}
