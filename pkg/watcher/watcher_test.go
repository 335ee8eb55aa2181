package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0 1 1\n"), 0o644))

	fw, err := New(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changes := make(chan string, 16)
	require.NoError(t, fw.Watch(path, func(p string) { changes <- p }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	for i := range 3 {
		data := []byte("0 0 1 1\n")
		data = append(data, byte('0'+i), '\n')
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-changes:
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestSiblingFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := New(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changes := make(chan string, 16)
	require.NoError(t, fw.Watch(path, func(p string) { changes <- p }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case got := <-changes:
		t.Fatalf("unexpected change for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}
