package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher, timeout time.Duration) (Event, bool) {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	ev, ok := waitEvent(t, w, 2*time.Second)
	require.True(t, ok, "expected a change event")
	assert.Equal(t, w.Path(), ev.Path)
	assert.True(t, ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create))
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, err := NewWatcher(path, WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	_, ok := waitEvent(t, w, 200*time.Millisecond)
	assert.False(t, ok, "writes to other files must not be reported")
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("v0"), 0o644))

	w, err := NewWatcher(path, WithDebounce(150*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
	}

	_, ok := waitEvent(t, w, 2*time.Second)
	require.True(t, ok)

	_, ok = waitEvent(t, w, 400*time.Millisecond)
	assert.False(t, ok, "a burst should produce one event")
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	_, open := <-w.Events()
	assert.False(t, open)
	_, open = <-w.Errors()
	assert.False(t, open)
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "doc.txt"))

	var perr *PathError
	assert.ErrorAs(t, err, &perr)
}
