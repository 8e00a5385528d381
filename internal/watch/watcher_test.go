package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func javaOnly(path string) bool {
	return strings.HasSuffix(path, ".java")
}

func startWatcher(t *testing.T, root string) (*Watcher, <-chan []string) {
	t.Helper()

	changes := make(chan []string, 8)

	w, err := New([]string{root}, javaOnly, func(_ context.Context, paths []string) {
		changes <- paths
	}, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	return w, changes
}

func waitChange(t *testing.T, changes <-chan []string) []string {
	t.Helper()

	select {
	case paths := <-changes:
		return paths
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return nil
	}
}

func TestWatcher_ReportsDebouncedChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	w, changes := startWatcher(t, root)
	defer w.Stop()

	path := filepath.Join(root, "Klass.java")
	require.NoError(t, os.WriteFile(path, []byte("class Klass<T> {}"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("class Klass<T> { T v; }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	assert.Equal(t, []string{path}, waitChange(t, changes))
}

func TestWatcher_NewDirectories(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	w, changes := startWatcher(t, root)
	defer w.Stop()

	dir := filepath.Join(root, "x", "y")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, "Box.java")
	require.NoError(t, os.WriteFile(path, []byte("class Box<T> {}"), 0o644))

	assert.Contains(t, waitChange(t, changes), path)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, _ := startWatcher(t, t.TempDir())
	w.Stop()
	w.Stop()

	select {
	case <-w.Done():
	default:
		t.Fatal("event loop still running")
	}
}

func TestWatcher_MissingRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New([]string{filepath.Join(t.TempDir(), "missing")}, javaOnly, func(context.Context, []string) {})
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))
}
