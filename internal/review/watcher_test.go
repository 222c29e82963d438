package review

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "review.yaml")
	require.NoError(t, os.WriteFile(path, []byte("groups: []\n"), 0644))

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("groups:\n  - title: t\n    hunks: []\n"), 0644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change signal after write")
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "review.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	// A rapid burst of writes collapses into one signal.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("b\n"), 0644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected one signal for the burst")
	}

	select {
	case <-ch:
		t.Fatal("burst produced more than one signal")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "review.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0644))

	select {
	case <-ch:
		t.Fatal("unrelated file must not signal")
	case <-time.After(150 * time.Millisecond):
	}
}
