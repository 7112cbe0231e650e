package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsPrefabEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(0, dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agent.yaml"), []byte("name: a\n"), 0o644))

	select {
	case ch := <-w.Events:
		assert.Equal(t, "agent.yaml", ch.Name)
		assert.False(t, ch.Script)
	case <-time.After(3 * time.Second):
		t.Fatal("no watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(time.Second, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(0, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFileClassification(t *testing.T) {
	assert.True(t, isSpecFile("a/B.YML"))
	assert.True(t, isScriptFile("fire_policy.tengo"))
	assert.False(t, isScriptFile("x.lua"))
}
