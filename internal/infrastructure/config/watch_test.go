package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("levels/level1.yaml"))
	assert.True(t, isConfigFile("LEVEL.YML"))
	assert.True(t, isConfigFile("level.json"))
	assert.False(t, isConfigFile("level.yaml.swp"))
	assert.False(t, isConfigFile("notes.txt"))
}

func TestWatcher_ReportsChangedLevel(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	target := filepath.Join(dir, "level1.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: level1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	var got []string
	assert.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, name := range got {
		assert.Equal(t, target, name)
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Empty(t, w.Poll())
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWatcher_ReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := newWatcher(200*time.Millisecond, dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// truncate-then-write save: the half-written file must not be reported alone
	target := filepath.Join(dir, "level1.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: lev"), 0o644))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(target, []byte("name: level1\n"), 0o644))

	var got []string
	var content string
	require.Eventually(t, func() bool {
		changed := w.Poll()
		if len(changed) > 0 && content == "" {
			b, err := os.ReadFile(target)
			require.NoError(t, err)
			content = string(b)
		}
		got = append(got, changed...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "name: level1\n", content, "reported only after the final write")

	time.Sleep(400 * time.Millisecond)
	got = append(got, w.Poll()...)
	assert.Equal(t, []string{target}, got, "both writes coalesce into one report")
}
