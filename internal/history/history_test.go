package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNavigation(t *testing.T) {
	h := NewAt(filepath.Join(t.TempDir(), "history"))
	h.Add("first")
	h.Add("second")

	entry, ok := h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "second", entry)

	entry, ok = h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "first", entry)

	// At the oldest entry already.
	entry, ok = h.Previous("draft")
	require.False(t, ok)
	require.Equal(t, "first", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "second", entry)

	// Walking past the newest entry restores the saved draft.
	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "draft", entry)
}

func TestAddSkipsBlankAndDuplicate(t *testing.T) {
	h := NewAt(filepath.Join(t.TempDir(), "history"))
	h.Add("  ")
	h.Add("hello")
	h.Add("hello")

	entry, ok := h.Previous("")
	require.True(t, ok)
	require.Equal(t, "hello", entry)
	_, ok = h.Previous("")
	require.False(t, ok)
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewAt(path)
	h.Add("multi\nline")

	reloaded := NewAt(path)
	entry, ok := reloaded.Previous("")
	require.True(t, ok)
	require.Equal(t, "multi\nline", entry)
}
