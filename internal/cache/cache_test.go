package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ragchat/internal/api"
)

func newTestStore(t *testing.T) *Store {
	store, err := New(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	messages := []api.Message{
		{Text: "hello", Sender: api.SenderUser, Timestamp: "2024-01-01T00:00:00Z"},
		{Text: "hi", Sender: api.SenderAssistant, Timestamp: "2024-01-01T00:00:01Z", Source: "kb"},
	}
	require.NoError(t, store.Put("S1", messages))
	require.Equal(t, messages, store.Get("S1"))

	// Overwrite replaces, not appends.
	require.NoError(t, store.Put("S1", messages[:1]))
	require.Equal(t, messages[:1], store.Get("S1"))
}

func TestGetAbsentReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.Empty(t, store.Get("nope"))
}

func TestGetMalformedReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	_, err := store.db.Exec(`REPLACE INTO sessions (id, messages) VALUES (?, ?)`, "bad", "{not json")
	require.NoError(t, err)
	require.Empty(t, store.Get("bad"))
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put("S1", []api.Message{{Text: "x", Sender: api.SenderUser}}))
	require.NoError(t, store.Remove("S1"))
	require.Empty(t, store.Get("S1"))

	// Removing an absent entry is fine.
	require.NoError(t, store.Remove("S1"))
}

func TestCurrentPointer(t *testing.T) {
	store := newTestStore(t)
	require.Empty(t, store.Current())

	require.NoError(t, store.SetCurrent("S1"))
	require.Equal(t, "S1", store.Current())

	require.NoError(t, store.SetCurrent("S2"))
	require.Equal(t, "S2", store.Current())
}

func TestList(t *testing.T) {
	store := newTestStore(t)
	require.Empty(t, store.List())

	require.NoError(t, store.Put("a", []api.Message{{Text: "1", Sender: api.SenderUser}}))
	require.NoError(t, store.Put("b", []api.Message{{Text: "2", Sender: api.SenderUser}}))

	// Malformed rows are skipped, not surfaced.
	_, err := store.db.Exec(`REPLACE INTO sessions (id, messages) VALUES (?, ?)`, "c", "???")
	require.NoError(t, err)

	sessions := store.List()
	require.Len(t, sessions, 2)
	require.Equal(t, "a", sessions[0].SessionID)
	require.Equal(t, "b", sessions[1].SessionID)
}
