package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ragchat/internal/api"
)

func TestRefreshHistorySynthesizesLocalOnlyCurrent(t *testing.T) {
	fc := newFakeCache()
	cached := []api.Message{{Text: "offline question", Sender: api.SenderUser, Timestamp: "2024-03-01T10:00:00Z"}}
	require.NoError(t, fc.Put("local", cached))
	require.NoError(t, fc.SetCurrent("local"))

	remote := &fakeRemote{
		history: []api.SessionSummary{
			{SessionID: "a", CreatedAt: "2024-01-01T00:00:00Z"},
			{SessionID: "b", CreatedAt: "2024-02-01T00:00:00Z"},
		},
	}
	m := NewManager(fc, remote)
	m.Initialize(context.Background())

	entries := m.History()
	require.Len(t, entries, 3)
	require.Equal(t, "a", entries[0].SessionID)
	require.Equal(t, "b", entries[1].SessionID)

	// Exactly one synthesized entry for the current session, carrying its
	// cached messages and the first message's timestamp.
	require.Equal(t, "local", entries[2].SessionID)
	require.Equal(t, "2024-03-01T10:00:00Z", entries[2].CreatedAt)
	require.Equal(t, cached, entries[2].Messages)
}

func TestRefreshHistoryIsIdempotent(t *testing.T) {
	fc := newFakeCache()
	require.NoError(t, fc.Put("local", []api.Message{{Text: "q", Sender: api.SenderUser, Timestamp: "2024-03-01T10:00:00Z"}}))
	require.NoError(t, fc.SetCurrent("local"))

	remote := &fakeRemote{history: []api.SessionSummary{{SessionID: "a", CreatedAt: "2024-01-01T00:00:00Z"}}}
	m := NewManager(fc, remote)
	m.Initialize(context.Background())

	first := m.RefreshHistory(context.Background())
	second := m.RefreshHistory(context.Background())
	require.Equal(t, first, second)
}

func TestRefreshHistoryDeduplicates(t *testing.T) {
	fc := newFakeCache()
	remote := &fakeRemote{
		history: []api.SessionSummary{
			{SessionID: "a", CreatedAt: "2024-01-01T00:00:00Z"},
			{SessionID: "a", CreatedAt: "2024-01-02T00:00:00Z"},
		},
	}
	m := NewManager(fc, remote)

	entries := m.RefreshHistory(context.Background())
	require.Len(t, entries, 1)
	require.Equal(t, "2024-01-01T00:00:00Z", entries[0].CreatedAt)
}

func TestRefreshHistoryNoSynthesisForEmptyCache(t *testing.T) {
	fc := newFakeCache()
	require.NoError(t, fc.SetCurrent("local"))

	remote := &fakeRemote{history: []api.SessionSummary{{SessionID: "a", CreatedAt: "2024-01-01T00:00:00Z"}}}
	m := NewManager(fc, remote)
	m.Initialize(context.Background())

	// Current session has no cached messages, so nothing is synthesized.
	entries := m.History()
	require.Len(t, entries, 1)
	require.Equal(t, "a", entries[0].SessionID)
}

func TestRefreshHistoryOfflineFallsBackToCache(t *testing.T) {
	fc := newFakeCache()
	require.NoError(t, fc.Put("x", []api.Message{{Text: "1", Sender: api.SenderUser, Timestamp: "2024-01-01T00:00:00Z"}}))
	require.NoError(t, fc.Put("y", []api.Message{{Text: "2", Sender: api.SenderUser, Timestamp: "2024-02-01T00:00:00Z"}}))

	remote := &fakeRemote{historyErr: errors.New("unreachable")}
	m := NewManager(fc, remote)

	entries := m.RefreshHistory(context.Background())
	require.Len(t, entries, 2)
	require.Equal(t, "x", entries[0].SessionID)
	require.Equal(t, "2024-01-01T00:00:00Z", entries[0].CreatedAt)
	require.Equal(t, "y", entries[1].SessionID)
	require.NotEmpty(t, entries[0].Messages)
}

func TestRefreshHistoryPromotesToSynced(t *testing.T) {
	fc := newFakeCache()
	remote := &fakeRemote{
		createErr:  errors.New("unreachable"),
		historyErr: errors.New("unreachable"),
	}
	m := NewManager(fc, remote, WithIDGenerator(sequentialIDs("local-")))
	m.NewSession(context.Background())
	require.Equal(t, Offline, m.Status())

	// The backend comes back and now lists our session.
	remote.historyErr = nil
	remote.history = []api.SessionSummary{{SessionID: "local-1", CreatedAt: "2024-01-01T00:00:00Z"}}
	m.RefreshHistory(context.Background())
	require.Equal(t, Synced, m.Status())
}
