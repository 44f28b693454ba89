package session

import (
	"context"

	"ragchat/internal/api"
)

// RefreshHistory rebuilds the reconciled session list: everything the
// backend knows about, plus a synthesized entry for the current session
// when it only exists in the local cache (created or used while offline).
// When the backend is unreachable the list is synthesized entirely from
// the local cache. The result is stored on the manager and returned.
func (m *Manager) RefreshHistory(ctx context.Context) []HistoryEntry {
	summaries, err := m.remote.History(ctx)
	if err != nil {
		log.Debug("fetching history from backend", "error", err)
		return m.offlineHistory()
	}

	seen := make(map[string]struct{}, len(summaries))
	entries := make([]HistoryEntry, 0, len(summaries)+1)
	for _, summary := range summaries {
		if _, ok := seen[summary.SessionID]; ok {
			continue
		}
		seen[summary.SessionID] = struct{}{}
		entries = append(entries, HistoryEntry{
			SessionID: summary.SessionID,
			CreatedAt: summary.CreatedAt,
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := seen[m.currentID]; ok {
		// The backend caught up with a session we created locally.
		if m.status == LocalOnly || m.status == Offline {
			m.status = Synced
		}
	} else if m.currentID != "" {
		if cached := m.cache.Get(m.currentID); len(cached) > 0 {
			entries = append(entries, m.synthesizeEntry(m.currentID, cached))
		}
	}

	m.history = entries
	return append([]HistoryEntry(nil), entries...)
}

// offlineHistory enumerates every locally cached session.
func (m *Manager) offlineHistory() []HistoryEntry {
	cached := m.cache.List()

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]HistoryEntry, 0, len(cached))
	for _, session := range cached {
		entries = append(entries, m.synthesizeEntry(session.SessionID, session.Messages))
	}
	m.history = entries
	return append([]HistoryEntry(nil), entries...)
}

// synthesizeEntry builds a history entry from cached messages. Its
// creation time is the first message's timestamp when one exists.
func (m *Manager) synthesizeEntry(sessionID string, messages []api.Message) HistoryEntry {
	createdAt := m.timestamp()
	if len(messages) > 0 && messages[0].Timestamp != "" {
		createdAt = messages[0].Timestamp
	}
	return HistoryEntry{
		SessionID: sessionID,
		CreatedAt: createdAt,
		Messages:  messages,
	}
}
