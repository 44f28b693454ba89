package session

import (
	"context"
	"strings"

	"ragchat/internal/api"
)

// ErrorAnswer is appended in place of an answer when an exchange fails.
const ErrorAnswer = "Sorry, there was an error processing your request. Please try again."

// Send runs one question/answer exchange against the current session.
//
// The user message is appended and persisted before the network round-trip
// so it survives a crash. Failures never propagate: they become an appended
// error-flagged assistant message. The returned message is the assistant
// (or error) message, or nil when the send was a no-op: empty input,
// another exchange already in flight, or the user switched sessions while
// this one was in flight (the late response is discarded).
//
// A send arriving while busy is dropped, not queued.
func (m *Manager) Send(ctx context.Context, text string) *api.Message {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	m.mu.Lock()
	if m.busy {
		m.mu.Unlock()
		return nil
	}
	m.busy = true
	origin := m.currentID
	firstExchange := len(m.messages) == 0

	userMessage := api.Message{
		Text:      text,
		Sender:    api.SenderUser,
		Timestamp: m.timestamp(),
	}
	m.messages = append(m.messages, userMessage)
	m.persistLocked(origin)
	m.mu.Unlock()

	response, err := m.remote.Query(ctx, origin, text)

	m.mu.Lock()
	m.busy = false
	if m.currentID != origin {
		// The user switched sessions while this exchange was in flight.
		// Applying the response to the now-current session would leak it
		// across sessions, so it is dropped.
		log.Debug("discarding stale response", "origin", origin, "current", m.currentID)
		m.mu.Unlock()
		return nil
	}

	var answer api.Message
	if err != nil {
		log.Debug("query failed", "session_id", origin, "error", err)
		answer = api.Message{
			Text:      ErrorAnswer,
			Sender:    api.SenderAssistant,
			Timestamp: m.timestamp(),
			IsError:   true,
		}
	} else {
		answer = api.Message{
			Text:      response.Answer,
			Sender:    api.SenderAssistant,
			Timestamp: m.timestamp(),
			Source:    response.Source,
		}
	}
	m.messages = append(m.messages, answer)
	m.persistLocked(origin)
	m.mu.Unlock()

	// A first successful exchange is what makes the backend register the
	// session, so the history list is refreshed to pick it up.
	if firstExchange && err == nil {
		m.RefreshHistory(ctx)
	}
	return &answer
}

// persistLocked writes the in-memory sequence through to the cache.
// Callers hold m.mu.
func (m *Manager) persistLocked(sessionID string) {
	messages := make([]api.Message, len(m.messages))
	copy(messages, m.messages)
	if err := m.cache.Put(sessionID, messages); err != nil {
		log.Debug("persisting session", "session_id", sessionID, "error", err)
	}
}
