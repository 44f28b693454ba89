// Package cache holds a durable local copy of each session's message
// sequence, plus a pointer to the current session. It is a convenience
// cache, not the system of record: reads never fail, and a malformed
// stored value is treated as absent.
package cache

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"ragchat/internal/api"
	"ragchat/internal/debug"
)

const currentSessionKey = "current_session_id"

var log = debug.GetLogger()

// CachedSession is one locally cached session with its messages.
type CachedSession struct {
	SessionID string
	Messages  []api.Message
}

// Store implements a SQLite store for session message sequences.
type Store struct {
	db *sql.DB
}

// New store.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			messages TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "creating sessions table")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "creating meta table")
	}

	return &Store{db: db}, nil
}

// Get returns the cached message sequence for a session. An absent row or
// an unparsable stored value yields an empty sequence, never an error.
func (s *Store) Get(sessionID string) []api.Message {
	var messagesJSON string
	err := s.db.QueryRow(`
		SELECT messages FROM sessions WHERE id = ?
	`, sessionID).Scan(&messagesJSON)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Debug("reading cached session", "session_id", sessionID, "error", err)
		}
		return nil
	}

	var messages []api.Message
	if err := json.Unmarshal([]byte(messagesJSON), &messages); err != nil {
		log.Debug("discarding malformed cached session", "session_id", sessionID, "error", err)
		return nil
	}
	return messages
}

// Put overwrites the cached message sequence for a session.
func (s *Store) Put(sessionID string, messages []api.Message) error {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return errors.Wrap(err, "marshaling messages")
	}

	_, err = s.db.Exec(`
		REPLACE INTO sessions (id, messages) VALUES (?, ?)
	`, sessionID, string(messagesJSON))
	if err != nil {
		return errors.Wrap(err, "writing session to database")
	}
	return nil
}

// Remove deletes the cached entry for a session.
func (s *Store) Remove(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	if err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return nil
}

// SetCurrent records the current session id.
func (s *Store) SetCurrent(sessionID string) error {
	_, err := s.db.Exec(`
		REPLACE INTO meta (key, value) VALUES (?, ?)
	`, currentSessionKey, sessionID)
	if err != nil {
		return errors.Wrap(err, "writing current session id")
	}
	return nil
}

// Current returns the recorded current session id, or empty when unset.
func (s *Store) Current() string {
	var sessionID string
	err := s.db.QueryRow(`
		SELECT value FROM meta WHERE key = ?
	`, currentSessionKey).Scan(&sessionID)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Debug("reading current session id", "error", err)
		}
		return ""
	}
	return sessionID
}

// List returns every cached session with its messages. Rows whose stored
// value fails to parse are skipped.
func (s *Store) List() []CachedSession {
	rows, err := s.db.Query(`SELECT id, messages FROM sessions ORDER BY id`)
	if err != nil {
		log.Debug("listing cached sessions", "error", err)
		return nil
	}
	defer rows.Close()

	var sessions []CachedSession
	for rows.Next() {
		var sessionID, messagesJSON string
		if err := rows.Scan(&sessionID, &messagesJSON); err != nil {
			continue
		}
		var messages []api.Message
		if err := json.Unmarshal([]byte(messagesJSON), &messages); err != nil {
			continue
		}
		sessions = append(sessions, CachedSession{SessionID: sessionID, Messages: messages})
	}
	return sessions
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
