// Package session owns the session-identity lifecycle and the durable,
// reconciled view of chat history. It degrades to offline-usable local
// sessions whenever the backend is slow or unreachable: no operation in
// this package surfaces a transport failure to its caller.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ragchat/internal/api"
	"ragchat/internal/cache"
	"ragchat/internal/debug"
)

var log = debug.GetLogger()

// Remote is the backend surface the session core consumes.
type Remote interface {
	InitSession(ctx context.Context) (string, error)
	CreateSession(ctx context.Context) (string, error)
	History(ctx context.Context) ([]api.SessionSummary, error)
	Messages(ctx context.Context, sessionID string) ([]api.Message, error)
	Query(ctx context.Context, sessionID, text string) (*api.QueryResponse, error)
}

// Cache is the durable local store the session core writes through.
// *cache.Store satisfies it; tests inject in-memory fakes.
type Cache interface {
	Get(sessionID string) []api.Message
	Put(sessionID string, messages []api.Message) error
	Remove(sessionID string) error
	SetCurrent(sessionID string) error
	Current() string
	List() []cache.CachedSession
}

// Status describes how the current session relates to the backend.
type Status int

const (
	// Uninitialized means Initialize has not run yet.
	Uninitialized Status = iota
	// LocalOnly means the session was adopted from the local cache without
	// consulting the backend.
	LocalOnly
	// Synced means the backend knows this session.
	Synced
	// Offline means the session id was generated locally because the
	// backend was unreachable.
	Offline
)

// HistoryEntry is one reconciled, display-ready session list entry.
// Messages is populated only for entries synthesized from the local cache.
type HistoryEntry struct {
	SessionID string
	CreatedAt string
	Messages  []api.Message
}

// Manager holds the current session, its message sequence and the
// reconciled history list. All exported methods are safe for use from the
// goroutines a UI spawns for network calls.
type Manager struct {
	mu     sync.Mutex
	cache  Cache
	remote Remote
	newID  func() string
	now    func() time.Time

	currentID string
	messages  []api.Message
	history   []HistoryEntry
	status    Status
	busy      bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator overrides the fallback session id generator.
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager instantiates a session manager.
func NewManager(cache Cache, remote Remote, options ...Option) *Manager {
	m := &Manager{
		cache:  cache,
		remote: remote,
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Initialize resolves a session identity: the locally recorded current
// session when one exists, otherwise a backend-minted id, otherwise a
// locally generated one. It never fails; on a dead backend the user ends
// up in an offline session.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	if sessionID := m.cache.Current(); sessionID != "" {
		m.currentID = sessionID
		m.messages = m.cache.Get(sessionID)
		m.status = LocalOnly
		m.mu.Unlock()
		m.RefreshHistory(ctx)
		return
	}
	m.mu.Unlock()

	sessionID, err := m.remote.InitSession(ctx)
	status := Synced
	if err != nil {
		log.Debug("initializing session against backend", "error", err)
		sessionID = m.newID()
		status = Offline
	}

	m.mu.Lock()
	m.currentID = sessionID
	m.messages = nil
	m.status = status
	if err := m.cache.SetCurrent(sessionID); err != nil {
		log.Debug("recording current session id", "error", err)
	}
	m.mu.Unlock()

	m.RefreshHistory(ctx)
}

// NewSession starts a fresh session, evicting the previous session's local
// cache entry. On backend failure the id is generated locally and the user
// can keep chatting offline.
func (m *Manager) NewSession(ctx context.Context) {
	sessionID, err := m.remote.CreateSession(ctx)
	status := Synced
	if err != nil {
		log.Debug("creating session against backend", "error", err)
		sessionID = m.newID()
		status = Offline
	}

	m.mu.Lock()
	if m.currentID != "" {
		if err := m.cache.Remove(m.currentID); err != nil {
			log.Debug("evicting previous session", "session_id", m.currentID, "error", err)
		}
	}
	m.currentID = sessionID
	m.messages = nil
	m.status = status
	if err := m.cache.SetCurrent(sessionID); err != nil {
		log.Debug("recording current session id", "error", err)
	}
	m.mu.Unlock()

	m.RefreshHistory(ctx)
}

// Load makes the given session current, sourcing its messages from the
// local cache, then the backend, then any reconciled history entry that
// already carries messages. An id unknown everywhere simply becomes an
// empty current session.
func (m *Manager) Load(ctx context.Context, sessionID string) {
	var messages []api.Message
	status := LocalOnly

	if cached := m.cache.Get(sessionID); len(cached) > 0 {
		messages = cached
	} else if remote, err := m.remote.Messages(ctx, sessionID); err == nil && len(remote) > 0 {
		messages = remote
		status = Synced
		if err := m.cache.Put(sessionID, remote); err != nil {
			log.Debug("caching fetched session", "session_id", sessionID, "error", err)
		}
	} else {
		if err != nil {
			log.Debug("fetching session from backend", "session_id", sessionID, "error", err)
		}
		for _, entry := range m.History() {
			if entry.SessionID == sessionID && len(entry.Messages) > 0 {
				messages = entry.Messages
				break
			}
		}
	}

	m.mu.Lock()
	m.currentID = sessionID
	m.messages = messages
	m.status = status
	if err := m.cache.SetCurrent(sessionID); err != nil {
		log.Debug("recording current session id", "error", err)
	}
	m.mu.Unlock()
}

// CurrentID returns the current session id.
func (m *Manager) CurrentID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentID
}

// Messages returns a copy of the current session's message sequence.
func (m *Manager) Messages() []api.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages := make([]api.Message, len(m.messages))
	copy(messages, m.messages)
	return messages
}

// History returns a copy of the last reconciled history list.
func (m *Manager) History() []HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := make([]HistoryEntry, len(m.history))
	copy(history, m.history)
	return history
}

// Status returns the current session's synchronization status.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Busy reports whether an exchange is in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

func (m *Manager) timestamp() string {
	return m.now().UTC().Format(time.RFC3339)
}
