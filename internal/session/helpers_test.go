package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"ragchat/internal/api"
	"ragchat/internal/cache"
)

// fakeRemote is an in-memory Remote with scriptable failures.
type fakeRemote struct {
	mu sync.Mutex

	initID  string
	initErr error

	createID  string
	createErr error

	history      []api.SessionSummary
	historyErr   error
	historyCalls int

	messages    map[string][]api.Message
	messagesErr error

	queryFn func(sessionID, text string) (*api.QueryResponse, error)
}

func (r *fakeRemote) InitSession(ctx context.Context) (string, error) {
	return r.initID, r.initErr
}

func (r *fakeRemote) CreateSession(ctx context.Context) (string, error) {
	return r.createID, r.createErr
}

func (r *fakeRemote) History(ctx context.Context) ([]api.SessionSummary, error) {
	r.mu.Lock()
	r.historyCalls++
	r.mu.Unlock()
	return r.history, r.historyErr
}

func (r *fakeRemote) Messages(ctx context.Context, sessionID string) ([]api.Message, error) {
	if r.messagesErr != nil {
		return nil, r.messagesErr
	}
	return r.messages[sessionID], nil
}

func (r *fakeRemote) Query(ctx context.Context, sessionID, text string) (*api.QueryResponse, error) {
	if r.queryFn != nil {
		return r.queryFn(sessionID, text)
	}
	return &api.QueryResponse{Answer: "ok", Source: "test"}, nil
}

func (r *fakeRemote) historyCallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.historyCalls
}

// fakeCache is an in-memory Cache.
type fakeCache struct {
	mu       sync.Mutex
	sessions map[string][]api.Message
	current  string
}

func newFakeCache() *fakeCache {
	return &fakeCache{sessions: map[string][]api.Message{}}
}

func (c *fakeCache) Get(sessionID string) []api.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]api.Message(nil), c.sessions[sessionID]...)
}

func (c *fakeCache) Put(sessionID string, messages []api.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[sessionID] = append([]api.Message(nil), messages...)
	return nil
}

func (c *fakeCache) Remove(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, sessionID)
	return nil
}

func (c *fakeCache) SetCurrent(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = sessionID
	return nil
}

func (c *fakeCache) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fakeCache) List() []cache.CachedSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.sessions))
	for id := range c.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	sessions := make([]cache.CachedSession, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, cache.CachedSession{
			SessionID: id,
			Messages:  append([]api.Message(nil), c.sessions[id]...),
		})
	}
	return sessions
}

func (c *fakeCache) has(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.sessions[sessionID]
	return ok
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	var mu sync.Mutex
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + string(rune('0'+n))
	}
}
