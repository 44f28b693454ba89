package api

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is a single chat message as exchanged with the backend and as
// persisted in the local cache. Messages are immutable once created.
type Message struct {
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
	IsError   bool   `json:"isError,omitempty"`
}

// SessionSummary is one entry of the backend's session history listing.
// It carries metadata only, no message bodies.
type SessionSummary struct {
	SessionID    string `json:"sessionId"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	Title        string `json:"title,omitempty"`
	MessageCount int    `json:"messageCount,omitempty"`
}

// QueryResponse is the backend's answer to a query.
type QueryResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

type historyResponse struct {
	History []SessionSummary `json:"history"`
}

type messagesResponse struct {
	Messages []Message `json:"messages"`
}

type queryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}
