package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Client talks to the question-answering backend over its HTTP surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient instantiates and returns a new backend client.
func NewClient(baseURL string, requestTimeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// InitSession asks the backend to initialize a session and returns its id.
func (c *Client) InitSession(ctx context.Context) (string, error) {
	response := &sessionResponse{}
	if err := c.do(ctx, http.MethodPost, "/sessions/init", nil, response); err != nil {
		return "", errors.Wrap(err, "initializing session")
	}
	return response.SessionID, nil
}

// CreateSession asks the backend to mint a fresh session id.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	response := &sessionResponse{}
	if err := c.do(ctx, http.MethodPost, "/sessions/create", nil, response); err != nil {
		return "", errors.Wrap(err, "creating session")
	}
	return response.SessionID, nil
}

// History fetches the backend's session summary list.
func (c *Client) History(ctx context.Context) ([]SessionSummary, error) {
	response := &historyResponse{}
	if err := c.do(ctx, http.MethodGet, "/sessions/history", nil, response); err != nil {
		return nil, errors.Wrap(err, "fetching session history")
	}
	return response.History, nil
}

// Messages fetches the full message sequence of one session.
func (c *Client) Messages(ctx context.Context, sessionID string) ([]Message, error) {
	response := &messagesResponse{}
	path := "/sessions/" + sessionID
	if err := c.do(ctx, http.MethodGet, path, nil, response); err != nil {
		return nil, errors.Wrapf(err, "fetching session %s", sessionID)
	}
	return response.Messages, nil
}

// Query submits a user question against a session and returns the answer.
func (c *Client) Query(ctx context.Context, sessionID, text string) (*QueryResponse, error) {
	request := &queryRequest{Query: text, SessionID: sessionID}
	response := &QueryResponse{}
	if err := c.do(ctx, http.MethodPost, "/query", request, response); err != nil {
		return nil, errors.Wrap(err, "submitting query")
	}
	return response, nil
}

func (c *Client) do(ctx context.Context, method, path string, request, response any) error {
	var body io.Reader
	if request != nil {
		bytes_, err := json.Marshal(request)
		if err != nil {
			return errors.Wrap(err, "marshaling request")
		}
		body = bytes.NewReader(bytes_)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", httpResponse.StatusCode)
	}

	if response != nil {
		if err := json.NewDecoder(httpResponse.Body).Decode(response); err != nil {
			return errors.Wrap(err, "decoding response")
		}
	}
	return nil
}
