package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clienthub/internal/config"
)

// SessionsClient talks to the hosted session service over its REST API.
type SessionsClient struct {
	baseURL    string
	projectKey string
	httpClient *http.Client
}

// NewSessionsClient creates a session-service client from config.
func NewSessionsClient(cfg config.AuthConfig) *SessionsClient {
	return &SessionsClient{
		baseURL:    cfg.BaseURL,
		projectKey: cfg.ProjectKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ Sessions = (*SessionsClient)(nil)

type emailSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateEmailSession opens a session with email/password credentials.
func (c *SessionsClient) CreateEmailSession(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(emailSessionRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session request: %w", err)
	}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/account/sessions/email", bytes.NewBuffer(body), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession looks up a session by id; pass SessionCurrent for the active one.
func (c *SessionsClient) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodGet, "/account/sessions/"+sessionID, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession ends a session by id; pass SessionCurrent for the active one.
func (c *SessionsClient) DeleteSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/account/sessions/"+sessionID, nil, nil)
}

// GetAccount retrieves the identity behind the active session.
func (c *SessionsClient) GetAccount(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.do(ctx, http.MethodGet, "/account", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *SessionsClient) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("X-Project-Key", c.projectKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("session request failed with status %d: %s", resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode session response: %w", err)
	}
	return nil
}
