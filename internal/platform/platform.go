package platform

// Package platform holds the consumed contracts of the hosted backend
// services that are not the database or the asset store: the session service
// and the function-execution service. The contracts are specified here; the
// HTTP implementations talk to the platform's REST API.

import (
	"context"
	"time"
)

// Session is an authenticated session on the hosted auth service.
// SessionCurrent addresses the caller's active session.
const SessionCurrent = "current"

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Account is the identity behind a session.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Sessions is the session-service contract: email/password session creation,
// session lookup, session deletion and identity retrieval.
type Sessions interface {
	CreateEmailSession(ctx context.Context, email, password string) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetAccount(ctx context.Context) (*Account, error)
}

// Execution is the result of a hosted function run. ResponseStatusCode is
// HTTP-like; anything outside 2xx is the caller's failure signal.
type Execution struct {
	ResponseStatusCode int    `json:"responseStatusCode"`
	ResponseBody       string `json:"responseBody"`
}

// Functions is the function-execution contract: invoke a deployed function by
// id with an optional string payload.
type Functions interface {
	Execute(ctx context.Context, functionID, payload string) (*Execution, error)
}
