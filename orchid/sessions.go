package orchid

import (
	"context"
	"fmt"
)

// SessionOptions tunes session creation. The zero value (or nil) matches
// the server defaults.
type SessionOptions struct {
	// ExpiresIn is the session lifetime in seconds. Defaults to 3600.
	ExpiresIn int
	// Cookie is the session cookie type: "persistent" or "session".
	// Defaults to "session".
	Cookie string
	// Scope holds permission sets. Only meaningful for remote sessions.
	Scope map[string]any
}

func (o *SessionOptions) expiresIn() int {
	if o == nil || o.ExpiresIn == 0 {
		return 3600
	}
	return o.ExpiresIn
}

func (o *SessionOptions) cookie() string {
	if o == nil || o.Cookie == "" {
		return "session"
	}
	return o.Cookie
}

// GetSessionIdentity retrieves the identity of the current session.
func (c *Client) GetSessionIdentity(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/identity")
}

// GetSessionInfo retrieves the current session.
func (c *Client) GetSessionInfo(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/sessions/me")
}

// DeleteCurrentSession deletes the current session.
func (c *Client) DeleteCurrentSession(ctx context.Context) (*Response, error) {
	return c.delete(ctx, "/sessions/me")
}

// CreateUserSession creates a new user session. The response body carries
// the session token; install it with SetBearerToken for subsequent calls.
func (c *Client) CreateUserSession(ctx context.Context, username, password string, opts *SessionOptions) (*Response, error) {
	body := map[string]any{
		"username":  username,
		"password":  password,
		"expiresIn": opts.expiresIn(),
		"cookie":    opts.cookie(),
	}
	return c.post(ctx, "/sessions/user", body)
}

// CreateRemoteSession creates a new remote session named name.
func (c *Client) CreateRemoteSession(ctx context.Context, name string, opts *SessionOptions) (*Response, error) {
	body := map[string]any{
		"name":      name,
		"expiresIn": opts.expiresIn(),
		"cookie":    opts.cookie(),
	}
	if opts != nil && opts.Scope != nil {
		body["scope"] = opts.Scope
	}
	return c.post(ctx, "/sessions/remote", body)
}

// GetSessions retrieves all sessions. sessionType filters by "user" or
// "remote"; empty retrieves every type.
func (c *Client) GetSessions(ctx context.Context, sessionType string) (*Response, error) {
	if sessionType != "" {
		return c.get(ctx, fmt.Sprintf("/sessions?type=%s", sessionType))
	}
	return c.get(ctx, "/sessions")
}

// DeleteSessions deletes all sessions, optionally filtered by type.
func (c *Client) DeleteSessions(ctx context.Context, sessionType string) (*Response, error) {
	if sessionType != "" {
		return c.delete(ctx, fmt.Sprintf("/sessions?type=%s", sessionType))
	}
	return c.delete(ctx, "/sessions")
}

// GetSession retrieves a session by ID.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/sessions?%s", sessionID))
}

// DeleteSession deletes a session by ID.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/sessions?%s", sessionID))
}
