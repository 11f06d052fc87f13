package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Session is the authenticated identity returned by a login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Login exchanges credentials for a session token and installs it on the
// client so subsequent requests are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	status, raw, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Session{}, err
	}
	if status < 200 || status >= 300 {
		return Session{}, ServerError{Status: status, Message: serverMessage(raw)}
	}

	payload, err := unwrap(status, raw)
	if err != nil {
		return Session{}, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, ServerError{Status: status, Err: err}
	}

	c.SetToken(session.Token)
	return session, nil
}

// Logout invalidates the current session server-side and clears the token.
func (c *Client) Logout(ctx context.Context) error {
	_, _, err := c.do(ctx, http.MethodPost, "/admin/auth/logout", nil)
	c.SetToken("")
	return err
}
