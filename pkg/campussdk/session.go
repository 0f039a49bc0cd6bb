package campussdk

import (
	"context"
	"net/http"
	"sync"
)

// Session is an authenticated handle on the campus core service. Sessions are
// safe for concurrent use; Refresh swaps the token under a write lock.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
	user  User
}

func newSession(client *SDKClient, token string, user User) *Session {
	return &Session{
		client: client,
		token:  token,
		user:   user,
	}
}

// Token returns the session's current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the identity cached at login or last refresh. It may be stale;
// use Me for the server's current view.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Me fetches the caller's own identity and updates the session cache.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return &user, nil
}

// Refresh exchanges the session's token for a fresh one. Works even when the
// current token has already expired, as long as it still verifies.
func (s *Session) Refresh(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/refresh-token", nil, nil)
	if err != nil {
		return err
	}

	var authResp AuthResponse
	if err := decodeJSON(resp, &authResp, http.StatusOK); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = authResp.Token
	s.user = authResp.User
	s.mu.Unlock()

	return nil
}
