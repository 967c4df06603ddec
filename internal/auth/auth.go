// Package auth holds the authentication state of the dashboard. it is the
// only writer of the session store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/lib/session"
)

// Backend is the part of the api that issues and checks tokens.
type Backend interface {
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)
	Verify(ctx context.Context, token string) (username string, err error)
}

type State struct {
	IsAuthenticated bool
	Username        string
	Token           string
}

type LoginResult struct {
	OK    bool
	Error string
}

const networkMessage = "Unable to reach the server, check that the api is running."

type Session struct {
	store   session.Store
	backend Backend
	now     func() time.Time

	mu    sync.Mutex
	state State
}

func NewSession(store session.Store, backend Backend) *Session {
	return &Session{
		store:   store,
		backend: backend,
		now:     time.Now,
	}
}

// Restore loads stored credentials and checks them with the backend. a
// rejected token is discarded, any other verification failure keeps the
// stored identity so the next request can try again.
func (s *Session) Restore(ctx context.Context) error {
	creds, found, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if !found || creds.Token == "" {
		s.setState(State{})
		return nil
	}

	username, err := s.backend.Verify(ctx, creds.Token)
	switch {
	case err == nil:
		if username == "" {
			username = creds.Username
		}
		if username != creds.Username {
			creds.Username = username
			err = s.store.Set(ctx, creds)
			if err != nil {
				slog.WarnContext(ctx, "failed to update stored username", "err", err)
			}
		}
		s.setState(State{IsAuthenticated: true, Username: username, Token: creds.Token})
	case errors.Is(err, api.ErrUnauthorized):
		slog.InfoContext(ctx, "stored token was rejected, discarding it")
		err = s.store.Clear(ctx)
		if err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		s.setState(State{})
	default:
		slog.WarnContext(ctx, "could not verify stored token, keeping it", "err", err)
		s.setState(State{IsAuthenticated: true, Username: creds.Username, Token: creds.Token})
	}
	return nil
}

// Login never changes the state unless the backend accepted the
// credentials and they were stored.
func (s *Session) Login(ctx context.Context, username, password string) LoginResult {
	if username == "" || password == "" {
		return LoginResult{Error: "Username and password are required."}
	}

	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		slog.DebugContext(ctx, "login failed", "username", username, "err", err)
		return LoginResult{Error: loginMessage(err)}
	}

	err = s.store.Set(ctx, session.Credentials{
		Token:    token.AccessToken,
		Username: username,
		SavedAt:  s.now(),
	})
	if err != nil {
		return LoginResult{Error: fmt.Sprintf("could not save session: %v", err)}
	}
	s.setState(State{IsAuthenticated: true, Username: username, Token: token.AccessToken})
	slog.InfoContext(ctx, "logged in", "username", username)
	return LoginResult{OK: true}
}

func loginMessage(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message()
	}
	var networkErr *api.NetworkError
	if errors.As(err, &networkErr) {
		return networkMessage
	}
	return err.Error()
}

func (s *Session) Logout(ctx context.Context) error {
	s.setState(State{})
	err := s.store.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Expire is called when the backend rejects the token mid-session.
func (s *Session) Expire(ctx context.Context) {
	slog.InfoContext(ctx, "session expired")
	err := s.Logout(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to clear expired session", "err", err)
	}
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
