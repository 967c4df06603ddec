package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/models"
	"homehealth-dashboard/lib/session"

	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	users     map[string]string
	tokens    map[string]string
	verifyErr error
}

func (b fakeBackend) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	if b.users[username] != password {
		return models.TokenResponse{}, &api.StatusError{
			Method: http.MethodPost,
			Path:   "/auth/login",
			Status: http.StatusUnauthorized,
			Detail: "Invalid username or password",
		}
	}
	return models.TokenResponse{AccessToken: "token-" + username, TokenType: "bearer"}, nil
}

func (b fakeBackend) Verify(ctx context.Context, token string) (string, error) {
	if b.verifyErr != nil {
		return "", b.verifyErr
	}
	username, ok := b.tokens[token]
	if !ok {
		return "", &api.StatusError{Method: http.MethodGet, Path: "/auth/verify", Status: http.StatusUnauthorized}
	}
	return username, nil
}

var backend = fakeBackend{
	users:  map[string]string{"admin": "homehealth2024"},
	tokens: map[string]string{"token-admin": "admin"},
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	s := NewSession(store, backend)

	res := s.Login(ctx, "admin", "wrong")
	require.False(t, res.OK)
	require.Equal(t, "Invalid username or password", res.Error)
	require.Equal(t, State{}, s.State())
	_, found, err := store.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)

	res = s.Login(ctx, "", "")
	require.False(t, res.OK)
	require.NotEmpty(t, res.Error)

	res = s.Login(ctx, "admin", "homehealth2024")
	require.True(t, res.OK)
	require.Empty(t, res.Error)
	require.Equal(t, State{IsAuthenticated: true, Username: "admin", Token: "token-admin"}, s.State())
	require.Equal(t, "token-admin", s.Token())

	creds, found, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "token-admin", creds.Token)
	require.Equal(t, "admin", creds.Username)

	// a failed login after a successful one leaves the session alone
	res = s.Login(ctx, "admin", "wrong")
	require.False(t, res.OK)
	require.True(t, s.State().IsAuthenticated)

	require.NoError(t, s.Logout(ctx))
	require.Equal(t, State{}, s.State())
	_, found, err = store.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)
}

func TestLoginNetworkFailure(t *testing.T) {
	failing := fakeBackend{}
	s := NewSession(session.NewMemoryStore(), loginFails{failing})
	res := s.Login(context.Background(), "admin", "x")
	require.False(t, res.OK)
	require.Equal(t, networkMessage, res.Error)
}

type loginFails struct{ fakeBackend }

func (loginFails) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	return models.TokenResponse{}, &api.NetworkError{Method: http.MethodPost, Path: "/auth/login", Err: errors.New("connection refused")}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		stored   *session.Credentials
		backend  fakeBackend
		expected State
		kept     bool
	}{
		{
			name:     "nothing stored",
			backend:  backend,
			expected: State{},
		},
		{
			name:     "valid token",
			stored:   &session.Credentials{Token: "token-admin", Username: "admin"},
			backend:  backend,
			expected: State{IsAuthenticated: true, Username: "admin", Token: "token-admin"},
			kept:     true,
		},
		{
			name:     "rejected token",
			stored:   &session.Credentials{Token: "token-old", Username: "admin"},
			backend:  backend,
			expected: State{},
		},
		{
			name:   "unreachable backend",
			stored: &session.Credentials{Token: "token-old", Username: "admin"},
			backend: fakeBackend{verifyErr: &api.NetworkError{
				Method: http.MethodGet, Path: "/auth/verify", Err: errors.New("connection refused"),
			}},
			expected: State{IsAuthenticated: true, Username: "admin", Token: "token-old"},
			kept:     true,
		},
		{
			name:   "server error",
			stored: &session.Credentials{Token: "token-old", Username: "admin"},
			backend: fakeBackend{verifyErr: &api.StatusError{
				Method: http.MethodGet, Path: "/auth/verify", Status: http.StatusBadGateway,
			}},
			expected: State{IsAuthenticated: true, Username: "admin", Token: "token-old"},
			kept:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			if tc.stored != nil {
				require.NoError(t, store.Set(ctx, *tc.stored))
			}

			s := NewSession(store, tc.backend)
			require.NoError(t, s.Restore(ctx))
			require.Equal(t, tc.expected, s.State())

			_, found, err := store.Get(ctx)
			require.NoError(t, err)
			require.Equal(t, tc.kept, found)
		})
	}
}

func TestExpire(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	s := NewSession(store, backend)
	require.True(t, s.Login(ctx, "admin", "homehealth2024").OK)

	s.Expire(ctx)
	require.Equal(t, State{}, s.State())
	require.Empty(t, s.Token())
	_, found, err := store.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)
}

func TestLoginSendsUsernameAsTyped(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	s := NewSession(store, fakeBackend{
		users: map[string]string{" admin ": "pw"},
	})

	res := s.Login(ctx, " admin ", "pw")
	require.True(t, res.OK)
	require.Equal(t, " admin ", s.State().Username)

	res = NewSession(session.NewMemoryStore(), backend).Login(ctx, " admin", "homehealth2024")
	require.False(t, res.OK)
	require.Equal(t, "Invalid username or password", res.Error)
}
