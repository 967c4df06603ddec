package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/lib/session"

	"github.com/stretchr/testify/require"
)

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	var valid atomic.Value
	valid.Store("tok")
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"access_token": valid.Load(), "token_type": "bearer"})
	})
	mux.HandleFunc("/analytics/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		if r.Header.Get("authorization") != "Bearer "+valid.Load().(string) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Invalid authentication credentials"}`))
			return
		}
		w.Write([]byte(`{"total_patients": 3, "total_billed": 350}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx := context.Background()
	httpClient := api.NewHTTPClient(server.URL, time.Second, nil)
	store := session.NewMemoryStore()
	s := NewSession(store, api.NewAuthClient(httpClient))
	client := api.NewClient(httpClient, s)

	require.True(t, s.Login(ctx, "admin", "pw").OK)

	summary, err := client.Summary(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 350, summary.TotalBilled)

	// the backend rotated its signing key
	valid.Store("tok2")

	_, err = client.Summary(ctx)
	require.ErrorIs(t, err, api.ErrSessionExpired)
	require.False(t, s.State().IsAuthenticated)
	_, found, err := store.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)
}
