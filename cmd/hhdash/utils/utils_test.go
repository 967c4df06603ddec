package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"homehealth-dashboard/internal/api"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{
			err:      fmt.Errorf("GET /analytics/summary: %w", api.ErrSessionExpired),
			expected: "Session expired, run `hhdash login` to sign in again.",
		},
		{
			err:      api.ErrNotLoggedIn,
			expected: "Not logged in, run `hhdash login` first.",
		},
		{
			err: &api.StatusError{
				Method: http.MethodGet,
				Path:   "/analytics/summary",
				Status: http.StatusNotFound,
				Detail: "No analytics data available",
			},
			expected: "Error: No analytics data available (GET /analytics/summary, 404)",
		},
		{
			err: &api.NetworkError{
				Method: http.MethodGet,
				Path:   "/",
				Err:    errors.New("connection refused"),
			},
			expected: "Error: could not reach the api (connection refused)",
		},
		{
			err:      errors.New("boom"),
			expected: "Error: boom",
		},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expected, ErrorMessage(tc.err))
	}
}
